package view

import (
	"golang.org/x/text/message"

	"github.com/endpoint/summary-panel/internal/i18n"
	"github.com/endpoint/summary-panel/internal/models"
)

// MaxHeight bounds the container resize requested after every render.
const MaxHeight = 2000

type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Variant string `json:"variant"`
	Divider bool   `json:"divider"`
}

type Button struct {
	Label    string               `json:"label"`
	Icon     string               `json:"icon"`
	Value    models.FeedbackValue `json:"value"`
	Selected bool                 `json:"selected"`

	onClick func(models.FeedbackValue) error
}

// Click forwards the button's value to the feedback callback.
func (b Button) Click() error {
	if b.onClick == nil {
		return nil
	}
	return b.onClick(b.Value)
}

type Footer struct {
	Text string `json:"text"`
}

// Display describes the panel; the host owns the actual surface.
type Display struct {
	Sections []Section `json:"sections"`
	Feedback []Button  `json:"feedback"`
	Footer   *Footer   `json:"footer,omitempty"`
}

// ResizeRequest is what the panel asks of its container after rendering.
type ResizeRequest struct {
	MaxHeight int `json:"max_height"`
}

// Render is pure: the same snapshot always yields the same display. Button
// selection reflects the snapshot, not clicks made since.
func Render(snap models.TicketSnapshot, setFeedback func(models.FeedbackValue) error, p *message.Printer) Display {
	if p == nil {
		p = i18n.Printer("")
	}
	d := Display{
		Sections: []Section{
			{Title: p.Sprintf(i18n.OneSentenceSummary), Content: snap.OneSentenceSummary, Variant: "one-sentence-summary", Divider: true},
			{Title: p.Sprintf(i18n.ActionItems), Content: snap.ActionItems, Variant: "action-items", Divider: true},
			{Title: p.Sprintf(i18n.BulletPoints), Content: snap.BulletPoints, Variant: "bullet-points", Divider: true},
		},
		Feedback: []Button{
			{
				Label:    p.Sprintf(i18n.Helpful),
				Icon:     "thumbs-up",
				Value:    models.FeedbackPositive,
				Selected: snap.AIFeedback == models.FeedbackPositive,
				onClick:  setFeedback,
			},
			{
				Label:    p.Sprintf(i18n.NotHelpful),
				Icon:     "thumbs-down",
				Value:    models.FeedbackNegative,
				Selected: snap.AIFeedback == models.FeedbackNegative,
				onClick:  setFeedback,
			},
		},
	}
	if snap.CreatedAt != "" {
		d.Footer = &Footer{Text: p.Sprintf(i18n.LastUpdated, snap.CreatedAt)}
	}
	return d
}

// Resize is the same for every render regardless of content length.
func Resize() ResizeRequest {
	return ResizeRequest{MaxHeight: MaxHeight}
}
