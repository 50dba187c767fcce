package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endpoint/summary-panel/internal/i18n"
	"github.com/endpoint/summary-panel/internal/models"
)

func noop(models.FeedbackValue) error { return nil }

func TestRenderSectionOrder(t *testing.T) {
	d := Render(models.TicketSnapshot{
		OneSentenceSummary: "summary",
		ActionItems:        "actions",
		BulletPoints:       "bullets",
		ClientSentiment:    "calm",
	}, noop, i18n.Printer("en"))

	require.Len(t, d.Sections, 3)
	assert.Equal(t, Section{Title: "One Sentence Summary", Content: "summary", Variant: "one-sentence-summary", Divider: true}, d.Sections[0])
	assert.Equal(t, Section{Title: "Action Items", Content: "actions", Variant: "action-items", Divider: true}, d.Sections[1])
	assert.Equal(t, Section{Title: "Bullet Points", Content: "bullets", Variant: "bullet-points", Divider: true}, d.Sections[2])
}

func TestRenderSelection(t *testing.T) {
	cases := []struct {
		feedback models.FeedbackValue
		positive bool
		negative bool
	}{
		{models.FeedbackPositive, true, false},
		{models.FeedbackNegative, false, true},
		{models.FeedbackNone, false, false},
		{"unexpected", false, false},
	}
	for _, tc := range cases {
		d := Render(models.TicketSnapshot{AIFeedback: tc.feedback}, noop, nil)
		require.Len(t, d.Feedback, 2)
		assert.Equal(t, models.FeedbackPositive, d.Feedback[0].Value)
		assert.Equal(t, models.FeedbackNegative, d.Feedback[1].Value)
		assert.Equal(t, tc.positive, d.Feedback[0].Selected, "feedback %q", tc.feedback)
		assert.Equal(t, tc.negative, d.Feedback[1].Selected, "feedback %q", tc.feedback)
	}
}

func TestButtonClickCallsBackAndStaysStatic(t *testing.T) {
	var clicked []models.FeedbackValue
	d := Render(models.TicketSnapshot{AIFeedback: models.FeedbackPositive}, func(v models.FeedbackValue) error {
		clicked = append(clicked, v)
		return nil
	}, nil)

	require.NoError(t, d.Feedback[1].Click())
	require.NoError(t, d.Feedback[0].Click())

	assert.Equal(t, []models.FeedbackValue{models.FeedbackNegative, models.FeedbackPositive}, clicked)
	assert.True(t, d.Feedback[0].Selected)
	assert.False(t, d.Feedback[1].Selected)
}

func TestRenderFooter(t *testing.T) {
	assert.Nil(t, Render(models.TicketSnapshot{}, noop, nil).Footer)

	d := Render(models.TicketSnapshot{CreatedAt: "2024-05-01T10:00:00Z"}, noop, i18n.Printer("de"))
	require.NotNil(t, d.Footer)
	assert.Equal(t, "Zuletzt aktualisiert: 2024-05-01T10:00:00Z", d.Footer.Text)
}

func TestRenderIsIdempotent(t *testing.T) {
	snap := models.TicketSnapshot{OneSentenceSummary: "s", CreatedAt: "now", AIFeedback: models.FeedbackNegative}
	a := Render(snap, nil, nil)
	b := Render(snap, nil, nil)
	assert.Equal(t, a.Sections, b.Sections)
	assert.Equal(t, a.Footer, b.Footer)
	assert.Equal(t, a.Feedback[1].Selected, b.Feedback[1].Selected)
	assert.NoError(t, a.Feedback[0].Click())
}

func TestResizeIgnoresContentLength(t *testing.T) {
	assert.Equal(t, ResizeRequest{MaxHeight: 2000}, Resize())
}

func TestTemplateRenders(t *testing.T) {
	d := Render(models.TicketSnapshot{
		OneSentenceSummary: "<b>escaped</b>",
		AIFeedback:         models.FeedbackPositive,
	}, noop, nil)

	var buf bytes.Buffer
	require.NoError(t, Template.ExecuteTemplate(&buf, PanelTemplate, Page{
		Locale:      "en",
		Display:     d,
		Resize:      Resize(),
		FeedbackURL: "/api/panels/abc/feedback",
	}))
	html := buf.String()
	assert.Contains(t, html, "&lt;b&gt;escaped&lt;/b&gt;")
	assert.Equal(t, 1, strings.Count(html, "is-selected"))
	assert.Equal(t, 3, strings.Count(html, `class="EPDivider"`))
	assert.NotContains(t, html, `class="footer"`)
}
