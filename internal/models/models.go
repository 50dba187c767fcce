package models

// FeedbackValue is the reviewer's judgement stored in the AI feedback field.
type FeedbackValue string

const (
	FeedbackNone     FeedbackValue = ""
	FeedbackPositive FeedbackValue = "positive"
	FeedbackNegative FeedbackValue = "negative"
)

// Valid reports whether v may be written back to the ticket.
func (v FeedbackValue) Valid() bool {
	return v == FeedbackPositive || v == FeedbackNegative
}

// FieldIDMap holds the configured custom field id for each semantic field.
// An empty id means the setting was absent.
type FieldIDMap struct {
	OneSentenceSummary string `json:"one_sentence_summary"`
	ClientSentiment    string `json:"client_sentiment"`
	BulletPoints       string `json:"bullet_points"`
	ActionItems        string `json:"action_items"`
	AIFeedback         string `json:"ai_feedback"`
}

// Missing returns the semantic names that have no configured id.
func (m FieldIDMap) Missing() []string {
	var out []string
	for _, f := range []struct {
		name string
		id   string
	}{
		{"one_sentence_summary", m.OneSentenceSummary},
		{"client_sentiment", m.ClientSentiment},
		{"bullet_points", m.BulletPoints},
		{"action_items", m.ActionItems},
		{"ai_feedback", m.AIFeedback},
	} {
		if f.id == "" {
			out = append(out, f.name)
		}
	}
	return out
}

// TicketSnapshot is the ticket state captured once per panel initialization.
// Every field is a plain string; absent values are "".
type TicketSnapshot struct {
	CreatedAt          string        `json:"created_at"`
	OneSentenceSummary string        `json:"one_sentence_summary"`
	ClientSentiment    string        `json:"client_sentiment"`
	BulletPoints       string        `json:"bullet_points"`
	ActionItems        string        `json:"action_items"`
	AIFeedback         FeedbackValue `json:"ai_feedback"`
}

type CurrentUser struct {
	Locale string `json:"locale"`
}

type Metadata struct {
	Settings map[string]string `json:"settings"`
}
