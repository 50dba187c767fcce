package settings

import "github.com/endpoint/summary-panel/internal/models"

// Setting labels as declared in the app manifest.
const (
	LabelOneSentenceSummary = "One Sentence Summary Field ID"
	LabelClientSentiment    = "Client Sentiment Field ID"
	LabelBulletPoints       = "Bullet Points Summary Field ID"
	LabelActionItems        = "Action Items Field ID"
	LabelAIFeedback         = "AI Feedback Field ID"
)

// Labels lists every label Resolve reads, in field order.
var Labels = []string{
	LabelOneSentenceSummary,
	LabelClientSentiment,
	LabelBulletPoints,
	LabelActionItems,
	LabelAIFeedback,
}

// Resolve maps raw app settings to field ids. A missing label leaves the
// corresponding id empty; it is never an error.
func Resolve(settings map[string]string) models.FieldIDMap {
	return models.FieldIDMap{
		OneSentenceSummary: settings[LabelOneSentenceSummary],
		ClientSentiment:    settings[LabelClientSentiment],
		BulletPoints:       settings[LabelBulletPoints],
		ActionItems:        settings[LabelActionItems],
		AIFeedback:         settings[LabelAIFeedback],
	}
}
