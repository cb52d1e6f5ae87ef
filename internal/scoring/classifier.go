package scoring

import "github.com/prompt-trainer/backend/internal/models"

// Label thresholds are shared by every rubric variant and embedded in
// the instructions sent to external evaluators. Changing them changes
// the externally visible quality bar.
const (
	GoodThreshold = 75
	OKThreshold   = 45
)

// LabelForScore maps an overall 0-100 score to its label.
func LabelForScore(score int) models.Label {
	if score >= GoodThreshold {
		return models.LabelGood
	}
	if score >= OKThreshold {
		return models.LabelOK
	}
	return models.LabelBad
}

// SummaryForLabel returns the fixed one-sentence summary for a label.
func SummaryForLabel(label models.Label) string {
	switch label {
	case models.LabelGood:
		return "Strong question—clear, specific, and easy to answer."
	case models.LabelOK:
		return "Decent question—tighten specifics, context, or format."
	default:
		return "Vague question—clarify ask, add context, set format."
	}
}
