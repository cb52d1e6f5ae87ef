package quiz

import (
	"math"
	"strings"

	"github.com/prompt-trainer/backend/internal/models"
)

// Grade checks submitted labels against the bank's expected ones.
// Unknown item ids count as incorrect with an explanatory detail.
func Grade(bank *Bank, submission models.QuizSubmission) models.QuizResult {
	correct := 0
	details := make([]models.QuizAnswerDetail, 0, len(submission.Answers))

	for _, answer := range submission.Answers {
		item, ok := bank.Get(answer.ItemID)
		if !ok {
			details = append(details, models.QuizAnswerDetail{
				ItemID:      answer.ItemID,
				Correct:     false,
				Expected:    nil,
				Explanation: "Unknown item",
			})
			continue
		}

		isCorrect := strings.EqualFold(string(answer.Label), string(item.Label))
		if isCorrect {
			correct++
		}
		expected := item.Label
		details = append(details, models.QuizAnswerDetail{
			ItemID:      item.ID,
			Correct:     isCorrect,
			Expected:    &expected,
			Explanation: item.Rationale,
		})
	}

	total := len(submission.Answers)
	score := 0.0
	if total > 0 {
		score = math.Round(1000*float64(correct)/float64(total)) / 10
	}

	return models.QuizResult{
		Score:   score,
		Total:   total,
		Correct: correct,
		Details: details,
	}
}
