// Package scoring implements the deterministic rubric pipeline: named
// attribute rules, score aggregation, label classification, and
// improved-prompt synthesis. Everything here is a pure function of
// (text, goal) plus an immutable rubric definition, so concurrent
// evaluations need no coordination.
package scoring

import (
	"sort"
	"strings"

	"github.com/prompt-trainer/backend/internal/models"
)

// maxFeedbackItems caps the worst-first feedback list.
const maxFeedbackItems = 3

// Engine runs one rubric end-to-end and assembles the full response.
type Engine struct {
	rubric *Rubric
}

func NewEngine(rubric *Rubric) *Engine {
	return &Engine{rubric: rubric}
}

func (e *Engine) RubricVersion() string {
	return e.rubric.Version
}

// Evaluate scores a prompt and returns a complete response. It never
// fails: empty or signal-free text degrades to floor scores.
func (e *Engine) Evaluate(prompt, goal string) models.EvaluationResponse {
	text := strings.TrimSpace(prompt)

	subs := e.rubric.Evaluate(text, goal)
	score := e.rubric.Overall(subs)
	label := LabelForScore(score)

	return models.EvaluationResponse{
		Label:          label,
		Score:          score,
		Summary:        SummaryForLabel(label),
		Subscores:      subs,
		Feedback:       e.feedback(subs),
		Suggestions:    e.suggestions(subs),
		ImprovedPrompt: e.rubric.Synthesize(prompt, goal, subs),
	}
}

// feedback returns "Name: comment" lines for attributes below their
// ceiling, worst-first, capped at maxFeedbackItems.
func (e *Engine) feedback(subs []models.Subscore) []string {
	type ranked struct {
		sub     models.Subscore
		ceiling int
	}
	var below []ranked
	for i, a := range e.rubric.Attributes {
		if i < len(subs) && subs[i].Score < a.Ceiling {
			below = append(below, ranked{subs[i], a.Ceiling})
		}
	}
	sort.SliceStable(below, func(i, j int) bool {
		return below[i].sub.Score < below[j].sub.Score
	})

	feedback := make([]string, 0, maxFeedbackItems)
	for _, b := range below {
		if len(feedback) == maxFeedbackItems {
			break
		}
		feedback = append(feedback, b.sub.Name+": "+b.sub.Comment)
	}
	return feedback
}

// suggestions returns one fixed tip per needs-work attribute, in
// rubric order. One attribute contributes at most one suggestion.
func (e *Engine) suggestions(subs []models.Subscore) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, len(subs))
	for i, a := range e.rubric.Attributes {
		if i >= len(subs) {
			break
		}
		if e.rubric.NeedsWork(subs[i].Score, a.Ceiling) && a.Suggestion.Title != "" {
			suggestions = append(suggestions, a.Suggestion)
		}
	}
	return suggestions
}
