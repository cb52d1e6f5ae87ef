package models

import "time"

// Label is the coarse three-way quality classification of a prompt.
type Label string

const (
	LabelGood Label = "good"
	LabelOK   Label = "ok"
	LabelBad  Label = "bad"
)

var ValidLabels = map[Label]bool{
	LabelGood: true,
	LabelOK:   true,
	LabelBad:  true,
}

// Subscore is one named attribute outcome within an evaluation.
// Score is bounded by the rubric's per-attribute ceiling (2 for the
// question rubrics, 5 for the prompt-engineering rubric).
type Subscore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// Suggestion is an actionable tip with a short title and body.
type Suggestion struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// EvaluationResponse is the full result of evaluating a prompt,
// whether it came from the local rubric or an external evaluator.
type EvaluationResponse struct {
	Label          Label        `json:"label"`
	Score          int          `json:"score"`
	Summary        string       `json:"summary"`
	Subscores      []Subscore   `json:"subscores"`
	Feedback       []string     `json:"feedback"`
	Suggestions    []Suggestion `json:"suggestions"`
	ImprovedPrompt string       `json:"improved_prompt,omitempty"`
}

type EvaluateRequest struct {
	Prompt string  `json:"prompt"`
	Goal   *string `json:"goal,omitempty"`
}

// EvaluationLog is a persisted record of a single evaluation.
type EvaluationLog struct {
	ID            int64     `json:"id"`
	UserID        *int64    `json:"user_id,omitempty"`
	Prompt        string    `json:"prompt"`
	Label         Label     `json:"label"`
	Score         int       `json:"score"`
	RubricVersion string    `json:"rubric_version"`
	CreatedAt     time.Time `json:"created_at"`
}
