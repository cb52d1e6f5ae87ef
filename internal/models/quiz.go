package models

// ── Quiz Types ───────────────────────────────────────────

// QuizItem is a prompt with its expected label and rationale,
// as stored in the on-disk quiz bank.
type QuizItem struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Label     Label  `json:"label"`
	Rationale string `json:"rationale"`
}

// QuizPrompt is the answer-free view of a quiz item served to clients.
type QuizPrompt struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

type QuizAnswer struct {
	ItemID string `json:"item_id"`
	Label  Label  `json:"label"`
}

type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers"`
}

type QuizAnswerDetail struct {
	ItemID      string `json:"item_id"`
	Correct     bool   `json:"correct"`
	Expected    *Label `json:"expected"`
	Explanation string `json:"explanation"`
}

type QuizResult struct {
	Score   float64            `json:"score"`
	Total   int                `json:"total"`
	Correct int                `json:"correct"`
	Details []QuizAnswerDetail `json:"details"`
}

// ── Example Types ────────────────────────────────────────

// ExampleItem is a curated bad/ok/good prompt triple with explanations.
type ExampleItem struct {
	ID              string  `json:"id"`
	Bad             string  `json:"bad"`
	OK              string  `json:"ok"`
	Good            string  `json:"good"`
	BadExplanation  *string `json:"bad_explanation,omitempty"`
	OKExplanation   *string `json:"ok_explanation,omitempty"`
	GoodExplanation *string `json:"good_explanation,omitempty"`
	Details         *string `json:"details,omitempty"`
}
