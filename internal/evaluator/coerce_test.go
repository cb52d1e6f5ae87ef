package evaluator

import (
	"testing"

	"github.com/prompt-trainer/backend/internal/models"
)

func TestCoerceResponse_FullPayload(t *testing.T) {
	raw := `{
		"label": "GOOD",
		"score": 88,
		"summary": "Well structured.",
		"subscores": [{"name": "Role", "score": 4, "comment": "Explicit persona."}],
		"feedback": ["Add an example."],
		"suggestions": [{"title": "Show an example", "text": "Add one sample output."}],
		"improved_prompt": "Do the thing in 5 bullets."
	}`

	resp, err := CoerceResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Label != models.LabelGood {
		t.Errorf("expected label good (lowercased), got %q", resp.Label)
	}
	if resp.Score != 88 {
		t.Errorf("expected score 88, got %d", resp.Score)
	}
	if len(resp.Subscores) != 1 || resp.Subscores[0].Name != "Role" {
		t.Errorf("unexpected subscores: %+v", resp.Subscores)
	}
	if len(resp.Suggestions) != 1 || resp.Suggestions[0].Title != "Show an example" {
		t.Errorf("unexpected suggestions: %+v", resp.Suggestions)
	}
	if resp.ImprovedPrompt != "Do the thing in 5 bullets." {
		t.Errorf("unexpected improved prompt: %q", resp.ImprovedPrompt)
	}
}

func TestCoerceResponse_MissingFieldsGetDefaults(t *testing.T) {
	resp, err := CoerceResponse(`{}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Label != models.LabelOK {
		t.Errorf("expected default label ok, got %q", resp.Label)
	}
	if resp.Score != 60 {
		t.Errorf("expected default score 60, got %d", resp.Score)
	}
	if resp.Subscores == nil || len(resp.Subscores) != 0 {
		t.Errorf("expected empty subscores, got %+v", resp.Subscores)
	}
	if resp.Feedback == nil || len(resp.Feedback) != 0 {
		t.Errorf("expected empty feedback, got %+v", resp.Feedback)
	}
	if resp.Suggestions == nil || len(resp.Suggestions) != 0 {
		t.Errorf("expected empty suggestions, got %+v", resp.Suggestions)
	}
}

func TestCoerceResponse_CodeFencedPayload(t *testing.T) {
	resp, err := CoerceResponse("```json\n{\"label\": \"bad\", \"score\": 20}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Label != models.LabelBad || resp.Score != 20 {
		t.Errorf("unexpected result: %+v", resp)
	}
}

func TestCoerceResponse_NumericStringScore(t *testing.T) {
	resp, err := CoerceResponse(`{"score": "72"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Score != 72 {
		t.Errorf("expected 72, got %d", resp.Score)
	}
}

func TestCoerceResponse_ScoreClamped(t *testing.T) {
	resp, err := CoerceResponse(`{"score": 150}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Score != 100 {
		t.Errorf("expected clamp to 100, got %d", resp.Score)
	}

	resp, err = CoerceResponse(`{"score": -5}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Score != 0 {
		t.Errorf("expected clamp to 0, got %d", resp.Score)
	}
}

func TestCoerceResponse_WholePayloadFailsOnBadField(t *testing.T) {
	cases := map[string]string{
		"non-JSON body":           `tell me more`,
		"label not a string":      `{"label": 3}`,
		"unknown label":           `{"label": "great"}`,
		"score not numeric":       `{"score": "plenty"}`,
		"feedback not an array":   `{"feedback": "add context"}`,
		"feedback entry not text": `{"feedback": [42]}`,
		"subscore missing name":   `{"subscores": [{"score": 2, "comment": "x"}]}`,
		"subscore score string":   `{"subscores": [{"name": "Role", "score": "two"}]}`,
		"subscore out of range":   `{"subscores": [{"name": "Role", "score": 9}]}`,
		"suggestion not object":   `{"suggestions": ["just a string"]}`,
		"suggestion missing text": `{"suggestions": [{"title": "t"}]}`,
		"improved prompt object":  `{"improved_prompt": {"text": "x"}}`,
	}

	for name, raw := range cases {
		if _, err := CoerceResponse(raw); err == nil {
			t.Errorf("%s: expected a coercion error", name)
		}
	}
}
