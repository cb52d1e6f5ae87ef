package scoring

import (
	"reflect"
	"strings"
	"testing"

	"github.com/prompt-trainer/backend/internal/models"
)

func TestEvaluate_WellFormedPromptScoresGood(t *testing.T) {
	engine := NewEngine(QuestionV2())
	resp := engine.Evaluate("Explain the differences between SQL and NoSQL in 5 bullets for a beginner.", "")

	if resp.Label != models.LabelGood {
		t.Errorf("expected label good, got %q (score %d)", resp.Label, resp.Score)
	}
	if resp.Score < 75 {
		t.Errorf("expected score >= 75, got %d", resp.Score)
	}
}

func TestEvaluate_VaguePromptScoresLow(t *testing.T) {
	engine := NewEngine(QuestionV2())
	resp := engine.Evaluate("How do I fix this?", "")

	if resp.Label == models.LabelGood {
		t.Errorf("expected a low label, got %q (score %d)", resp.Label, resp.Score)
	}

	foundSpecificity := false
	for _, f := range resp.Feedback {
		if strings.HasPrefix(f, "Specificity:") {
			foundSpecificity = true
		}
	}
	if !foundSpecificity {
		t.Errorf("expected feedback to mention specificity, got %v", resp.Feedback)
	}
}

func TestEvaluate_EmptyTextDegradesToFloor(t *testing.T) {
	engine := NewEngine(QuestionV2())
	resp := engine.Evaluate("", "")

	if resp.Score != 0 {
		t.Errorf("expected score 0, got %d", resp.Score)
	}
	if resp.Label != models.LabelBad {
		t.Errorf("expected label bad, got %q", resp.Label)
	}
	for _, sub := range resp.Subscores {
		if sub.Score != 0 {
			t.Errorf("expected floor score for %s, got %d", sub.Name, sub.Score)
		}
	}
	if !strings.HasPrefix(resp.ImprovedPrompt, "Explain the topic clearly.") {
		t.Errorf("expected generic fallback rewrite, got %q", resp.ImprovedPrompt)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	for _, version := range []string{VersionQuestionV2, VersionQuestionV1, VersionPromptEng} {
		rubric, err := ByVersion(version)
		if err != nil {
			t.Fatalf("ByVersion(%q): %v", version, err)
		}
		engine := NewEngine(rubric)

		first := engine.Evaluate("Compare Postgres and MySQL for a read-heavy workload.", "pick a database")
		second := engine.Evaluate("Compare Postgres and MySQL for a read-heavy workload.", "pick a database")

		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: identical input produced different outputs", version)
		}
	}
}

func TestEvaluate_InvariantsAcrossInputs(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"x",
		"How do I fix this?",
		"Explain the differences between SQL and NoSQL in 5 bullets for a beginner.",
		"Context: we run Kubernetes 1.29.\n- 40 nodes\n- spot instances\nWhy do pods restart?",
		"Tell me everything about everything, obviously it's all important, don't you think?",
		strings.Repeat("lorem ipsum ", 300),
		"日本語のプロンプトはどう評価されますか？",
	}

	for _, version := range []string{VersionQuestionV2, VersionQuestionV1, VersionPromptEng} {
		rubric, _ := ByVersion(version)
		engine := NewEngine(rubric)
		for _, input := range inputs {
			resp := engine.Evaluate(input, "")

			if resp.Score < 0 || resp.Score > 100 {
				t.Errorf("%s: score %d out of range for %q", version, resp.Score, input)
			}
			if resp.Label != LabelForScore(resp.Score) {
				t.Errorf("%s: label %q inconsistent with score %d", version, resp.Label, resp.Score)
			}
			if len(resp.Subscores) != len(rubric.Attributes) {
				t.Errorf("%s: expected %d subscores, got %d", version, len(rubric.Attributes), len(resp.Subscores))
			}
			for i, sub := range resp.Subscores {
				attr := rubric.Attributes[i]
				if sub.Name != attr.Name {
					t.Errorf("%s: subscore %d is %q, want %q (definition order)", version, i, sub.Name, attr.Name)
				}
				if sub.Score < 0 || sub.Score > attr.Ceiling {
					t.Errorf("%s/%s: score %d outside [0,%d]", version, sub.Name, sub.Score, attr.Ceiling)
				}
			}
			if len(resp.Feedback) > maxFeedbackItems {
				t.Errorf("%s: %d feedback items exceeds cap", version, len(resp.Feedback))
			}
			if resp.ImprovedPrompt == "" {
				t.Errorf("%s: empty improved prompt for %q", version, input)
			}
			if resp.Summary != SummaryForLabel(resp.Label) {
				t.Errorf("%s: summary does not match label", version)
			}
		}
	}
}

func TestEvaluate_FeedbackWorstFirst(t *testing.T) {
	engine := NewEngine(QuestionV2())
	// Clarity scores 2, specificity 1 ("for"), context 0, format 0.
	resp := engine.Evaluate("What is the best way to learn for an exam without burning out?", "")

	if len(resp.Feedback) == 0 {
		t.Fatal("expected feedback")
	}
	lastScore := -1
	for _, line := range resp.Feedback {
		name := strings.SplitN(line, ":", 2)[0]
		for _, sub := range resp.Subscores {
			if sub.Name == name {
				if sub.Score < lastScore {
					t.Errorf("feedback not worst-first: %v", resp.Feedback)
				}
				lastScore = sub.Score
			}
		}
	}
}

func TestEvaluate_SuggestionsDedupedByAttribute(t *testing.T) {
	engine := NewEngine(QuestionV2())
	resp := engine.Evaluate("", "")

	seen := map[string]bool{}
	for _, s := range resp.Suggestions {
		if seen[s.Title] {
			t.Errorf("duplicate suggestion %q", s.Title)
		}
		seen[s.Title] = true
	}
	if len(resp.Suggestions) != len(QuestionV2().Attributes) {
		t.Errorf("expected one suggestion per failing attribute, got %d", len(resp.Suggestions))
	}
}

func TestByVersion_UnknownVersion(t *testing.T) {
	if _, err := ByVersion("question-v9"); err == nil {
		t.Error("expected an error for an unknown rubric version")
	}
}
