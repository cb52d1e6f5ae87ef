package scoring

import (
	"strings"
	"testing"

	"github.com/prompt-trainer/backend/internal/models"
)

func perfectSubs(r *Rubric) []models.Subscore {
	subs := make([]models.Subscore, 0, len(r.Attributes))
	for _, a := range r.Attributes {
		subs = append(subs, models.Subscore{Name: a.Name, Score: a.Ceiling, Comment: "ok"})
	}
	return subs
}

func floorSubs(r *Rubric) []models.Subscore {
	subs := make([]models.Subscore, 0, len(r.Attributes))
	for _, a := range r.Attributes {
		subs = append(subs, models.Subscore{Name: a.Name, Score: 0, Comment: "low"})
	}
	return subs
}

func TestSynthesize_EmptyTextUsesFallback(t *testing.T) {
	r := QuestionV2()
	improved := r.Synthesize("", "", floorSubs(r))
	if !strings.HasPrefix(improved, "Explain the topic clearly.") {
		t.Errorf("expected fallback sentence prefix, got %q", improved)
	}
}

func TestSynthesize_WhitespaceCollapsed(t *testing.T) {
	r := QuestionV2()
	improved := r.Synthesize("  What   is\n\n  Go?  ", "", perfectSubs(r))
	if improved != "What is Go?" {
		t.Errorf("expected collapsed whitespace, got %q", improved)
	}
}

func TestSynthesize_NoClausesWhenAllCeilinged(t *testing.T) {
	r := QuestionV2()
	original := "Explain SQL vs NoSQL in 5 bullets for a beginner."
	improved := r.Synthesize(original, "", perfectSubs(r))
	if improved != original {
		t.Errorf("expected unchanged prompt, got %q", improved)
	}
}

func TestSynthesize_AppendsClausesForNeedsWork(t *testing.T) {
	r := QuestionV2()
	subs := perfectSubs(r)
	subs[2].Score = 0 // Context
	subs[3].Score = 1 // Constraints & Format

	improved := r.Synthesize("What is sharding?", "", subs)
	if !strings.HasPrefix(improved, "What is sharding? ") {
		t.Errorf("expected question-mark separator without an extra period, got %q", improved)
	}
	if !strings.Contains(improved, "Prioritize details that are most relevant to the goal.") {
		t.Errorf("expected context clause, got %q", improved)
	}
	if !strings.Contains(improved, "Return exactly 5 bullet points") {
		t.Errorf("expected format clause, got %q", improved)
	}
}

func TestSynthesize_PeriodSeparatorForBareText(t *testing.T) {
	r := QuestionV2()
	subs := perfectSubs(r)
	subs[1].Score = 0 // Specificity

	improved := r.Synthesize("tell me about caching", "", subs)
	if !strings.HasPrefix(improved, "tell me about caching. ") {
		t.Errorf("expected '. ' separator, got %q", improved)
	}
}

func TestSynthesize_TemplateVariant(t *testing.T) {
	r := PromptEng()
	improved := r.Synthesize("summarize our incident report", "reduce repeat outages", floorSubs(r))

	if !strings.Contains(improved, "Task: summarize our incident report") {
		t.Errorf("expected task line with the original text, got %q", improved)
	}
	if !strings.Contains(improved, "Goal: reduce repeat outages") {
		t.Errorf("expected goal line from explicit goal, got %q", improved)
	}
	if !strings.Contains(improved, "You are an experienced") {
		t.Errorf("expected role line, got %q", improved)
	}
	if strings.HasPrefix(improved, "\n") || strings.HasSuffix(improved, "\n") {
		t.Errorf("expected no leading/trailing whitespace, got %q", improved)
	}
}

func TestSynthesize_TemplateOmitsSatisfiedLines(t *testing.T) {
	r := PromptEng()
	improved := r.Synthesize("compare A and B", "", perfectSubs(r))
	if improved != "Task: compare A and B" {
		t.Errorf("expected only the task line, got %q", improved)
	}
}

func TestSynthesize_NeverEmpty(t *testing.T) {
	for _, r := range []*Rubric{QuestionV2(), QuestionV1(), PromptEng()} {
		for _, text := range []string{"", "   ", "x", "How do I fix this?"} {
			subs := r.Evaluate(strings.TrimSpace(text), "")
			if improved := r.Synthesize(text, "", subs); improved == "" {
				t.Errorf("%s: empty improved prompt for input %q", r.Version, text)
			}
		}
	}
}
