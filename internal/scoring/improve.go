package scoring

import (
	"strings"

	"github.com/prompt-trainer/backend/internal/models"
)

// fallbackPrompt is returned when the original text is empty after
// whitespace normalization. The synthesizer never returns "".
const fallbackPrompt = "Explain the topic clearly."

// Synthesize builds exactly one rewritten prompt from the original
// text, the optional goal, and the attribute outcomes. No meta text,
// no leading/trailing whitespace.
func (r *Rubric) Synthesize(original, goal string, subs []models.Subscore) string {
	base := strings.Join(strings.Fields(original), " ")
	if base == "" {
		base = fallbackPrompt
	}

	if r.Style == RewriteTemplate {
		return r.templateRewrite(base, goal, subs)
	}
	return r.clauseRewrite(base, subs)
}

// clauseRewrite appends one fixed remediation clause per needs-work
// attribute, in rubric definition order.
func (r *Rubric) clauseRewrite(base string, subs []models.Subscore) string {
	var tail []string
	for i, a := range r.Attributes {
		if i >= len(subs) || a.Remedy == "" {
			continue
		}
		if r.NeedsWork(subs[i].Score, a.Ceiling) {
			tail = append(tail, a.Remedy)
		}
	}
	if len(tail) == 0 {
		return base
	}
	sep := ". "
	if strings.HasSuffix(base, ".") || strings.HasSuffix(base, "?") {
		sep = " "
	}
	return base + sep + strings.Join(tail, " ")
}

// templateRewrite assembles a structured multi-line prompt around the
// cleaned original, adding lines only for attributes that need work.
func (r *Rubric) templateRewrite(base, goal string, subs []models.Subscore) string {
	needs := make(map[string]bool, len(subs))
	for i, a := range r.Attributes {
		if i < len(subs) && r.NeedsWork(subs[i].Score, a.Ceiling) {
			needs[a.Name] = true
		}
	}

	var lines []string
	if needs["Role"] {
		lines = append(lines, "You are an experienced subject-matter expert.")
	}
	if strings.TrimSpace(goal) != "" {
		lines = append(lines, "Goal: "+strings.Join(strings.Fields(goal), " "))
	} else if needs["Goal"] {
		lines = append(lines, "Goal: give an answer the reader can act on immediately.")
	}
	lines = append(lines, "Task: "+base)
	if needs["Context"] {
		lines = append(lines, "Context: use the background provided; if essential details are missing, say which ones you need.")
	}
	if needs["Constraints"] {
		lines = append(lines, "Constraints: keep the answer under 200 words, neutral tone.")
	}
	if needs["Examples"] {
		lines = append(lines, "Include one short worked example.")
	}
	if needs["Evaluation Criteria"] {
		lines = append(lines, "A good answer covers the main trade-offs and ends with a recommendation.")
	}
	if needs["Output Structure"] {
		lines = append(lines, "Format the answer as a short bulleted list followed by a one-sentence summary.")
	}
	if needs["Uncertainty Handling"] {
		lines = append(lines, "If anything is ambiguous, ask one clarifying question before answering.")
	}
	return strings.Join(lines, "\n")
}
