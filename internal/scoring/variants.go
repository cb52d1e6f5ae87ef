package scoring

import (
	"fmt"

	"github.com/prompt-trainer/backend/internal/models"
)

// Rubric version identifiers. The classifier thresholds and the
// response contract are shared across all of them; only the attribute
// sets, ceilings, and rewrite policy differ.
const (
	VersionQuestionV2 = "question-v2"
	VersionQuestionV1 = "question-v1"
	VersionPromptEng  = "prompt-eng"

	DefaultVersion = VersionQuestionV2
)

// QuestionV2 is the default rubric: four attributes scored 0-2.
// Context is scored from structural signals (URLs, code, lists,
// digits), not explicit markers.
func QuestionV2() *Rubric {
	return &Rubric{
		Version: VersionQuestionV2,
		Margin:  1,
		Style:   RewriteClauses,
		Attributes: []Attribute{
			{
				Name: "Clarity", Ceiling: 2, Rule: clarityRule,
				Suggestion: models.Suggestion{Title: "Ask one question", Text: "Start with 'How/What/Why ...?'"},
			},
			{
				Name: "Specificity", Ceiling: 2, Rule: specificityRule,
				Suggestion: models.Suggestion{Title: "Be specific", Text: "Add audience/topic and numbers (e.g., 'top 3')."},
				Remedy:     "Focus on the top 3 most important points.",
			},
			{
				Name: "Context", Ceiling: 2, Rule: contextStructuralRule,
				Suggestion: models.Suggestion{Title: "Add context", Text: "Include the key background/input needed."},
				Remedy:     "Prioritize details that are most relevant to the goal.",
			},
			{
				Name: "Constraints & Format", Ceiling: 2, Rule: formatRule,
				Suggestion: models.Suggestion{Title: "Set format", Text: "Ask for bullets/table/JSON and a word limit."},
				Remedy:     "Return exactly 5 bullet points and a short summary (<=120 words).",
			},
		},
	}
}

// QuestionV1 is the older eight-attribute question rubric. Context is
// scored from explicit framing markers, and it adds scope, neutrality,
// actionability, and clarification attributes.
func QuestionV1() *Rubric {
	return &Rubric{
		Version: VersionQuestionV1,
		Margin:  1,
		Style:   RewriteClauses,
		Attributes: []Attribute{
			{
				Name: "Clarity", Ceiling: 2, Rule: clarityRule,
				Suggestion: models.Suggestion{Title: "Ask one question", Text: "Start with 'How/What/Why ...?'"},
			},
			{
				Name: "Specificity", Ceiling: 2, Rule: specificityRule,
				Suggestion: models.Suggestion{Title: "Be specific", Text: "Add audience/topic and numbers (e.g., 'top 3')."},
				Remedy:     "Focus on the top 3 most important points.",
			},
			{
				Name: "Context", Ceiling: 2, Rule: contextMarkerRule,
				Suggestion: models.Suggestion{Title: "Add context", Text: "State the situation with 'Context:' or 'Given ...'."},
				Remedy:     "Prioritize details that are most relevant to the goal.",
			},
			{
				Name: "Constraints & Format", Ceiling: 2, Rule: formatRule,
				Suggestion: models.Suggestion{Title: "Set format", Text: "Ask for bullets/table/JSON and a word limit."},
				Remedy:     "Return exactly 5 bullet points and a short summary (<=120 words).",
			},
			{
				Name: "Scope", Ceiling: 2, Rule: scopeRule,
				Suggestion: models.Suggestion{Title: "Narrow the scope", Text: "Ask about one aspect instead of everything."},
				Remedy:     "Limit the answer to the single most important aspect.",
			},
			{
				Name: "Neutrality", Ceiling: 2, Rule: neutralityRule,
				Suggestion: models.Suggestion{Title: "Stay neutral", Text: "Drop leading words like 'obviously' or 'isn't it'."},
			},
			{
				Name: "Actionability", Ceiling: 2, Rule: actionabilityRule,
				Suggestion: models.Suggestion{Title: "State the task", Text: "Say exactly what should be produced."},
			},
			{
				Name: "Clarification", Ceiling: 2, Rule: clarificationRule,
				Suggestion: models.Suggestion{Title: "Invite questions", Text: "Add 'ask clarifying questions if anything is unclear'."},
			},
		},
	}
}

// PromptEng is the richer eight-attribute prompt-engineering rubric
// scored 0-5, mirroring the rubric described to external evaluators.
// Its synthesizer produces a templated multi-line rewrite.
func PromptEng() *Rubric {
	return &Rubric{
		Version: VersionPromptEng,
		Margin:  2,
		Style:   RewriteTemplate,
		Attributes: []Attribute{
			{
				Name: "Role", Ceiling: 5, Rule: roleRule,
				Suggestion: models.Suggestion{Title: "Assign a role", Text: "Open with 'You are an experienced ...'."},
			},
			{
				Name: "Goal", Ceiling: 5, Rule: goalRule,
				Suggestion: models.Suggestion{Title: "State the goal", Text: "Say what outcome the answer should achieve."},
			},
			{
				Name: "Context", Ceiling: 5, Rule: richContextRule,
				Suggestion: models.Suggestion{Title: "Add context", Text: "Include the key background/input needed."},
			},
			{
				Name: "Constraints", Ceiling: 5, Rule: constraintsRule,
				Suggestion: models.Suggestion{Title: "Set constraints", Text: "Fix length, tone, and format explicitly."},
			},
			{
				Name: "Examples", Ceiling: 5, Rule: examplesRule,
				Suggestion: models.Suggestion{Title: "Show an example", Text: "Add one short example of the desired output."},
			},
			{
				Name: "Evaluation Criteria", Ceiling: 5, Rule: evaluationCriteriaRule,
				Suggestion: models.Suggestion{Title: "Define done", Text: "List what a good answer must include."},
			},
			{
				Name: "Output Structure", Ceiling: 5, Rule: outputStructureRule,
				Suggestion: models.Suggestion{Title: "Shape the output", Text: "Ask for JSON/table/sections explicitly."},
			},
			{
				Name: "Uncertainty Handling", Ceiling: 5, Rule: uncertaintyRule,
				Suggestion: models.Suggestion{Title: "Handle unknowns", Text: "Tell the model to ask or cite sources when unsure."},
			},
		},
	}
}

// ByVersion resolves a rubric version string to its definition.
func ByVersion(version string) (*Rubric, error) {
	switch version {
	case "", VersionQuestionV2:
		return QuestionV2(), nil
	case VersionQuestionV1:
		return QuestionV1(), nil
	case VersionPromptEng:
		return PromptEng(), nil
	default:
		return nil, fmt.Errorf("unknown rubric version: %q", version)
	}
}
