package evaluator

import "fmt"

// systemRubric describes the prompt-engineering rubric and the exact
// schema the generator must return. The score→label mapping matches
// the local classifier thresholds so a cooperative model stays
// consistent with the fallback path.
const systemRubric = "You are an expert evaluator of prompt engineering quality. " +
	"Assess prompts based on: Role/Persona, Goal clarity, Context, Constraints " +
	"(length, tone, format), Examples (few-shot), Evaluation/acceptance criteria, " +
	"Structure of expected output, and Uncertainty handling (clarifying questions, cite sources). " +
	"Return a strict JSON object with fields: label ('good'|'ok'|'bad'), score (0-100), " +
	"summary, subscores (array of {name, score:0-5, comment}), feedback (array of strings), " +
	"suggestions (array of {title, text}), improved_prompt (string)."

func buildUserPrompt(prompt, goal string) string {
	if goal == "" {
		goal = "None"
	}
	return fmt.Sprintf(
		"Evaluate the following prompt for quality.\n\n"+
			"Prompt:\n%s\n\n"+
			"Goal (optional): %s\n\n"+
			"Scoring guidance:\n"+
			"- 90-100: Exceptional; explicit role, clear goal, rich context, precise constraints, examples, structure, uncertainty handling.\n"+
			"- 60-89: Solid; some aspects missing (e.g., examples/constraints).\n"+
			"- 0-59: Weak; vague, lacks goal/context/format.\n"+
			"Map the score to label: good (>=75), ok (45-74), bad (<45).\n"+
			"Provide a concise improved_prompt that addresses top gaps.",
		prompt, goal,
	)
}
