package scoring

import (
	"regexp"
	"strings"
)

// Attribute rules are deliberately shallow pattern detectors: the
// engine is a deterministic, explainable approximation of prompt
// quality, not a language model. Every rule has a defined lowest-score
// branch so arbitrary text (including empty) always yields a value.

var (
	questionWordRe = regexp.MustCompile(`(?i)\b(who|what|when|where|why|how|which)\b`)
	imperativeRe   = regexp.MustCompile(`(?i)^\s*(explain|describe|list|compare|contrast|summarize|summarise|write|outline|draft|analyze|analyse|review|translate|generate)\b`)

	quantifierRe = regexp.MustCompile(`(?i)\b(\d+|top \d+|in \d+ (words|bullets))\b`)
	audienceRe   = regexp.MustCompile(`(?i)\b(for|about|regarding|focused on|for (beginners|executives|students))\b`)
	temporalRe   = regexp.MustCompile(`(?i)\b(week|month|30 days|deadline)\b`)

	urlRe        = regexp.MustCompile(`https?://\S+`)
	inlineCodeRe = regexp.MustCompile("`[^`]{10,}`")
	structuredRe = regexp.MustCompile(`\{[^\}]{10,}\}|\[[^\]]{10,}\]`)
	listRe       = regexp.MustCompile(`(?m)(^\s*[-*]\s+|^\s*\d+\.\s+)`)
	digitRe      = regexp.MustCompile(`\d`)

	lengthLimitRe = regexp.MustCompile(`(?i)\b(in \d+ (words|sentences|bullets|lines))\b`)
	formatWordRe  = regexp.MustCompile(`(?i)\b(json|table|markdown|bullets?|schema|format)\b`)
	toneRe        = regexp.MustCompile(`(?i)\b(tone|style|level)\b`)

	contextMarkerRe = regexp.MustCompile(`(?i)\b(context:?|given|background|currently|we are|i am|our team)\b`)
	breadthRe       = regexp.MustCompile(`(?i)\b(everything|complete guide|all there is|tell me all|in every detail|every aspect)\b`)
	leadingRe       = regexp.MustCompile(`(?i)\b(obviously|clearly|surely|everyone knows|don't you think|isn't it|wouldn't you agree)\b`)
	clarifyRe       = regexp.MustCompile(`(?i)\b(ask (me )?clarifying questions?|ask me|if anything is unclear|let me know if|cite (your )?sources)\b`)
	assumeRe        = regexp.MustCompile(`(?i)\b(assume|if needed|if necessary)\b`)

	roleRe     = regexp.MustCompile(`(?i)\b(act as|you are|as an? (expert|senior|experienced)|role:?)\b`)
	goalWordRe = regexp.MustCompile(`(?i)\b(so that|in order to|my goal|i want to|i need to|objective|the aim)\b`)
	exampleRe  = regexp.MustCompile("(?i)\\bfor example\\b|\\be\\.g\\.|\\bexample:|\\bsuch as\\b|\\blike this\\b|```")
	criteriaRe = regexp.MustCompile(`(?i)\b(criteria|acceptance|success(ful)? (looks like|means)|must include|should contain|complete when)\b`)
	outStructRe = regexp.MustCompile(`(?i)\b(json|table|markdown|numbered|bullet(s| points)?|schema|sections?|headings?)\b`)
	hedgeRe    = regexp.MustCompile(`(?i)\b(if (you are |you're )?unsure|say (you )?don't know|do not (invent|make up)|confidence|sources?)\b`)
)

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// ── Question rubric rules (ceiling 2) ────────────────────

func clarityRule(text, _ string) (int, string) {
	hasQMark := strings.Contains(text, "?")
	hasQWord := questionWordRe.MatchString(text)
	hasImperative := imperativeRe.MatchString(text)
	words := wordCount(text)
	if (hasQMark && hasQWord || hasImperative) && words >= 6 {
		return 2, "Single, direct question"
	}
	if hasQMark || hasQWord || hasImperative {
		return 1, "Somewhat direct"
	}
	return 0, "Ask one clear question."
}

func specificityRule(text, _ string) (int, string) {
	hits := 0
	if quantifierRe.MatchString(text) {
		hits++
	}
	if audienceRe.MatchString(text) {
		hits++
	}
	if temporalRe.MatchString(text) {
		hits++
	}
	if hits >= 2 {
		return 2, "Specific scope"
	}
	if hits == 1 {
		return 1, "Some specifics"
	}
	return 0, "Add topic/audience/numbers."
}

// contextSignals counts structural evidence that the prompt carries its
// own inputs: URLs, code, structured data, lists, digit density.
func contextSignals(text string) int {
	signals := 0
	if urlRe.MatchString(text) {
		signals++
	}
	if strings.Contains(text, "```") || inlineCodeRe.MatchString(text) {
		signals++
	}
	if structuredRe.MatchString(text) {
		signals++
	}
	if listRe.MatchString(text) {
		signals++
	}
	if len(digitRe.FindAllString(text, -1)) >= 3 {
		signals++
	}
	return signals
}

func contextStructuralRule(text, _ string) (int, string) {
	signals := contextSignals(text)
	if signals >= 2 {
		return 2, "Includes usable context"
	}
	if signals >= 1 || wordCount(text) > 40 {
		return 1, "Some context present"
	}
	return 0, "Add essential background or inputs."
}

// contextMarkerRule is the older policy: it rewards explicit framing
// markers rather than structural signals.
func contextMarkerRule(text, _ string) (int, string) {
	markers := len(contextMarkerRe.FindAllString(text, -1))
	if markers >= 2 || (markers == 1 && wordCount(text) > 30) {
		return 2, "Background is stated"
	}
	if markers == 1 {
		return 1, "Some framing present"
	}
	return 0, "State the relevant background."
}

func formatRule(text, _ string) (int, string) {
	hits := 0
	if lengthLimitRe.MatchString(text) {
		hits++
	}
	if formatWordRe.MatchString(text) {
		hits++
	}
	if toneRe.MatchString(text) {
		hits++
	}
	if hits >= 2 {
		return 2, "Clear format/length"
	}
	if hits == 1 {
		return 1, "Some formatting"
	}
	return 0, "Set length and format."
}

// scopeRule penalizes breadth-limiting anti-signals ("everything",
// "complete guide") that make a question unanswerable.
func scopeRule(text, _ string) (int, string) {
	hits := len(breadthRe.FindAllString(text, -1))
	if hits == 0 {
		return 2, "Scope is bounded"
	}
	if hits == 1 {
		return 1, "Scope is broad"
	}
	return 0, "Narrow the scope to one aspect."
}

func neutralityRule(text, _ string) (int, string) {
	hits := len(leadingRe.FindAllString(text, -1))
	if hits == 0 {
		return 2, "Neutral phrasing"
	}
	if hits == 1 {
		return 1, "Slightly leading"
	}
	return 0, "Remove leading or loaded phrasing."
}

func actionabilityRule(text, _ string) (int, string) {
	hasAsk := strings.Contains(text, "?") || imperativeRe.MatchString(text)
	if hasAsk && wordCount(text) >= 6 {
		return 2, "Concrete ask"
	}
	if hasAsk {
		return 1, "Ask could be sharper"
	}
	return 0, "State what you want done."
}

func clarificationRule(text, _ string) (int, string) {
	if clarifyRe.MatchString(text) {
		return 2, "Invites clarification"
	}
	if assumeRe.MatchString(text) {
		return 1, "Handles unknowns implicitly"
	}
	return 0, "Invite clarifying questions."
}

// ── Prompt-engineering rubric rules (ceiling 5) ──────────

// scaleHits maps a raw signal count onto the 0-5 band.
func scaleHits(hits int) int {
	switch {
	case hits >= 4:
		return 5
	case hits == 3:
		return 4
	case hits == 2:
		return 3
	case hits == 1:
		return 2
	default:
		return 0
	}
}

func roleRule(text, _ string) (int, string) {
	if roleRe.MatchString(text) {
		if wordCount(text) >= 10 {
			return 5, "Explicit role/persona"
		}
		return 3, "Role named but thin"
	}
	return 0, "Assign the model a role."
}

func goalRule(text, goal string) (int, string) {
	if strings.TrimSpace(goal) != "" {
		return 5, "Goal stated explicitly"
	}
	if goalWordRe.MatchString(text) {
		return 4, "Goal implied in text"
	}
	if clarityScore, _ := clarityRule(text, ""); clarityScore == 2 {
		return 3, "Goal inferable from the ask"
	}
	return 0, "State the goal or outcome."
}

func richContextRule(text, _ string) (int, string) {
	hits := contextSignals(text) + len(contextMarkerRe.FindAllString(text, -1))
	if wordCount(text) > 40 {
		hits++
	}
	score := scaleHits(hits)
	if score >= 4 {
		return score, "Rich supporting context"
	}
	if score > 0 {
		return score, "Some context provided"
	}
	return 0, "Provide the relevant background."
}

func constraintsRule(text, _ string) (int, string) {
	hits := 0
	if lengthLimitRe.MatchString(text) {
		hits++
	}
	if formatWordRe.MatchString(text) {
		hits++
	}
	if toneRe.MatchString(text) {
		hits++
	}
	if temporalRe.MatchString(text) {
		hits++
	}
	score := scaleHits(hits)
	if score >= 4 {
		return score, "Precise constraints"
	}
	if score > 0 {
		return score, "Partial constraints"
	}
	return 0, "Constrain length, tone, and format."
}

func examplesRule(text, _ string) (int, string) {
	hits := len(exampleRe.FindAllString(text, -1))
	if hits >= 2 {
		return 5, "Includes worked examples"
	}
	if hits == 1 {
		return 3, "One example given"
	}
	return 0, "Add a short example of what you want."
}

func evaluationCriteriaRule(text, _ string) (int, string) {
	hits := len(criteriaRe.FindAllString(text, -1))
	if hits >= 2 {
		return 5, "Acceptance criteria stated"
	}
	if hits == 1 {
		return 3, "Some success criteria"
	}
	return 0, "Say what a good answer must include."
}

func outputStructureRule(text, _ string) (int, string) {
	hits := len(outStructRe.FindAllString(text, -1))
	score := scaleHits(hits + 1)
	if hits == 0 {
		return 0, "Describe the expected output shape."
	}
	if score >= 4 {
		return score, "Output structure specified"
	}
	return score, "Output shape partly specified"
}

func uncertaintyRule(text, _ string) (int, string) {
	hits := len(hedgeRe.FindAllString(text, -1)) + len(clarifyRe.FindAllString(text, -1))
	if hits >= 2 {
		return 5, "Uncertainty handling specified"
	}
	if hits == 1 {
		return 3, "Some uncertainty handling"
	}
	return 0, "Tell the model how to handle unknowns."
}
