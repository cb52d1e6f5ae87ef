package scoring

import (
	"math"

	"github.com/prompt-trainer/backend/internal/models"
)

// RuleFunc scores one attribute of a prompt. It must be pure: same
// (text, goal) in, same (score, comment) out, for arbitrary text
// including empty strings. Scores outside [0, ceiling] are clamped
// by the rubric.
type RuleFunc func(text, goal string) (int, string)

// RewriteStyle selects how the improved prompt is synthesized.
type RewriteStyle int

const (
	// RewriteClauses appends one remediation clause per needs-work
	// attribute to the cleaned original text.
	RewriteClauses RewriteStyle = iota
	// RewriteTemplate assembles a multi-line role/goal/context/
	// constraints rewrite around the cleaned original text.
	RewriteTemplate
)

// Attribute is one named quality dimension within a rubric.
type Attribute struct {
	Name       string
	Ceiling    int
	Rule       RuleFunc
	Suggestion models.Suggestion
	// Remedy is the clause appended by the clause-style synthesizer
	// when this attribute needs work. Empty means no clause.
	Remedy string
}

// Rubric is a fixed, versioned ordered set of attributes plus the
// aggregation constants. Definitions are immutable after construction
// and safe for concurrent use.
type Rubric struct {
	Version    string
	Attributes []Attribute
	// Margin defines "needs work": score <= ceiling - margin.
	Margin int
	Style  RewriteStyle
}

// Evaluate runs every attribute rule in definition order and returns
// one subscore per attribute, each clamped to [0, ceiling].
func (r *Rubric) Evaluate(text, goal string) []models.Subscore {
	subs := make([]models.Subscore, 0, len(r.Attributes))
	for _, a := range r.Attributes {
		score, comment := a.Rule(text, goal)
		if score < 0 {
			score = 0
		}
		if score > a.Ceiling {
			score = a.Ceiling
		}
		subs = append(subs, models.Subscore{Name: a.Name, Score: score, Comment: comment})
	}
	return subs
}

// Overall maps the subscore sum onto 0-100:
// round(100 * sum(scores) / sum(ceilings)).
func (r *Rubric) Overall(subs []models.Subscore) int {
	sum := 0
	max := 0
	for i, a := range r.Attributes {
		if i < len(subs) {
			sum += subs[i].Score
		}
		max += a.Ceiling
	}
	if max == 0 {
		return 0
	}
	return int(math.Round(100 * float64(sum) / float64(max)))
}

// NeedsWork reports whether a subscore is far enough below its ceiling
// to warrant a suggestion and a rewrite clause.
func (r *Rubric) NeedsWork(score, ceiling int) bool {
	return score <= ceiling-r.Margin
}
