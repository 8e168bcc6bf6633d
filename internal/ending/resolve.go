package ending

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/ending-sim/internal/mode"
	"github.com/danielpatrickdp/ending-sim/internal/score"
)

// #region resolve
// Resolve scores the choices against m and walks the ending cascade.
// Conditions overlap, so the first match wins and order matters:
// good, normal, bad relationship, bad, then none.
func Resolve(route string, m score.Matrix, t Thresholds, c score.Choices, md mode.Mode) Outcome {
	s := score.Score(m, c)
	cutoff := md.GoodCutoff()

	var kind Kind
	switch {
	case s[IdxGood] >= t[IdxGood] && c[2] >= cutoff:
		kind = Good
	case s[IdxNormal] >= t[IdxNormal] && c[2] <= cutoff-1:
		kind = Normal
	case s[IdxBadRelationship] >= t[IdxBadRelationship] && c[0] < badRelationshipCutoff:
		kind = BadRelationship
	// exact equality on purpose: only a literal 1 triggers this ending
	case s[IdxBad] >= t[IdxBad] && c[0] == 1 && c[1] == 1 && c[2] == 1:
		kind = Bad
	default:
		kind = None
	}

	out := routeOutcome(kind, route)
	out.Scores = &s
	return out
}

// #endregion resolve

// #region constructors
func routeOutcome(kind Kind, route string) Outcome {
	var text string
	switch kind {
	case Good:
		text = fmt.Sprintf("Good Ending: Congratulations! You have become lover with %s", route)
	case Normal:
		text = fmt.Sprintf("Normal Ending: You have a good time with %s", route)
	case BadRelationship:
		text = fmt.Sprintf("Bad Relationship Ending: You disappoint %s", route)
	case Bad:
		text = "Bad Ending: Why aren't you try harder?"
	default:
		text = "No Ending Achieved"
	}
	return Outcome{Kind: kind, Route: route, Text: text}
}

// NewLocked is the outcome for a route that has already been achieved.
func NewLocked(route string) Outcome {
	return Outcome{
		Kind:  RouteLocked,
		Route: route,
		Text:  fmt.Sprintf("Route locked. %s's route already achieved.", route),
	}
}

// NewPrologueBad is the fixed ending for insisting on calling the police.
func NewPrologueBad() Outcome {
	return Outcome{Kind: PrologueBad, Text: "Bad Ending: Just don't call the police..."}
}

// NewModeBad is the mode-level bad ending. names are the characters eligible
// for the selected mode, in roster order.
func NewModeBad(names []string) Outcome {
	if len(names) == 0 {
		return Outcome{Kind: ModeBad, Text: "Bad Ending triggered! No character route available."}
	}
	return Outcome{
		Kind: ModeBad,
		Text: fmt.Sprintf("Bad Ending triggered! You must have either %s heart highest.", possessiveList(names)),
	}
}

// possessiveList renders "A's", "A's or B's", "A's, B's, or C's".
func possessiveList(names []string) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + "'s"
	}
	switch len(parts) {
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}

// #endregion constructors
