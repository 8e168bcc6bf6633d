package ending

import (
	"fmt"

	"github.com/danielpatrickdp/ending-sim/internal/score"
)

// #region kind
// Kind classifies how a session ended.
type Kind int

const (
	None Kind = iota
	Good
	Normal
	BadRelationship
	Bad
	RouteLocked
	ModeBad
	PrologueBad
)

var kindNames = map[Kind]string{
	None:            "none",
	Good:            "good",
	Normal:          "normal",
	BadRelationship: "bad_relationship",
	Bad:             "bad",
	RouteLocked:     "route_locked",
	ModeBad:         "mode_bad",
	PrologueBad:     "prologue_bad",
}

// String returns the stable storage name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind reads back a name produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown ending kind %q", s)
}

// #endregion kind

// #region thresholds
// Thresholds are the per-route score cutoffs.
type Thresholds [4]float64

// Threshold indexes, matching the score matrix rows.
const (
	IdxBad = iota
	IdxBadRelationship
	IdxGood
	IdxNormal
)

// badRelationshipCutoff is the exclusive upper bound on the first choice.
const badRelationshipCutoff = 0.3

// #endregion thresholds

// #region outcome
// Outcome is the single terminal classification of a session.
type Outcome struct {
	Kind   Kind
	Route  string        // empty for endings not tied to a route
	Text   string        // final line shown to the player
	Scores *score.Vector // nil unless the resolver computed scores
}

// String returns the player-facing text.
func (o Outcome) String() string {
	return o.Text
}

// #endregion outcome
