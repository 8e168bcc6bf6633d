package ending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/ending-sim/internal/mode"
	"github.com/danielpatrickdp/ending-sim/internal/score"
)

// #region helpers
var universal = score.Matrix{
	{1, 1, 1},
	{0.3, 1, 1},
	{1, 1, 1},
	{1, 1, 1},
}

var (
	standard = Thresholds{3, 2.3, 12, 9}
	another  = Thresholds{3, 2.3, 17, 16}
)

// #endregion helpers

// #region cascade-tests
func TestResolve_Standard(t *testing.T) {
	cases := []struct {
		name    string
		choices score.Choices
		kind    Kind
		text    string
	}{
		{"good", score.Choices{10, 1, 10}, Good, "Good Ending: Congratulations! You have become lover with Jaehee"},
		{"normal", score.Choices{10, 1, 9}, Normal, "Normal Ending: You have a good time with Jaehee"},
		{"bad", score.Choices{1, 1, 1}, Bad, "Bad Ending: Why aren't you try harder?"},
		{"bad relationship", score.Choices{0.2, 1, 2}, BadRelationship, "Bad Relationship Ending: You disappoint Jaehee"},
		// 0.3*0.2 + 1 + 1 = 2.06, short of the 2.3 threshold
		{"menu bad relationship falls through", score.Choices{0.2, 1, 1}, None, "No Ending Achieved"},
		{"nothing", score.Choices{0, 0, 0}, None, "No Ending Achieved"},
	}
	for _, md := range []mode.Mode{mode.Casual, mode.Deep} {
		for _, tc := range cases {
			t.Run(md.String()+"/"+tc.name, func(t *testing.T) {
				out := Resolve("Jaehee", universal, standard, tc.choices, md)
				assert.Equal(t, tc.kind, out.Kind)
				assert.Equal(t, tc.text, out.Text)
				assert.Equal(t, "Jaehee", out.Route)
				require.NotNil(t, out.Scores)
				assert.Equal(t, score.Score(universal, tc.choices), *out.Scores)
			})
		}
	}
}

func TestResolve_Another(t *testing.T) {
	out := Resolve("V", universal, another, score.Choices{10, 1, 17}, mode.Another)
	assert.Equal(t, Good, out.Kind)

	out = Resolve("V", universal, another, score.Choices{10, 1, 12}, mode.Another)
	assert.Equal(t, Normal, out.Kind)
	assert.Equal(t, "Normal Ending: You have a good time with V", out.Text)

	// third choice 16 is still normal in Another, good in Casual
	out = Resolve("V", universal, another, score.Choices{10, 1, 16}, mode.Another)
	assert.Equal(t, Normal, out.Kind)

	out = Resolve("V", universal, another, score.Choices{1, 1, 1}, mode.Another)
	assert.Equal(t, Bad, out.Kind)
}

func TestResolve_OrderGoodBeatsBadRelationship(t *testing.T) {
	c := score.Choices{0.2, 1, 12}
	s := score.Score(universal, c)
	require.GreaterOrEqual(t, s[IdxBadRelationship], standard[IdxBadRelationship])
	require.Less(t, c[0], 0.3)

	out := Resolve("Zen", universal, standard, c, mode.Casual)
	assert.Equal(t, Good, out.Kind)
}

func TestResolve_OrderNormalBeatsBadRelationship(t *testing.T) {
	out := Resolve("Zen", universal, standard, score.Choices{0.1, 5, 9}, mode.Casual)
	assert.Equal(t, Normal, out.Kind)
}

func TestResolve_BadRelationshipBoundary(t *testing.T) {
	// first choice must be strictly below 0.3
	out := Resolve("Zen", universal, standard, score.Choices{0.3, 1, 2}, mode.Casual)
	assert.Equal(t, None, out.Kind)

	out = Resolve("Zen", universal, standard, score.Choices{0.29, 1, 2}, mode.Casual)
	assert.Equal(t, BadRelationship, out.Kind)
}

func TestResolve_BadNeedsExactOnes(t *testing.T) {
	out := Resolve("Zen", universal, standard, score.Choices{1.0000001, 1, 1}, mode.Casual)
	assert.Equal(t, None, out.Kind)

	out = Resolve("Zen", universal, standard, score.Choices{1, 1, 2}, mode.Casual)
	assert.Equal(t, None, out.Kind)
}

func TestResolve_ThresholdsGate(t *testing.T) {
	strict := Thresholds{100, 100, 100, 100}
	for _, c := range []score.Choices{{10, 1, 10}, {10, 1, 9}, {0.2, 1, 2}, {1, 1, 1}} {
		out := Resolve("Zen", universal, strict, c, mode.Casual)
		assert.Equal(t, None, out.Kind, "choices %v", c)
	}
}

// #endregion cascade-tests

// #region constructor-tests
func TestLocked(t *testing.T) {
	out := NewLocked("Ray")
	assert.Equal(t, RouteLocked, out.Kind)
	assert.Equal(t, "Route locked. Ray's route already achieved.", out.String())
	assert.Nil(t, out.Scores)
}

func TestModeBad(t *testing.T) {
	assert.Equal(t,
		"Bad Ending triggered! You must have either Jaehee's, Zen's, or Yoosung's heart highest.",
		NewModeBad([]string{"Jaehee", "Zen", "Yoosung"}).Text)
	assert.Equal(t,
		"Bad Ending triggered! You must have either V's or Ray's heart highest.",
		NewModeBad([]string{"V", "Ray"}).Text)
	assert.Equal(t, "Bad Ending triggered! No character route available.", NewModeBad(nil).Text)
	assert.Equal(t, ModeBad, NewModeBad(nil).Kind)
}

func TestPrologueBad(t *testing.T) {
	out := NewPrologueBad()
	assert.Equal(t, PrologueBad, out.Kind)
	assert.Equal(t, "Bad Ending: Just don't call the police...", out.Text)
}

func TestKindRoundTrip(t *testing.T) {
	for k := None; k <= PrologueBad; k++ {
		back, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, back)
	}
	_, err := ParseKind("great")
	assert.Error(t, err)
}

// #endregion constructor-tests
