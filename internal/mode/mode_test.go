package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := map[string]Mode{"1": Casual, "2": Deep, "3": Another, " 2 ": Deep}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "0", "4", "casual", "1.0", "one"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidMode, "input %q", in)
	}
}

func TestParseName(t *testing.T) {
	m, err := ParseName("another")
	require.NoError(t, err)
	assert.Equal(t, Another, m)

	_, err = ParseName("hard")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestGoodCutoff(t *testing.T) {
	assert.Equal(t, 10.0, Casual.GoodCutoff())
	assert.Equal(t, 10.0, Deep.GoodCutoff())
	assert.Equal(t, 17.0, Another.GoodCutoff())
	assert.Panics(t, func() { Mode(0).GoodCutoff() })
}

func TestFamily(t *testing.T) {
	assert.Equal(t, Casual.Family(), Deep.Family())
	assert.NotEqual(t, Casual.Family(), Another.Family())
}

func TestStringAndValid(t *testing.T) {
	for _, m := range All() {
		assert.True(t, m.Valid())
		back, err := ParseName(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
	assert.False(t, Mode(0).Valid())
	for _, m := range All() {
		back, err := Parse(m.Key())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
	assert.Equal(t, "Mode(9)", Mode(9).String())
}
