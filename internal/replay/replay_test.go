package replay

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/ending-sim/internal/session"
	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region fixture-tests

// TestFixture_ReferenceSessions is the regression baseline: if thresholds,
// menus or the cascade change, an ending here drifts.
func TestFixture_ReferenceSessions(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "reference_sessions.json"))
	require.NoError(t, err)
	require.Len(t, f.Sessions, 9)

	results := Replay(context.Background(), f)
	require.Len(t, results, len(f.Sessions))
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Reason)
	}
	assert.Equal(t, Summary{Total: 9, Passed: 9}, Summarize(results))
}

func TestReplay_DetectsMismatch(t *testing.T) {
	f := &Fixture{Sessions: []FixtureSession{
		{
			Name:       "wrong-kind",
			Transcript: session.Transcript{Mode: "Casual", Prologue: []int{1, 1, 1, 1}, Menu: "1"},
			Expected:   FixtureExpected{Kind: "normal"},
		},
		{
			Name:       "wrong-text",
			Transcript: session.Transcript{Mode: "Casual", Prologue: []int{1, 1, 1, 1}, Menu: "1"},
			Expected:   FixtureExpected{Kind: "good", Text: "Good Ending: Congratulations! You have become lover with Zen"},
		},
		{
			Name:       "kind-only",
			Transcript: session.Transcript{Mode: "Casual", Prologue: []int{1, 1, 1, 1}, Menu: "1"},
			Expected:   FixtureExpected{Kind: "good"},
		},
	}}

	results := Replay(context.Background(), f)
	assert.False(t, results[0].Passed)
	assert.Contains(t, results[0].Reason, "expected kind=normal")
	assert.False(t, results[1].Passed)
	assert.Contains(t, results[1].Reason, "expected text")
	assert.True(t, results[2].Passed)
	assert.Equal(t, Summary{Total: 3, Passed: 1, Failed: 2}, Summarize(results))
}

func TestReplay_Errors(t *testing.T) {
	f := &Fixture{Sessions: []FixtureSession{
		{Name: "bad-mode", Transcript: session.Transcript{Mode: "Hard"}},
		{Name: "bad-policy", AffinityPolicy: "ignore", Transcript: session.Transcript{Mode: "Casual"}},
		{Name: "truncated", Transcript: session.Transcript{Mode: "Casual", Prologue: []int{1}}},
	}}

	results := Replay(context.Background(), f)
	for _, r := range results {
		assert.False(t, r.Passed, r.Name)
		assert.NotEmpty(t, r.Reason, r.Name)
	}
	assert.Contains(t, results[2].Reason, "input closed")
}

func TestReplay_AffinityPolicy(t *testing.T) {
	f := &Fixture{Sessions: []FixtureSession{{
		Name:           "retry",
		AffinityPolicy: "retry",
		Transcript: session.Transcript{
			Mode:     "Casual",
			Prologue: []int{1, 1, 1, 1},
			Affinity: []session.Grant{{Name: "Zen", Delta: 3}},
			Menu:     "2",
		},
		Expected: FixtureExpected{Kind: "normal", Text: "Normal Ending: You have a good time with Zen"},
	}}}
	results := Replay(context.Background(), f)
	assert.True(t, results[0].Passed, results[0].Reason)
}

func TestLoadFixture_NotFound(t *testing.T) {
	_, err := LoadFixture("testdata/nonexistent.json")
	assert.Error(t, err)
}

func TestLoadFixture_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json}"), 0644))
	_, err := LoadFixture(path)
	assert.Error(t, err)
}

// #endregion fixture-tests

// #region export-tests
func TestFromRecord_RoundTrip(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer st.Close()

	tr := session.Transcript{
		Mode:     "Another",
		Prologue: []int{2, 2, 2, 2},
		Affinity: []session.Grant{{Name: "V", Delta: 10}},
		Menu:     "1",
	}
	raw, err := json.Marshal(tr)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, st.SaveSession(ctx, store.SessionRecord{
		SessionID:      "abc",
		Mode:           "Another",
		Route:          "V",
		Affinity:       10,
		EndingKind:     "good",
		EndingText:     "Good Ending: Congratulations! You have become lover with V",
		TranscriptJSON: string(raw),
	}))

	recs, err := st.ListSessions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	fs, err := FromRecord(recs[0])
	require.NoError(t, err)
	assert.Equal(t, "abc", fs.Name)
	assert.Equal(t, tr, fs.Transcript)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, WriteFixture(path, &Fixture{Description: "export", Sessions: []FixtureSession{fs}}))
	loaded, err := LoadFixture(path)
	require.NoError(t, err)

	results := Replay(ctx, loaded)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed, results[0].Reason)
}

func TestFromRecord_BadTranscript(t *testing.T) {
	_, err := FromRecord(store.SessionRecord{SessionID: "x", TranscriptJSON: "{"})
	assert.Error(t, err)
}

// #endregion export-tests
