package replay

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/danielpatrickdp/ending-sim/internal/session"
)

// #region types
// Result captures the outcome of replaying one fixture session.
type Result struct {
	Name     string
	Passed   bool
	Kind     string
	Text     string
	Reason   string // mismatch or error description; empty when passed
	Expected FixtureExpected
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// Summarize counts passes and failures.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion types

// #region replay
// Replay runs every fixture session through a fresh roster with no pacing
// and compares the ending against the expectation.
func Replay(ctx context.Context, f *Fixture) []Result {
	results := make([]Result, 0, len(f.Sessions))
	for _, fs := range f.Sessions {
		results = append(results, replayOne(ctx, fs))
	}
	return results
}

func replayOne(ctx context.Context, fs FixtureSession) Result {
	res := Result{Name: fs.Name, Expected: fs.Expected}

	policy, err := session.ParseAffinityPolicy(fs.AffinityPolicy)
	if err != nil {
		res.Reason = err.Error()
		return res
	}
	lines, err := fs.Script()
	if err != nil {
		res.Reason = fmt.Sprintf("script: %v", err)
		return res
	}

	con := session.NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), io.Discard)
	rec, err := session.New(con, session.Options{AffinityPolicy: policy}).Run(ctx)
	if err != nil {
		res.Reason = fmt.Sprintf("run: %v", err)
		return res
	}

	res.Kind = rec.Outcome.Kind.String()
	res.Text = rec.Outcome.Text
	switch {
	case res.Kind != fs.Expected.Kind:
		res.Reason = fmt.Sprintf("expected kind=%s, got kind=%s (%s)", fs.Expected.Kind, res.Kind, res.Text)
	case fs.Expected.Text != "" && res.Text != fs.Expected.Text:
		res.Reason = fmt.Sprintf("expected text %q, got %q", fs.Expected.Text, res.Text)
	default:
		res.Passed = true
	}
	return res
}

// #endregion replay
