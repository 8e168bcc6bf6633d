package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/ending-sim/internal/session"
	"github.com/danielpatrickdp/ending-sim/internal/store"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string           `json:"description"`
	Sessions    []FixtureSession `json:"sessions"`
}

// FixtureSession is one scripted session and the ending it must reach.
type FixtureSession struct {
	Name           string `json:"name"`
	AffinityPolicy string `json:"affinity_policy,omitempty"`
	session.Transcript
	Expected FixtureExpected `json:"expected"`
}

// FixtureExpected captures the expected ending.
type FixtureExpected struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"` // compared only when set
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// WriteFixture writes f as indented JSON.
func WriteFixture(path string, f *Fixture) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// #endregion fixture-loader

// #region export

// FromRecord converts an archived session into a fixture entry that expects
// the archived ending.
func FromRecord(rec store.SessionRecord) (FixtureSession, error) {
	var tr session.Transcript
	if err := json.Unmarshal([]byte(rec.TranscriptJSON), &tr); err != nil {
		return FixtureSession{}, fmt.Errorf("session %s transcript: %w", rec.SessionID, err)
	}
	return FixtureSession{
		Name:       rec.SessionID,
		Transcript: tr,
		Expected:   FixtureExpected{Kind: rec.EndingKind, Text: rec.EndingText},
	}, nil
}

// #endregion export
