package session

import (
	"strconv"
	"time"

	"github.com/danielpatrickdp/ending-sim/internal/ending"
	"github.com/danielpatrickdp/ending-sim/internal/mode"
	"github.com/danielpatrickdp/ending-sim/internal/score"
)

// #region record
// Grant is one accepted affinity addition.
type Grant struct {
	Name  string `json:"name"`
	Delta int    `json:"delta"`
}

// Step is one decision taken while the session ran.
type Step struct {
	Name     string
	Decision string
	Reason   string
}

// Record describes a finished session.
type Record struct {
	ID        string
	StartedAt time.Time
	Mode      mode.Mode
	Prologue  []int
	Grants    []Grant
	MenuKey   string
	Choices   *score.Choices // nil if the session stopped before the menu
	Route     string
	Affinity  int
	Outcome   ending.Outcome
	Steps     []Step
}

func (r *Record) step(name, decision, reason string) {
	r.Steps = append(r.Steps, Step{Name: name, Decision: decision, Reason: reason})
}

// #endregion record

// #region transcript
// Transcript is the player input of a session in replayable form.
type Transcript struct {
	Mode     string  `json:"mode"`
	Prologue []int   `json:"prologue"`
	Affinity []Grant `json:"affinity,omitempty"`
	Menu     string  `json:"menu,omitempty"`
}

// Transcript extracts the accepted inputs of r.
func (r Record) Transcript() Transcript {
	return Transcript{
		Mode:     r.Mode.String(),
		Prologue: r.Prologue,
		Affinity: r.Grants,
		Menu:     r.MenuKey,
	}
}

// Script renders t as the console lines that reproduce it.
func (t Transcript) Script() ([]string, error) {
	md, err := mode.ParseName(t.Mode)
	if err != nil {
		return nil, err
	}
	lines := []string{md.Key()}
	for _, p := range t.Prologue {
		lines = append(lines, strconv.Itoa(p))
	}
	for _, g := range t.Affinity {
		lines = append(lines, g.Name, strconv.Itoa(g.Delta))
	}
	lines = append(lines, "done")
	if t.Menu != "" {
		lines = append(lines, t.Menu)
	}
	return lines, nil
}

// #endregion transcript
