package route

import (
	"errors"
	"fmt"

	"github.com/danielpatrickdp/ending-sim/internal/ending"
	"github.com/danielpatrickdp/ending-sim/internal/mode"
	"github.com/danielpatrickdp/ending-sim/internal/score"
)

// ErrNegativeAffinity is returned when an affinity grant would lower a counter.
var ErrNegativeAffinity = errors.New("affinity delta must not be negative")

// #region character-route
// CharacterRoute is one character's resolution path. Identity, coefficients,
// thresholds and mode are fixed at construction; only affinity and the lock change.
type CharacterRoute struct {
	name       string
	matrix     score.Matrix
	thresholds ending.Thresholds
	mode       mode.Mode
	locked     bool
	affinity   int
}

// New creates an unlocked route with zero affinity.
func New(name string, m score.Matrix, t ending.Thresholds, md mode.Mode) *CharacterRoute {
	return &CharacterRoute{name: name, matrix: m, thresholds: t, mode: md}
}

// Name is the character's display name.
func (r *CharacterRoute) Name() string { return r.name }

// Mode is the story mode the route belongs to.
func (r *CharacterRoute) Mode() mode.Mode { return r.mode }

// Matrix returns the route's coefficient matrix.
func (r *CharacterRoute) Matrix() score.Matrix { return r.matrix }

// Thresholds returns the route's ending cutoffs.
func (r *CharacterRoute) Thresholds() ending.Thresholds { return r.thresholds }

// Affinity is the current heart count.
func (r *CharacterRoute) Affinity() int { return r.affinity }

// Locked reports whether Lock has been called.
func (r *CharacterRoute) Locked() bool { return r.locked }

// AddAffinity adds delta hearts. There is no cap.
func (r *CharacterRoute) AddAffinity(delta int) error {
	if delta < 0 {
		return fmt.Errorf("%s: %w: %d", r.name, ErrNegativeAffinity, delta)
	}
	r.affinity += delta
	return nil
}

// Lock marks the route as achieved. Locked routes refuse further resolution.
// A session never locks routes itself; callers that keep a roster across
// sessions decide when a route is done.
func (r *CharacterRoute) Lock() {
	r.locked = true
}

// Resolve determines this route's ending for the given choices.
func (r *CharacterRoute) Resolve(c score.Choices, md mode.Mode) ending.Outcome {
	if r.locked {
		return ending.NewLocked(r.name)
	}
	return ending.Resolve(r.name, r.matrix, r.thresholds, c, md)
}

// #endregion character-route
