package route

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/danielpatrickdp/ending-sim/internal/mode"
)

var (
	// ErrEmptyRoster is a precondition violation: the mode check needs at least one route.
	ErrEmptyRoster = errors.New("roster is empty")
	// ErrDuplicateRoute is returned when two routes share a name (case-insensitive).
	ErrDuplicateRoute = errors.New("duplicate route name")
)

// #region roster
// Roster is the ordered set of character routes owned by one session.
// Order is fixed at construction and drives tie-breaks.
type Roster struct {
	routes []*CharacterRoute
}

// NewRoster builds a roster, rejecting duplicate names.
func NewRoster(routes ...*CharacterRoute) (*Roster, error) {
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		key := fold(r.Name())
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRoute, r.Name())
		}
		seen[key] = true
	}
	return &Roster{routes: routes}, nil
}

// Routes returns the routes in roster order.
func (ro *Roster) Routes() []*CharacterRoute {
	return ro.routes
}

// Len returns the number of routes.
func (ro *Roster) Len() int {
	return len(ro.routes)
}

// Find looks a route up by name, ignoring case.
func (ro *Roster) Find(name string) (*CharacterRoute, bool) {
	key := fold(name)
	for _, r := range ro.routes {
		if fold(r.Name()) == key {
			return r, true
		}
	}
	return nil, false
}

// Names returns the names of the routes eligible for md, in roster order.
func (ro *Roster) Names(md mode.Mode) []string {
	var names []string
	for _, r := range ro.routes {
		if r.Mode() == md {
			names = append(names, r.Name())
		}
	}
	return names
}

// fold normalizes a name for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// #endregion roster
