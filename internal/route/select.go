package route

import "github.com/danielpatrickdp/ending-sim/internal/mode"

// #region select
// Select returns the highest-affinity route eligible for md, or nil when the
// mode has no characters. Ties go to the first route in roster order.
func Select(md mode.Mode, ro *Roster) *CharacterRoute {
	var best *CharacterRoute
	for _, r := range ro.Routes() {
		if r.Mode() != md {
			continue
		}
		if best == nil || r.Affinity() > best.Affinity() {
			best = r
		}
	}
	return best
}

// #endregion select

// #region mode-bad-ending
// IsModeBadEnding reports whether the route with the highest affinity across the
// whole roster belongs to a mode other than md. The maximum is computed
// independently of Select, so on ties the two can name different characters.
func IsModeBadEnding(md mode.Mode, ro *Roster) (bool, error) {
	routes := ro.Routes()
	if len(routes) == 0 {
		return false, ErrEmptyRoster
	}
	top := routes[0]
	for _, r := range routes[1:] {
		if r.Affinity() > top.Affinity() {
			top = r
		}
	}
	return top.Mode() != md, nil
}

// #endregion mode-bad-ending
