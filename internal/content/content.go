// Package content holds the static story data: coefficients, thresholds,
// the character roster, menus and flavor text.
package content

import (
	"fmt"

	"github.com/danielpatrickdp/ending-sim/internal/ending"
	"github.com/danielpatrickdp/ending-sim/internal/mode"
	"github.com/danielpatrickdp/ending-sim/internal/route"
	"github.com/danielpatrickdp/ending-sim/internal/score"
)

// #region coefficients

// Universal is the coefficient matrix shared by every character.
var Universal = score.Matrix{
	{1, 1, 1},   // bad
	{0.3, 1, 1}, // bad relationship
	{1, 1, 1},   // good
	{1, 1, 1},   // normal
}

// ThresholdsFor returns the ending cutoffs for md.
func ThresholdsFor(md mode.Mode) ending.Thresholds {
	switch md {
	case mode.Casual, mode.Deep:
		return ending.Thresholds{3, 2.3, 12, 9}
	case mode.Another:
		return ending.Thresholds{3, 2.3, 17, 16}
	}
	panic(fmt.Sprintf("content: no thresholds for %v", md))
}

// #endregion coefficients

// #region roster

// Characters lists the reference roster in order.
var Characters = []struct {
	Name string
	Mode mode.Mode
}{
	{"Jaehee", mode.Casual},
	{"Zen", mode.Casual},
	{"Yoosung", mode.Casual},
	{"Jumin", mode.Deep},
	{"707", mode.Deep},
	{"V", mode.Another},
	{"Ray", mode.Another},
}

// NewRoster builds a fresh roster with every affinity at zero.
func NewRoster() *route.Roster {
	routes := make([]*route.CharacterRoute, len(Characters))
	for i, c := range Characters {
		routes[i] = route.New(c.Name, Universal, ThresholdsFor(c.Mode), c.Mode)
	}
	ro, err := route.NewRoster(routes...)
	if err != nil {
		panic(fmt.Sprintf("content: reference roster: %v", err))
	}
	return ro
}

// modeBadOrder is the name order each mode's bad-ending text uses.
var modeBadOrder = map[mode.Mode][]string{
	mode.Casual:  {"Jaehee", "Zen", "Yoosung"},
	mode.Deep:    {"707", "Jumin"},
	mode.Another: {"V", "Ray"},
}

// ModeBadNames returns the characters named by md's mode-level bad ending.
// A roster whose md characters differ from the reference ones gets roster order.
func ModeBadNames(md mode.Mode, ro *route.Roster) []string {
	names := ro.Names(md)
	order := modeBadOrder[md]
	if len(order) != len(names) {
		return names
	}
	for _, n := range order {
		r, ok := ro.Find(n)
		if !ok || r.Mode() != md {
			return names
		}
	}
	return order
}

// #endregion roster

// #region menu

// MenuOption is one predefined final choice.
type MenuOption struct {
	Key     string
	Label   string
	Choices score.Choices
}

var standardMenu = []MenuOption{
	{"1", "For Good Ending: 10, 1, 10", score.Choices{10, 1, 10}},
	{"2", "For Normal Ending: 10, 1, 9", score.Choices{10, 1, 9}},
	{"3", "For Bad Relationship Ending: 0.2, 1, 1", score.Choices{0.2, 1, 1}},
	{"4", "For Bad Ending: 1, 1, 1", score.Choices{1, 1, 1}},
}

var anotherMenu = []MenuOption{
	{"1", "Choice for Good Ending: 10, 1, 17", score.Choices{10, 1, 17}},
	{"2", "Choice for Normal Ending: 10, 1, 12", score.Choices{10, 1, 12}},
	{"3", "Choice for Bad Relationship Ending: 0.2, 1, 1", score.Choices{0.2, 1, 1}},
	{"4", "Choice for Bad Ending: 1, 1, 1", score.Choices{1, 1, 1}},
}

// Menu returns the four final choices offered in md.
func Menu(md mode.Mode) []MenuOption {
	switch md.Family() {
	case mode.FamilyAnother:
		return anotherMenu
	default:
		return standardMenu
	}
}

// Pick returns the menu option for key, if any.
func Pick(md mode.Mode, key string) (MenuOption, bool) {
	for _, opt := range Menu(md) {
		if opt.Key == key {
			return opt, true
		}
	}
	return MenuOption{}, false
}

// #endregion menu
