package mode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// #region mode

// Mode is the top-level story branch. It gates which characters are eligible
// and which thresholds apply.
type Mode int

const (
	Casual Mode = iota + 1
	Deep
	Another
)

// ErrInvalidMode is returned when input does not name a story mode.
var ErrInvalidMode = errors.New("invalid story mode")

// All returns the modes in menu order.
func All() []Mode {
	return []Mode{Casual, Deep, Another}
}

// String returns the display name ("Casual", "Deep", "Another").
func (m Mode) String() string {
	switch m {
	case Casual:
		return "Casual"
	case Deep:
		return "Deep"
	case Another:
		return "Another"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Key returns the console selection for m ("1", "2" or "3").
func (m Mode) Key() string {
	return strconv.Itoa(int(m))
}

// Valid reports whether m is one of the three story modes.
func (m Mode) Valid() bool {
	switch m {
	case Casual, Deep, Another:
		return true
	}
	return false
}

// #endregion mode

// #region cutoffs

// GoodCutoff is the minimum third choice for a Good ending. Normal endings
// require the third choice to stay at or below GoodCutoff()-1.
func (m Mode) GoodCutoff() float64 {
	switch m {
	case Casual, Deep:
		return 10
	case Another:
		return 17
	}
	panic(fmt.Sprintf("mode: no good cutoff for %v", m))
}

// Family groups modes that share a final choice menu.
type Family int

const (
	FamilyStandard Family = iota + 1 // Casual and Deep
	FamilyAnother
)

// Family returns the menu family for m.
func (m Mode) Family() Family {
	switch m {
	case Casual, Deep:
		return FamilyStandard
	case Another:
		return FamilyAnother
	}
	panic(fmt.Sprintf("mode: no menu family for %v", m))
}

// #endregion cutoffs

// #region parse

// Parse maps the console selection "1", "2" or "3" to a mode.
func Parse(input string) (Mode, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return Casual, nil
	case "2":
		return Deep, nil
	case "3":
		return Another, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, input)
}

// ParseName maps a mode name such as "casual" or "Another" to a mode.
func ParseName(name string) (Mode, error) {
	for _, m := range All() {
		if strings.EqualFold(strings.TrimSpace(name), m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

// #endregion parse
