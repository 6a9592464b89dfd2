package widget

import (
	"fmt"
	"strings"
)

// Modifier is the set of modifier keys an input event must carry for a
// picker to react to it. Matching is exact: a ctrl picker ignores ctrl+shift.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl

	ModNone         Modifier = 0
	ModShiftAlt              = ModShift | ModAlt
	ModShiftCtrl             = ModShift | ModCtrl
	ModAltCtrl               = ModAlt | ModCtrl
	ModShiftAltCtrl          = ModShift | ModAlt | ModCtrl
)

// ParseModifier reads names like "ctrl", "shift+alt" or "none".
// "meta" is accepted as an alias for alt.
func ParseModifier(s string) (Modifier, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return ModNone, nil
	}

	var m Modifier
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == ' ' }) {
		switch part {
		case "shift":
			m |= ModShift
		case "alt", "meta":
			m |= ModAlt
		case "ctrl", "control":
			m |= ModCtrl
		default:
			return ModNone, fmt.Errorf("unknown modifier %q", part)
		}
	}
	return m, nil
}

// String renders the modifier as a key prefix in bubbletea's order,
// e.g. "alt+ctrl+". ModNone renders as "".
func (m Modifier) String() string {
	var b strings.Builder
	if m&ModAlt != 0 {
		b.WriteString("alt+")
	}
	if m&ModCtrl != 0 {
		b.WriteString("ctrl+")
	}
	if m&ModShift != 0 {
		b.WriteString("shift+")
	}
	return b.String()
}

// Name is the config spelling of the modifier.
func (m Modifier) Name() string {
	if m == ModNone {
		return "none"
	}
	return strings.TrimSuffix(m.String(), "+")
}
