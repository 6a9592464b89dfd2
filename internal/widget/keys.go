package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gabe/intpick/internal/selector"
)

type navKey int

const (
	navUp navKey = iota
	navDown
	navPageUp
	navPageDown
	navHome
	navEnd
)

type chord struct {
	nav      navKey
	modifier Modifier
}

// chords decodes key types into a navigation key plus the modifiers that
// the terminal folded into the type. Alt arrives separately on tea.Key.
var chords = map[tea.KeyType]chord{
	tea.KeyUp:          {navUp, ModNone},
	tea.KeyShiftUp:     {navUp, ModShift},
	tea.KeyCtrlUp:      {navUp, ModCtrl},
	tea.KeyCtrlShiftUp: {navUp, ModShiftCtrl},

	tea.KeyDown:          {navDown, ModNone},
	tea.KeyShiftDown:     {navDown, ModShift},
	tea.KeyCtrlDown:      {navDown, ModCtrl},
	tea.KeyCtrlShiftDown: {navDown, ModShiftCtrl},

	tea.KeyPgUp:     {navPageUp, ModNone},
	tea.KeyCtrlPgUp: {navPageUp, ModCtrl},

	tea.KeyPgDown:     {navPageDown, ModNone},
	tea.KeyCtrlPgDown: {navPageDown, ModCtrl},

	tea.KeyHome:          {navHome, ModNone},
	tea.KeyShiftHome:     {navHome, ModShift},
	tea.KeyCtrlHome:      {navHome, ModCtrl},
	tea.KeyCtrlShiftHome: {navHome, ModShiftCtrl},

	tea.KeyEnd:          {navEnd, ModNone},
	tea.KeyShiftEnd:     {navEnd, ModShift},
	tea.KeyCtrlEnd:      {navEnd, ModCtrl},
	tea.KeyCtrlShiftEnd: {navEnd, ModShiftCtrl},
}

// Moving "up" walks towards the start of the range, as in a list.
var navCommands = map[navKey]selector.Command{
	navUp:       selector.StepDown,
	navDown:     selector.StepUp,
	navPageUp:   selector.JumpDown,
	navPageDown: selector.JumpUp,
	navHome:     selector.ToStart,
	navEnd:      selector.ToEnd,
}

func decodeKey(msg tea.KeyMsg) (chord, bool) {
	c, ok := chords[msg.Type]
	if !ok {
		return chord{}, false
	}
	if msg.Alt {
		c.modifier |= ModAlt
	}
	return c, true
}

// commandForKey maps a key event to a picker command when its modifiers
// match the required set exactly.
func commandForKey(msg tea.KeyMsg, required Modifier) (selector.Command, bool) {
	c, ok := decodeKey(msg)
	if !ok || c.modifier != required {
		return 0, false
	}
	return navCommands[c.nav], true
}

func mouseModifier(msg tea.MouseMsg) Modifier {
	var m Modifier
	if msg.Shift {
		m |= ModShift
	}
	if msg.Alt {
		m |= ModAlt
	}
	if msg.Ctrl {
		m |= ModCtrl
	}
	return m
}

// commandForMouse maps wheel presses to page jumps.
func commandForMouse(msg tea.MouseMsg, required Modifier) (selector.Command, bool) {
	if msg.Action != tea.MouseActionPress || mouseModifier(msg) != required {
		return 0, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return selector.JumpDown, true
	case tea.MouseButtonWheelDown:
		return selector.JumpUp, true
	}
	return 0, false
}

// KeyMap describes a picker's bindings for the help line. The bindings are
// informational: dispatch goes through the chord table, not key.Matches.
type KeyMap struct {
	Step key.Binding
	Jump key.Binding
	Ends key.Binding
}

func newKeyMap(m Modifier) KeyMap {
	p := m.String()
	k := KeyMap{
		Step: key.NewBinding(
			key.WithKeys(p+"up", p+"down"),
			key.WithHelp(p+"↑/"+p+"↓", "step"),
		),
		Jump: key.NewBinding(
			key.WithKeys(p+"pgup", p+"pgdown"),
			key.WithHelp(p+"pgup/"+p+"pgdown", "jump"),
		),
		Ends: key.NewBinding(
			key.WithKeys(p+"home", p+"end"),
			key.WithHelp(p+"home/"+p+"end", "first/last"),
		),
	}
	// Terminals report no shifted page keys, so only the wheel jumps here.
	if m&ModShift != 0 {
		k.Jump.SetEnabled(false)
	}
	return k
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Jump, k.Ends}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
