package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/gabe/intpick/internal/widget"
)

// KeyMap holds the demo's own bindings. Picker navigation lives in each
// picker's widget.KeyMap.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Press     key.Binding
	Quit      key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	NextField: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→/tab", "next column"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("left", "shift+tab"),
		key.WithHelp("←/S-tab", "previous column"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "press"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

// helpKeys combines the focused picker's bindings with the demo's.
type helpKeys struct {
	picker *widget.KeyMap
	app    KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	var bindings []key.Binding
	if h.picker != nil {
		bindings = append(bindings, h.picker.ShortHelp()...)
	}
	return append(bindings, h.app.NextField, h.app.PrevField, h.app.Press, h.app.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// wrapIndex moves current by delta within [0, total), wrapping at both ends.
func wrapIndex(current, total, delta int) int {
	if total <= 0 {
		return 0
	}
	updated := (current + delta) % total
	if updated < 0 {
		updated += total
	}
	return updated
}
