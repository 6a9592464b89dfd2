// Package widget adapts a selector.Selector to bubbletea: it turns key and
// mouse-wheel messages into selector commands, honouring a modifier gate,
// and renders the value between two end-of-range bars.
package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gabe/intpick/internal/selector"
)

// Picker is the terminal widget around a Selector. It is not a tea.Model on
// its own: the host calls HandleKey/HandleMouse and uses the returned flag
// to decide whether the input goes to a sibling widget instead.
type Picker struct {
	sel      *selector.Selector
	modifier Modifier
	styles   Styles
	keys     KeyMap
	focused  bool
	width    int
}

// New wraps sel. The picker only reacts to input carrying exactly modifier.
func New(sel *selector.Selector, modifier Modifier, styles Styles) *Picker {
	return &Picker{
		sel:      sel,
		modifier: modifier,
		styles:   styles,
		keys:     newKeyMap(modifier),
	}
}

func (p *Picker) Selector() *selector.Selector { return p.sel }
func (p *Picker) Modifier() Modifier           { return p.modifier }
func (p *Picker) KeyMap() KeyMap               { return p.keys }
func (p *Picker) Focused() bool                { return p.focused }
func (p *Picker) Focus()                       { p.focused = true }
func (p *Picker) Blur()                        { p.focused = false }

// SetWidth fixes the rendered width. Zero sizes the widget to its content.
func (p *Picker) SetWidth(width int) {
	p.width = width
}

// HandleKey applies the command bound to msg and reports whether the key
// was consumed.
func (p *Picker) HandleKey(msg tea.KeyMsg) bool {
	cmd, ok := commandForKey(msg, p.modifier)
	if !ok {
		return false
	}
	return p.sel.Apply(cmd)
}

// HandleMouse applies wheel input. Wheel events only reach a focused picker.
func (p *Picker) HandleMouse(msg tea.MouseMsg) bool {
	if !p.focused {
		return false
	}
	cmd, ok := commandForMouse(msg, p.modifier)
	if !ok {
		return false
	}
	return p.sel.Apply(cmd)
}

// Update dispatches key and mouse messages and reports whether msg was
// consumed. Other messages are never consumed.
func (p *Picker) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.HandleKey(msg)
	case tea.MouseMsg:
		return p.HandleMouse(msg)
	}
	return false
}

func (p *Picker) topExposed() bool {
	if p.sel.Ascending() {
		return p.sel.IsAtMinimum()
	}
	return p.sel.IsAtMaximum()
}

func (p *Picker) bottomExposed() bool {
	if p.sel.Ascending() {
		return p.sel.IsAtMaximum()
	}
	return p.sel.IsAtMinimum()
}

// View renders the top bar, the formatted value and the bottom bar.
func (p *Picker) View() string {
	top := p.styles.TopCovered
	if p.topExposed() {
		top = p.styles.TopExposed
	}
	bottom := p.styles.BottomCovered
	if p.bottomExposed() {
		bottom = p.styles.BottomExposed
	}

	display := p.styles.DisplayBlurred
	if p.focused {
		display = p.styles.DisplayFocused
	}
	text := p.sel.Text()

	width := p.width
	if width <= 0 {
		width = max(ansi.StringWidth(top.Markup), ansi.StringWidth(text), ansi.StringWidth(bottom.Markup))
	}

	row := func(style lipgloss.Style, s string) string {
		return style.Width(width).Align(lipgloss.Center).Render(s)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		row(top.style(p.focused), top.Markup),
		row(display, text),
		row(bottom.style(p.focused), bottom.Markup),
	)
}
