// Package tui is the intpick demo: a row of picker columns, each with a
// button below it, showing how pickers hand unused navigation keys to their
// neighbours.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gabe/intpick/internal/config"
	"github.com/gabe/intpick/internal/widget"
)

const (
	columnGap          = 2
	defaultColumnWidth = 24
)

const explanation = "Pickers without a modifier use the arrow keys for two things: selecting values " +
	"and moving between widgets. The button below such a picker can only be reached once the picker " +
	"passes the keystroke on, after its first or last value is reached. " +
	"A picker with a modifier only responds to modified navigation input."

// Rows inside a column.
const (
	rowPicker = iota
	rowButton
	rowCount
)

type column struct {
	title  string
	note   string
	button string
	picker *widget.Picker
}

// configReloadedMsg carries a config re-read from disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// Model represents the TUI state
type Model struct {
	columns []*column
	col     int
	row     int

	keys   KeyMap
	help   help.Model
	width  int
	status string
	failed bool

	reloads <-chan *config.Config
	logger  *slog.Logger
}

// NewModel builds the demo from cfg. Every picker must be valid.
func NewModel(cfg *config.Config, logger *slog.Logger) (*Model, error) {
	if len(cfg.Pickers) == 0 {
		return nil, fmt.Errorf("no pickers configured")
	}

	m := &Model{
		keys:   DefaultKeyMap,
		help:   help.New(),
		logger: logger,
	}

	for _, pc := range cfg.Pickers {
		c := &column{title: pc.Title, note: pc.Note, button: pc.Button}
		if c.button == "" {
			c.button = "Button"
		}
		picker, err := buildPicker(pc)
		if err != nil {
			return nil, err
		}
		picker.Selector().SetOnChange(func(previous, current int) {
			m.valueChanged(c, previous, current)
		})
		c.picker = picker
		m.columns = append(m.columns, c)
	}

	m.focus(0, rowPicker)
	return m, nil
}

// WithReloads makes the model apply configs received on ch.
func (m *Model) WithReloads(ch <-chan *config.Config) *Model {
	m.reloads = ch
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.waitForReload()
}

func (m *Model) waitForReload() tea.Cmd {
	if m.reloads == nil {
		return nil
	}
	ch := m.reloads
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configReloadedMsg{cfg: cfg}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if picker := m.focusedPicker(); picker != nil {
			picker.HandleMouse(msg)
		}
		return m, nil

	case configReloadedMsg:
		m.applyReload(msg.cfg)
		return m, m.waitForReload()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Quit) {
		return tea.Quit
	}

	if picker := m.focusedPicker(); picker != nil && picker.HandleKey(msg) {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus(m.col, max(m.row-1, 0))
	case key.Matches(msg, m.keys.Down):
		m.focus(m.col, min(m.row+1, rowCount-1))
	case key.Matches(msg, m.keys.NextField):
		m.focus(wrapIndex(m.col, len(m.columns), 1), m.row)
	case key.Matches(msg, m.keys.PrevField):
		m.focus(wrapIndex(m.col, len(m.columns), -1), m.row)
	case key.Matches(msg, m.keys.Press):
		if m.row == rowButton {
			c := m.columns[m.col]
			m.setStatus(fmt.Sprintf("%s %q pressed", c.title, c.button), false)
			m.logger.Info("button pressed", "column", c.title)
		}
	}
	return nil
}

func (m *Model) focus(col, row int) {
	for _, c := range m.columns {
		c.picker.Blur()
	}
	m.col, m.row = col, row
	if row == rowPicker {
		m.columns[col].picker.Focus()
	}
}

func (m *Model) focusedPicker() *widget.Picker {
	if m.row != rowPicker {
		return nil
	}
	return m.columns[m.col].picker
}

func (m *Model) valueChanged(c *column, previous, current int) {
	m.setStatus(fmt.Sprintf("%s %d → %d", c.title, previous, current), false)
	m.logger.Debug("value changed", "column", c.title, "previous", previous, "current", current)
}

func (m *Model) setStatus(status string, failed bool) {
	m.status = status
	m.failed = failed
}

// applyReload updates every picker from cfg or, when any entry is invalid,
// none of them.
func (m *Model) applyReload(cfg *config.Config) {
	pickers := cfg.Pickers
	if len(pickers) > len(m.columns) {
		for _, pc := range pickers[len(m.columns):] {
			m.logger.Warn("ignoring picker added on reload", "title", pc.Title)
		}
		pickers = pickers[:len(m.columns)]
	}

	for i, pc := range pickers {
		if err := checkReconfigure(pc); err != nil {
			c := m.columns[i]
			m.logger.Warn("config reload rejected", "column", c.title, "error", err)
			m.setStatus(fmt.Sprintf("reload of %s rejected: %v", c.title, err), true)
			return
		}
	}
	for i, pc := range pickers {
		if err := reconfigure(m.columns[i].picker.Selector(), pc); err != nil {
			m.logger.Error("config reload failed after validation", "column", m.columns[i].title, "error", err)
		}
	}
	m.logger.Info("config reloaded", "pickers", len(cfg.Pickers))
	m.setStatus("config reloaded", false)
}

func (m *Model) resize(width int) {
	m.width = width
	m.help.Width = width
	colWidth := m.columnWidth()
	for _, c := range m.columns {
		c.picker.SetWidth(colWidth)
	}
}

func (m *Model) columnWidth() int {
	if m.width <= 0 {
		return defaultColumnWidth
	}
	n := len(m.columns)
	return max((m.width-columnGap*(n-1))/n, 1)
}

func (m *Model) View() string {
	var b strings.Builder
	width := m.columnWidth()*len(m.columns) + columnGap*(len(m.columns)-1)

	b.WriteString(highlightStyle.Render("↑") + " or " + highlightStyle.Render("↓") + " to move one step_length.\n")
	b.WriteString(highlightStyle.Render("page up") + " or " + highlightStyle.Render("page down") + " to move one jump_length.\n")
	b.WriteString(highlightStyle.Render("home") + " or " + highlightStyle.Render("end") + " to jump to the corresponding end.\n")
	b.WriteString(strings.Repeat("─", width) + "\n\n")

	views := make([]string, 0, len(m.columns)*2)
	for i, c := range m.columns {
		if i > 0 {
			views = append(views, strings.Repeat(" ", columnGap))
		}
		views = append(views, m.renderColumn(i, c))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...) + "\n\n")

	b.WriteString(noteStyle.Width(width).Render(explanation) + "\n\n")
	b.WriteString(strings.Repeat("─", width) + "\n")

	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}

	b.WriteString(escStyle.Render("Q") + " or " + escStyle.Render("Esc") + " to quit.\n")
	b.WriteString(m.help.View(m.helpKeys()))

	return b.String()
}

func (m *Model) helpKeys() helpKeys {
	h := helpKeys{app: m.keys}
	if picker := m.focusedPicker(); picker != nil {
		keys := picker.KeyMap()
		h.picker = &keys
	}
	return h
}

func (m *Model) renderColumn(i int, c *column) string {
	width := m.columnWidth()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	button := fmt.Sprintf("< %s >", c.button)
	if i == m.col && m.row == rowButton {
		button = revealFocusStyle.Render(button)
	}

	lines := []string{
		center.Inherit(headingStyle).Render(c.title),
		center.Render(strings.Repeat("▔", ansi.StringWidth(c.title))),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, c.picker.View()),
		lipgloss.NewStyle().Width(width).Render(button),
	}
	if c.note != "" {
		lines = append(lines, "", center.Inherit(lowlightStyle).Render(c.note))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// startProgram is swapped out in tests.
var startProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

// Run starts the demo. When configPath is set, edits to that file are
// applied to the running pickers.
func Run(ctx context.Context, cfg *config.Config, configPath string, logger *slog.Logger) error {
	m, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}

	if configPath != "" {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		reloads, err := config.Watch(ctx, configPath, logger)
		if err != nil {
			logger.Warn("live reload disabled", "error", err)
		} else {
			m.WithReloads(reloads)
		}
	}

	return startProgram(m)
}
