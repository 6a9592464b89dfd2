package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gabe/intpick/internal/config"
	"github.com/gabe/intpick/internal/logging"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(config.DefaultConfig(), logging.Discard())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func keyMsg(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

func TestModelInitialFocus(t *testing.T) {
	m := newTestModel(t)
	if m.col != 0 || m.row != rowPicker {
		t.Fatalf("expected first picker focused, got col %d row %d", m.col, m.row)
	}
	if !m.columns[0].picker.Focused() {
		t.Fatal("expected first picker to hold focus")
	}
	if len(m.columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(m.columns))
	}
}

func TestNewModelRejectsInvalidPicker(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Pickers[0].Value = 10
	cfg.Pickers[0].Maximum = new(int)
	if _, err := NewModel(cfg, logging.Discard()); err == nil {
		t.Fatal("expected error for value above maximum")
	}

	cfg = config.DefaultConfig()
	cfg.Pickers[1].Modifier = "hyper"
	if _, err := NewModel(cfg, logging.Discard()); err == nil {
		t.Fatal("expected error for unknown modifier")
	}

	if _, err := NewModel(&config.Config{}, logging.Discard()); err == nil {
		t.Fatal("expected error without pickers")
	}
}

func TestUnhandledNavigationMovesFocus(t *testing.T) {
	m := newTestModel(t)

	// The first picker spans the whole int range: only at its end does down
	// fall through to the button.
	send(m, keyMsg(tea.KeyDown))
	if m.row != rowPicker || m.columns[0].picker.Selector().Value() != 1 {
		t.Fatalf("expected picker to consume down, row %d value %d", m.row, m.columns[0].picker.Selector().Value())
	}

	send(m, keyMsg(tea.KeyEnd), keyMsg(tea.KeyDown))
	if m.row != rowButton {
		t.Fatal("expected focus on button after the picker is exhausted")
	}
	if m.columns[0].picker.Focused() {
		t.Fatal("expected picker to lose focus")
	}

	send(m, keyMsg(tea.KeyUp))
	if m.row != rowPicker {
		t.Fatal("expected up on the button to focus the picker")
	}
}

func TestSwallowingPickerKeepsFocus(t *testing.T) {
	m := newTestModel(t)
	send(m, keyMsg(tea.KeyLeft))
	if m.col != 2 {
		t.Fatalf("expected wrap to last column, got %d", m.col)
	}

	picker := m.columns[2].picker
	send(m, keyMsg(tea.KeyCtrlEnd), keyMsg(tea.KeyCtrlDown))
	if picker.Selector().Value() != 9999 {
		t.Fatalf("expected 9999, got %d", picker.Selector().Value())
	}
	if m.row != rowPicker {
		t.Fatal("expected exhausted ctrl+down to be swallowed")
	}

	// Plain arrows are not meant for this picker and move focus.
	send(m, keyMsg(tea.KeyDown))
	if m.row != rowButton {
		t.Fatal("expected plain down to reach the button")
	}
}

func TestDescendingPickerStatus(t *testing.T) {
	m := newTestModel(t)
	send(m, keyMsg(tea.KeyTab), keyMsg(tea.KeyDown))

	if got := m.columns[1].picker.Selector().Value(); got != -5 {
		t.Fatalf("expected -5, got %d", got)
	}
	if m.status != "descending: 0 → -5" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestButtonPress(t *testing.T) {
	m := newTestModel(t)
	send(m, keyMsg(tea.KeyRight), keyMsg(tea.KeyEnd), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))

	if m.row != rowButton {
		t.Fatal("expected button focus")
	}
	if !strings.Contains(m.status, "pressed") {
		t.Fatalf("expected press status, got %q", m.status)
	}
}

func TestMouseWheelGoesToFocusedPicker(t *testing.T) {
	m := newTestModel(t)
	send(m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})

	if got := m.columns[0].picker.Selector().Value(); got != 100 {
		t.Fatalf("expected jump to 100, got %d", got)
	}
	if got := m.columns[1].picker.Selector().Value(); got != 0 {
		t.Fatalf("expected unfocused picker unchanged, got %d", got)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyRunes, Runes: []rune("Q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t)
		cmd := send(m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestReloadAppliesBounds(t *testing.T) {
	m := newTestModel(t)

	cfg := config.DefaultConfig()
	lo, hi := 10, 20
	cfg.Pickers[0].Minimum = &lo
	cfg.Pickers[0].Maximum = &hi
	cfg.Pickers[0].StepLength = 3
	send(m, configReloadedMsg{cfg: cfg})

	sel := m.columns[0].picker.Selector()
	if sel.Value() != 10 || sel.Minimum() != 10 || sel.Maximum() != 20 {
		t.Fatalf("unexpected selector after reload: %s", sel)
	}
	if sel.StepLength() != 3 {
		t.Fatalf("expected step length 3, got %d", sel.StepLength())
	}
	if m.status != "config reloaded" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestReloadRejectsInvertedBounds(t *testing.T) {
	m := newTestModel(t)

	cfg := config.DefaultConfig()
	lo, hi := 5, 1
	cfg.Pickers[2].Minimum = &lo
	cfg.Pickers[2].Maximum = &hi
	send(m, configReloadedMsg{cfg: cfg})

	sel := m.columns[2].picker.Selector()
	if sel.Minimum() != 1 || sel.Maximum() != 9999 {
		t.Fatalf("expected bounds unchanged, got [%d, %d]", sel.Minimum(), sel.Maximum())
	}
	if !m.failed {
		t.Fatal("expected failure status")
	}
}

func TestRejectedReloadLeavesEveryPickerUnchanged(t *testing.T) {
	m := newTestModel(t)

	cfg := config.DefaultConfig()
	lo, hi := 10, 20
	cfg.Pickers[0].Minimum = &lo
	cfg.Pickers[0].Maximum = &hi
	cfg.Pickers[1].StepLength = 7
	cfg.Pickers[2].JumpLength = -1
	send(m, configReloadedMsg{cfg: cfg})

	first := m.columns[0].picker.Selector()
	if first.Value() != 0 || first.Minimum() == 10 || first.Maximum() == 20 {
		t.Fatalf("expected first picker untouched, got %s", first)
	}
	if step := m.columns[1].picker.Selector().StepLength(); step != 5 {
		t.Fatalf("expected second picker step length 5, got %d", step)
	}
	if !m.failed || !strings.Contains(m.status, "additional parameters:") {
		t.Fatalf("expected failure naming the third picker, got %q", m.status)
	}
}

func TestReloadWaitsOnChannel(t *testing.T) {
	m := newTestModel(t)
	if m.Init() != nil {
		t.Fatal("expected no command without reload channel")
	}

	ch := make(chan *config.Config, 1)
	m.WithReloads(ch)
	ch <- config.DefaultConfig()

	msg := m.Init()()
	if _, ok := msg.(configReloadedMsg); !ok {
		t.Fatalf("expected configReloadedMsg, got %T", msg)
	}

	close(ch)
	if msg := m.Init()(); msg != nil {
		t.Fatalf("expected nil after close, got %T", msg)
	}
}

func TestViewIncludesColumns(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := m.View()
	for _, want := range []string{"default:", "descending:", "additional parameters:", "2018", "ᐃ", "Try to reach this button...", "press additionally 'ctrl'", "to quit."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewGroupsDigits(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	m := newTestModel(t)
	send(m, tea.WindowSizeMsg{Width: 120, Height: 30}, keyMsg(tea.KeyTab), keyMsg(tea.KeyHome))

	if !strings.Contains(m.View(), "9,223,372,036,854,775,807") {
		t.Fatal("expected grouped maximum in the descending picker")
	}
}

func TestWrapIndex(t *testing.T) {
	if next := wrapIndex(0, 3, 1); next != 1 {
		t.Fatalf("expected 1, got %d", next)
	}
	if next := wrapIndex(2, 3, 1); next != 0 {
		t.Fatalf("expected wrap to 0, got %d", next)
	}
	if next := wrapIndex(0, 3, -1); next != 2 {
		t.Fatalf("expected wrap to 2, got %d", next)
	}
	if next := wrapIndex(0, 0, 1); next != 0 {
		t.Fatalf("expected 0 for empty ring, got %d", next)
	}
}
