package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPalette(t *testing.T) {
	if highlightColor != lipgloss.Color("#e5c07b") {
		t.Fatalf("unexpected highlightColor: %v", highlightColor)
	}
	if displayBgColor != lipgloss.Color("#fab283") {
		t.Fatalf("unexpected displayBgColor: %v", displayBgColor)
	}
}

func TestHighlightedPickerStylesKeepsMarkup(t *testing.T) {
	s := highlightedPickerStyles()
	if s.TopCovered.Markup != "▲" || s.BottomExposed.Markup != "───" {
		t.Fatalf("expected default markup, got %q / %q", s.TopCovered.Markup, s.BottomExposed.Markup)
	}
	if s.DisplayFocused.GetBackground() != displayBgColor {
		t.Fatalf("expected focused display background %v", displayBgColor)
	}
}
