package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gabe/intpick/internal/widget"
)

// Demo palette (dark terminals)
var (
	// Text colors
	textColor      = lipgloss.Color("#eeeeee")
	textMutedColor = lipgloss.Color("#808080")
	textDarkColor  = lipgloss.Color("#0a0a0a")

	// Accent colors
	highlightColor = lipgloss.Color("#e5c07b") // yellow
	noteColor      = lipgloss.Color("#7fd88f") // green
	escColor       = lipgloss.Color("#e06c75") // red
	displayBgColor = lipgloss.Color("#fab283") // warm peach

	// Bar colors
	barActiveFocusColor   = lipgloss.Color("#c0c0c0")
	barActiveBlurColor    = lipgloss.Color("#3c3c3c")
	barInactiveFocusColor = lipgloss.Color("#606060")
	barInactiveBlurColor  = lipgloss.Color("#282828")
)

var baseStyle = lipgloss.NewStyle()

// Content styles
var (
	headingStyle = baseStyle.
			Bold(true)

	highlightStyle = baseStyle.
			Foreground(highlightColor).
			Bold(true)

	lowlightStyle = baseStyle.
			Foreground(textMutedColor)

	noteStyle = baseStyle.
			Foreground(noteColor).
			Bold(true)

	escStyle = baseStyle.
			Foreground(escColor).
			Bold(true)

	statusStyle = baseStyle.
			Foreground(textColor)

	errorStyle = baseStyle.
			Foreground(escColor)

	// Focus indicator shared by buttons and plain pickers
	revealFocusStyle = baseStyle.
				Reverse(true)
)

// highlightedPickerStyles colours the value row and both bars, distinguishing
// focus and whether an end has been reached.
func highlightedPickerStyles() widget.Styles {
	active := widget.Bar{
		Focused: baseStyle.Foreground(barActiveFocusColor),
		Blurred: baseStyle.Foreground(barActiveBlurColor),
	}
	inactive := widget.Bar{
		Focused: baseStyle.Foreground(barInactiveFocusColor),
		Blurred: baseStyle.Foreground(barInactiveBlurColor),
	}

	s := widget.DefaultStyles()
	s.TopCovered.Focused, s.TopCovered.Blurred = active.Focused, active.Blurred
	s.BottomCovered.Focused, s.BottomCovered.Blurred = active.Focused, active.Blurred
	s.TopExposed.Focused, s.TopExposed.Blurred = inactive.Focused, inactive.Blurred
	s.BottomExposed.Focused, s.BottomExposed.Blurred = inactive.Focused, inactive.Blurred
	s.DisplayFocused = baseStyle.Foreground(textDarkColor).Background(displayBgColor).Bold(true)
	s.DisplayBlurred = baseStyle.Foreground(textColor)
	return s
}

func plainPickerStyles() widget.Styles {
	s := widget.DefaultStyles()
	s.DisplayFocused = revealFocusStyle
	return s
}
