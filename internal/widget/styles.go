package widget

import "github.com/charmbracelet/lipgloss"

// Bar is one end-of-range indicator state: its text and how it looks with
// and without focus.
type Bar struct {
	Markup  string
	Focused lipgloss.Style
	Blurred lipgloss.Style
}

func (b Bar) style(focused bool) lipgloss.Style {
	if focused {
		return b.Focused
	}
	return b.Blurred
}

// Styles controls a picker's appearance. "Covered" bars are shown while more
// values lie beyond that end, "exposed" bars once the end is reached.
type Styles struct {
	TopCovered    Bar
	TopExposed    Bar
	BottomCovered Bar
	BottomExposed Bar

	DisplayFocused lipgloss.Style
	DisplayBlurred lipgloss.Style
}

// DefaultStyles uses plain bars and a reverse-video value row under focus.
func DefaultStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		TopCovered:     Bar{Markup: "▲", Focused: plain, Blurred: plain},
		TopExposed:     Bar{Markup: "───", Focused: plain, Blurred: plain},
		BottomCovered:  Bar{Markup: "▼", Focused: plain, Blurred: plain},
		BottomExposed:  Bar{Markup: "───", Focused: plain, Blurred: plain},
		DisplayFocused: lipgloss.NewStyle().Reverse(true),
		DisplayBlurred: plain,
	}
}

// WithBarMarkup returns a copy of s with different glyphs for the covered
// and exposed states.
func (s Styles) WithBarMarkup(topCovered, bottomCovered, exposed string) Styles {
	if topCovered != "" {
		s.TopCovered.Markup = topCovered
	}
	if bottomCovered != "" {
		s.BottomCovered.Markup = bottomCovered
	}
	if exposed != "" {
		s.TopExposed.Markup = exposed
		s.BottomExposed.Markup = exposed
	}
	return s
}
