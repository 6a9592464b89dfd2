package config

// DefaultConfig returns the three demo pickers: a plain one over the full
// int range, a descending one with larger steps, and a ctrl-gated one that
// swallows input at its bounds.
func DefaultConfig() *Config {
	return &Config{
		Pickers: []PickerConfig{
			{
				Title:      "default:",
				Button:     "Try to reach this button...",
				Value:      0,
				StepLength: 1,
				JumpLength: 100,
				Modifier:   "none",
				Format:     "%d",
			},
			{
				Title:      "descending:",
				Note:       "step_length=5, jump_length=33",
				Button:     "Button",
				Value:      0,
				StepLength: 5,
				JumpLength: 33,
				Descending: true,
				Modifier:   "none",
				Format:     "%d",
				Locale:     "en",
			},
			{
				Title:      "additional parameters:",
				Note:       "press additionally 'ctrl'",
				Button:     "Button",
				Value:      2018,
				Minimum:    intPtr(1),
				Maximum:    intPtr(9999),
				StepLength: 1,
				JumpLength: 100,
				Modifier:   "ctrl",
				Swallow:    true,
				Format:     "%d",
				Bars: BarsConfig{
					TopCovered:    "ᐃ",
					BottomCovered: "ᐁ",
					Exposed:       "───",
					Highlight:     true,
				},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func intPtr(v int) *int {
	return &v
}
