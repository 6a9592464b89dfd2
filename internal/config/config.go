package config

// Config holds the intpick demo configuration
type Config struct {
	Pickers []PickerConfig `toml:"pickers"`
	Logging LoggingConfig  `toml:"logging"`
}

// PickerConfig describes one picker column of the demo.
// Minimum and Maximum are optional; nil leaves that end unbounded.
type PickerConfig struct {
	Title      string     `toml:"title"`
	Note       string     `toml:"note,omitempty"`
	Button     string     `toml:"button"`
	Value      int        `toml:"value"`
	Minimum    *int       `toml:"minimum,omitempty"`
	Maximum    *int       `toml:"maximum,omitempty"`
	StepLength int        `toml:"step_length"`
	JumpLength int        `toml:"jump_length"`
	Descending bool       `toml:"descending"`
	Modifier   string     `toml:"modifier"`
	Swallow    bool       `toml:"swallow_exhausted_input"`
	Format     string     `toml:"format"`
	Locale     string     `toml:"locale,omitempty"`
	Bars       BarsConfig `toml:"bars"`
}

// BarsConfig overrides the end-of-range glyphs. Empty keeps the default.
type BarsConfig struct {
	TopCovered    string `toml:"top_covered,omitempty"`
	BottomCovered string `toml:"bottom_covered,omitempty"`
	Exposed       string `toml:"exposed,omitempty"`
	Highlight     bool   `toml:"highlight"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}
