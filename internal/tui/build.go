package tui

import (
	"fmt"
	"math"

	"github.com/gabe/intpick/internal/config"
	"github.com/gabe/intpick/internal/selector"
	"github.com/gabe/intpick/internal/widget"
)

func bounds(pc config.PickerConfig) (int, int) {
	minimum, maximum := math.MinInt, math.MaxInt
	if pc.Minimum != nil {
		minimum = *pc.Minimum
	}
	if pc.Maximum != nil {
		maximum = *pc.Maximum
	}
	return minimum, maximum
}

func lengths(pc config.PickerConfig) (int, int) {
	step, jump := pc.StepLength, pc.JumpLength
	if step == 0 {
		step = selector.DefaultStepLength
	}
	if jump == 0 {
		jump = selector.DefaultJumpLength
	}
	return step, jump
}

// buildPicker turns one config entry into a picker. Change notifications are
// attached by the caller once the picker has a place in the layout.
func buildPicker(pc config.PickerConfig) (*widget.Picker, error) {
	modifier, err := widget.ParseModifier(pc.Modifier)
	if err != nil {
		return nil, fmt.Errorf("picker %q: %w", pc.Title, err)
	}

	minimum, maximum := bounds(pc)
	step, jump := lengths(pc)
	opts := []selector.Option{
		selector.WithBounds(minimum, maximum),
		selector.WithStepLength(step),
		selector.WithJumpLength(jump),
		selector.WithLocale(pc.Locale),
	}
	if pc.Format != "" {
		opts = append(opts, selector.WithFormat(pc.Format))
	}
	if pc.Descending {
		opts = append(opts, selector.Descending())
	}
	if pc.Swallow {
		opts = append(opts, selector.SwallowExhaustedInput())
	}

	sel, err := selector.New(pc.Value, opts...)
	if err != nil {
		return nil, fmt.Errorf("picker %q: %w", pc.Title, err)
	}

	styles := plainPickerStyles()
	if pc.Bars.Highlight {
		styles = highlightedPickerStyles()
	}
	styles = styles.WithBarMarkup(pc.Bars.TopCovered, pc.Bars.BottomCovered, pc.Bars.Exposed)

	return widget.New(sel, modifier, styles), nil
}

// checkReconfigure reports whether pc can be applied to a running selector
// without touching one.
func checkReconfigure(pc config.PickerConfig) error {
	step, jump := lengths(pc)
	if step < 0 || jump < 0 {
		return fmt.Errorf("%w: step %d, jump %d", selector.ErrInvalidLength, step, jump)
	}
	if minimum, maximum := bounds(pc); minimum > maximum {
		return fmt.Errorf("%w: [%d, %d]", selector.ErrInvertedBounds, minimum, maximum)
	}
	return nil
}

// reconfigure applies the reloadable parts of pc to a running selector:
// bounds and lengths. The value and presentation stay as they are.
func reconfigure(sel *selector.Selector, pc config.PickerConfig) error {
	if err := checkReconfigure(pc); err != nil {
		return err
	}
	minimum, maximum := bounds(pc)
	step, jump := lengths(pc)
	if err := sel.SetBounds(minimum, maximum); err != nil {
		return err
	}
	_ = sel.SetStepLength(step)
	_ = sel.SetJumpLength(jump)
	return nil
}
