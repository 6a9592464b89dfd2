// Package selector holds the state of an integer picker: a value kept inside
// inclusive bounds, moved by navigation commands that saturate at the bounds
// instead of failing. It has no knowledge of terminals, keys or rendering.
package selector

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultStepLength = 1
	DefaultJumpLength = 100
	DefaultFormat     = "%d"
)

// ChangeFunc is called with the previous and the new value after every
// change. It is never called when a command leaves the value as it was.
type ChangeFunc func(previous, current int)

// Selector is a bounded integer with navigation semantics.
//
// When ascending is false, increasing deltas move the value towards the
// minimum: the same commands walk the range in the opposite order.
type Selector struct {
	value      int
	minimum    int
	maximum    int
	stepLength int
	jumpLength int
	ascending  bool
	swallow    bool

	format  string
	printer *message.Printer

	onChange ChangeFunc
}

// Option configures a Selector at construction.
type Option func(*Selector) error

// WithBounds sets the inclusive range. The default is the full int range.
func WithBounds(minimum, maximum int) Option {
	return func(s *Selector) error {
		s.minimum = minimum
		s.maximum = maximum
		return nil
	}
}

// WithStepLength sets the distance of a single step.
func WithStepLength(n int) Option {
	return func(s *Selector) error {
		if n <= 0 {
			return fmt.Errorf("%w: step length %d", ErrInvalidLength, n)
		}
		s.stepLength = n
		return nil
	}
}

// WithJumpLength sets the distance of a page jump.
func WithJumpLength(n int) Option {
	return func(s *Selector) error {
		if n <= 0 {
			return fmt.Errorf("%w: jump length %d", ErrInvalidLength, n)
		}
		s.jumpLength = n
		return nil
	}
}

// Descending makes increasing deltas move towards the minimum.
func Descending() Option {
	return func(s *Selector) error {
		s.ascending = false
		return nil
	}
}

// SwallowExhaustedInput reports commands issued at an already reached bound
// as handled, so they are not passed on to neighbouring widgets.
func SwallowExhaustedInput() Option {
	return func(s *Selector) error {
		s.swallow = true
		return nil
	}
}

// WithFormat sets the template used by Text. It must contain exactly one
// integer verb, e.g. "%d" or "year %04d".
func WithFormat(format string) Option {
	return func(s *Selector) error {
		s.format = format
		return nil
	}
}

// WithLocale formats the value with the digit grouping of a BCP 47 locale,
// e.g. "en" renders 10000 as "10,000".
func WithLocale(tag string) Option {
	return func(s *Selector) error {
		if tag == "" {
			s.printer = nil
			return nil
		}
		parsed, err := language.Parse(tag)
		if err != nil {
			return fmt.Errorf("%w: locale %q: %v", ErrInvalidFormat, tag, err)
		}
		s.printer = message.NewPrinter(parsed)
		return nil
	}
}

// OnChange registers the change callback.
func OnChange(fn ChangeFunc) Option {
	return func(s *Selector) error {
		s.onChange = fn
		return nil
	}
}

// New creates a Selector holding value. It fails when the bounds are
// inverted, the value lies outside them, or an option is invalid.
func New(value int, opts ...Option) (*Selector, error) {
	s := &Selector{
		value:      value,
		minimum:    math.MinInt,
		maximum:    math.MaxInt,
		stepLength: DefaultStepLength,
		jumpLength: DefaultJumpLength,
		ascending:  true,
		format:     DefaultFormat,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.minimum > s.maximum {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvertedBounds, s.minimum, s.maximum)
	}
	if value < s.minimum || value > s.maximum {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, value, s.minimum, s.maximum)
	}
	if !validFormat(s.format) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s.format)
	}

	return s, nil
}

// ApplyDelta moves the value by d, saturating at the bound it heads for.
// It reports whether the input was consumed: a move against a bound the
// value already sits on changes nothing and is consumed only when the
// selector swallows exhausted input.
func (s *Selector) ApplyDelta(d Delta) bool {
	if d == 0 {
		return false
	}

	previous := s.value
	distance := d.magnitude()

	if (d > 0) == s.ascending {
		if s.value == s.maximum {
			return s.swallow
		}
		// uint subtraction gives the exact gap even when it exceeds math.MaxInt.
		if d.unbounded() || distance >= uint(s.maximum)-uint(s.value) {
			s.value = s.maximum
		} else {
			s.value += int(distance)
		}
	} else {
		if s.value == s.minimum {
			return s.swallow
		}
		if d.unbounded() || distance >= uint(s.value)-uint(s.minimum) {
			s.value = s.minimum
		} else {
			s.value -= int(distance)
		}
	}

	s.changed(previous)
	return true
}

// SetValue replaces the value. It fails with ErrOutOfRange and leaves the
// state alone when v lies outside the bounds.
func (s *Selector) SetValue(v int) error {
	if v < s.minimum || v > s.maximum {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, s.minimum, s.maximum)
	}
	if v == s.value {
		return nil
	}
	previous := s.value
	s.value = v
	s.changed(previous)
	return nil
}

func (s *Selector) SetToMinimum() {
	_ = s.SetValue(s.minimum)
}

func (s *Selector) SetToMaximum() {
	_ = s.SetValue(s.maximum)
}

// SetMinimum moves the lower bound, clamping the value up if it falls below.
func (s *Selector) SetMinimum(v int) error {
	if v > s.maximum {
		return fmt.Errorf("%w: minimum %d above maximum %d", ErrInvertedBounds, v, s.maximum)
	}
	s.minimum = v
	if s.value < v {
		s.SetToMinimum()
	}
	return nil
}

// SetMaximum moves the upper bound, clamping the value down if it rises above.
func (s *Selector) SetMaximum(v int) error {
	if v < s.minimum {
		return fmt.Errorf("%w: maximum %d below minimum %d", ErrInvertedBounds, v, s.minimum)
	}
	s.maximum = v
	if s.value > v {
		s.SetToMaximum()
	}
	return nil
}

// SetBounds replaces both bounds at once, so a range can move past the
// current one without passing through an inverted state.
func (s *Selector) SetBounds(minimum, maximum int) error {
	if minimum > maximum {
		return fmt.Errorf("%w: [%d, %d]", ErrInvertedBounds, minimum, maximum)
	}
	s.minimum = minimum
	s.maximum = maximum
	switch {
	case s.value < minimum:
		s.SetToMinimum()
	case s.value > maximum:
		s.SetToMaximum()
	}
	return nil
}

func (s *Selector) SetStepLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: step length %d", ErrInvalidLength, n)
	}
	s.stepLength = n
	return nil
}

func (s *Selector) SetJumpLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: jump length %d", ErrInvalidLength, n)
	}
	s.jumpLength = n
	return nil
}

// SetOnChange replaces the change callback. nil disables notifications.
func (s *Selector) SetOnChange(fn ChangeFunc) {
	s.onChange = fn
}

func (s *Selector) Value() int                   { return s.value }
func (s *Selector) Minimum() int                 { return s.minimum }
func (s *Selector) Maximum() int                 { return s.maximum }
func (s *Selector) StepLength() int              { return s.stepLength }
func (s *Selector) JumpLength() int              { return s.jumpLength }
func (s *Selector) Ascending() bool              { return s.ascending }
func (s *Selector) SwallowsExhaustedInput() bool { return s.swallow }
func (s *Selector) IsAtMinimum() bool            { return s.value == s.minimum }
func (s *Selector) IsAtMaximum() bool            { return s.value == s.maximum }

// Text renders the current value through the display template.
func (s *Selector) Text() string {
	return s.sprintf(s.value)
}

func (s *Selector) String() string {
	return fmt.Sprintf("Selector(value=%d, min=%d, max=%d, ascending=%t)",
		s.value, s.minimum, s.maximum, s.ascending)
}

func (s *Selector) sprintf(v int) string {
	if s.printer != nil {
		return s.printer.Sprintf(s.format, v)
	}
	return fmt.Sprintf(s.format, v)
}

func (s *Selector) changed(previous int) {
	if previous != s.value && s.onChange != nil {
		s.onChange(previous, s.value)
	}
}
