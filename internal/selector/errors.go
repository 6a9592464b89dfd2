package selector

import "errors"

var (
	// ErrInvertedBounds is returned when a bound change would leave minimum > maximum
	ErrInvertedBounds = errors.New("minimum must be less than or equal to maximum")

	// ErrOutOfRange is returned when a value lies outside [minimum, maximum]
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidLength is returned for a step or jump length that is not positive
	ErrInvalidLength = errors.New("length must be positive")

	// ErrInvalidFormat is returned when the display template does not hold exactly one integer verb
	ErrInvalidFormat = errors.New("invalid display format")
)
