package selector

import "math"

// Delta is the signed change a navigation command proposes for the value,
// before clamping. ToLowEnd and ToHighEnd stand for an unbounded move.
type Delta int

const (
	ToLowEnd  Delta = math.MinInt
	ToHighEnd Delta = math.MaxInt
)

func (d Delta) unbounded() bool {
	return d == ToLowEnd || d == ToHighEnd
}

// magnitude returns |d| without overflowing for math.MinInt.
func (d Delta) magnitude() uint {
	if d < 0 {
		return uint(-(d + 1)) + 1
	}
	return uint(d)
}

// Command is a logical navigation command, independent of the key or mouse
// event that produced it.
type Command int

const (
	StepDown Command = iota
	StepUp
	JumpDown
	JumpUp
	ToStart
	ToEnd
)

var commandNames = map[Command]string{
	StepDown: "step-down",
	StepUp:   "step-up",
	JumpDown: "jump-down",
	JumpUp:   "jump-up",
	ToStart:  "to-start",
	ToEnd:    "to-end",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// DeltaFor maps a command to the delta it proposes for this selector.
func (s *Selector) DeltaFor(c Command) Delta {
	switch c {
	case StepDown:
		return Delta(-s.stepLength)
	case StepUp:
		return Delta(s.stepLength)
	case JumpDown:
		return Delta(-s.jumpLength)
	case JumpUp:
		return Delta(s.jumpLength)
	case ToStart:
		return ToLowEnd
	case ToEnd:
		return ToHighEnd
	default:
		return 0
	}
}

// Apply runs a navigation command and reports whether the input was consumed.
func (s *Selector) Apply(c Command) bool {
	return s.ApplyDelta(s.DeltaFor(c))
}
