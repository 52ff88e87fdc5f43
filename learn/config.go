package learn

import (
	"time"

	"github.com/jetsetilly/inputlearn/binding"
	"github.com/jetsetilly/inputlearn/sources"
)

// AxisConsideration controls which direction of axis deflection can resolve
// a learning run
type AxisConsideration int

// List of valid AxisConsideration values
const (
	// only deflection in the positive direction resolves
	AxisPositive AxisConsideration = iota

	// only deflection in the negative direction resolves
	AxisNegative

	// deflection in either direction resolves
	AxisAbsolute
)

func (c AxisConsideration) String() string {
	switch c {
	case AxisPositive:
		return "positive"
	case AxisNegative:
		return "negative"
	case AxisAbsolute:
		return "absolute"
	}
	return "invalid axis consideration"
}

// NoCancelKey disables the cancel key
const NoCancelKey = sources.Key(-1)

// Config is the set of options for a learning run. The configuration is
// copied when the learner is created; changing fields afterwards has no
// effect on that learner.
//
// Prefer DefaultConfig() over a zero value: a zero Config has every source
// class disabled and a cancel key of key zero
type Config struct {
	// the source to poll for standard input and for the cancel key.
	// normally a sources.Registry
	Source sources.Source

	// which source classes are polled
	PollAxes     bool
	PollButtons  bool
	PollKeyboard bool

	// whether the standard source classes are polled at all. custom
	// callbacks and the keyboard are still polled when this is false
	PollStandard bool

	// which joystick to poll. sources.AnyJoystick polls every attached
	// joystick
	Joystick int

	// direction of axis deflection that can resolve the run
	Consideration AxisConsideration

	// minimum deflection magnitude for an axis to resolve the run
	DeadZone float64

	// how long to wait for the second press of a two-button axis gesture
	// before the first press is forgotten
	ButtonPressMonitor time.Duration

	// when true a button or key press resolves immediately to a one-sided
	// trigger axis, rather than becoming the positive half of a button pair
	PollAsTrigger bool

	// whether a mouse movement axis is allowed to resolve the run
	AllowMouseAsAxis bool

	// pressing this key cancels the run. NoCancelKey disables the check
	CancelKey sources.Key

	// optional predicate checked every tick. returning true cancels the run
	CancelCheck func() bool

	// optional custom polling callbacks. checked before the standard
	// sources; the first to report a hit wins
	PollAxisFunc   func() (binding.AxisFunc, bool)
	PollButtonFunc func() (binding.ButtonFunc, bool)

	// the clock used for the button pairing timeout. if nil, time.Now is
	// used
	Clock func() time.Time
}

// DefaultConfig returns a Config with every standard source class enabled
// and sensible defaults for the remaining fields
func DefaultConfig(src sources.Source) Config {
	return Config{
		Source:             src,
		PollAxes:           true,
		PollButtons:        true,
		PollKeyboard:       true,
		PollStandard:       true,
		Joystick:           sources.AnyJoystick,
		Consideration:      AxisAbsolute,
		DeadZone:           0.25,
		ButtonPressMonitor: time.Second,
		CancelKey:          NoCancelKey,
	}
}
