package sources

import "fmt"

// AnyJoystick can be given as the joystick argument to the TryPoll functions,
// meaning that input from every attached joystick should be considered
const AnyJoystick = -1

// Axis identifies a single analogue axis on a backend, along with the value
// the axis held at the moment it was polled
type Axis struct {
	// the joystick the axis was found on. not meaningful for mouse axes
	Joystick int

	// axis number in the backend's own numbering
	Axis int

	// whether the axis is a mouse movement axis. mouse axes are excluded
	// from consideration in some situations
	Mouse bool

	// the deflection of the axis at the time of polling. signed and usually,
	// but not necessarily, in the range [-1, 1]
	Value float64
}

func (a Axis) String() string {
	if a.Mouse {
		return fmt.Sprintf("mouse axis %d", a.Axis)
	}
	return fmt.Sprintf("joystick %d axis %d", a.Joystick, a.Axis)
}

// Button identifies a single button on a backend
type Button struct {
	Joystick int
	Button   int
}

func (b Button) String() string {
	return fmt.Sprintf("joystick %d button %d", b.Joystick, b.Button)
}

// Key identifies a keyboard key in the backend's own numbering
type Key int

func (k Key) String() string {
	return fmt.Sprintf("key %d", int(k))
}

// Source is the uniform query surface over an input backend.
//
// The TryPoll functions are single-shot queries: each answers whether any
// input crossed its activation threshold this tick and, if so, which one.
// They must be safe to call every tick, must not block and must have no side
// effect beyond reading host input state.
//
// The remaining functions read the current state of an input identified by a
// previous TryPoll. An input that has become unavailable reads as the
// neutral value (zero, or not-held)
type Source interface {
	// TryPollAxis returns the first axis whose deflection magnitude exceeds
	// the source's own activation threshold this tick
	TryPollAxis(joystick int) (Axis, bool)

	// TryPollButton returns the first button transitioning to pressed this
	// tick
	TryPollButton(joystick int) (Button, bool)

	// TryPollKey returns the first keyboard key transitioning to pressed
	// this tick
	TryPollKey() (Key, bool)

	// AxisValue returns the current deflection of the axis
	AxisValue(axis Axis) float64

	// ButtonHeld returns whether the button is currently held down
	ButtonHeld(button Button) bool

	// KeyHeld returns whether the key is currently held down
	KeyHeld(key Key) bool

	// KeyJustPressed returns whether the key transitioned to pressed this
	// tick
	KeyJustPressed(key Key) bool
}
