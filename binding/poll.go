package binding

import (
	"github.com/jetsetilly/inputlearn/sources"
)

// PollAxis adapts a Source into a custom axis polling callback: each call
// polls the source once and, on a hit, returns a finished axis delegate for
// the axis that was found. A hit in the negative direction produces an
// inverted delegate, normalising the axis to read positive for the
// direction the user pressed
func PollAxis(src sources.Source, joystick int) func() (AxisFunc, bool) {
	return func() (AxisFunc, bool) {
		a, ok := src.TryPollAxis(joystick)
		if !ok {
			return nil, false
		}
		return AxisFromRaw(src, a, a.Value < 0), true
	}
}

// PollButton adapts a Source into a custom button polling callback: each
// call polls the source once and, on a hit, returns a button delegate for
// the button that was found
func PollButton(src sources.Source, joystick int) func() (ButtonFunc, bool) {
	return func() (ButtonFunc, bool) {
		b, ok := src.TryPollButton(joystick)
		if !ok {
			return nil, false
		}
		return ButtonFromRaw(src, b), true
	}
}
