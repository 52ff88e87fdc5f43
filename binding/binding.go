// Package binding builds the reusable input delegates that are the product
// of a learning run. An AxisFunc is a zero-argument query of the current
// signed axis value; a ButtonFunc is a zero-argument query of whether a
// button is currently held.
//
// All of the factory functions are pure and never fail. If the underlying
// input becomes unavailable after the delegate has been built, the delegate
// returns the neutral value for its kind.
package binding

import (
	"github.com/jetsetilly/inputlearn/sources"
)

// AxisFunc returns the current signed value of a learned axis. The value is
// usually, but not necessarily, in the range [-1, 1]
type AxisFunc func() float64

// ButtonFunc returns whether a learned button is currently held
type ButtonFunc func() bool

// AxisFromButton builds a trigger-style axis from a single button: 1.0 while
// the button is held, 0.0 otherwise. There is no negative side
func AxisFromButton(btn ButtonFunc) AxisFunc {
	return func() float64 {
		if btn() {
			return 1.0
		}
		return 0.0
	}
}

// AxisFromButtonPair builds an axis from two buttons: +1.0 while the
// positive button is held, -1.0 while the negative button is held, 0.0
// otherwise.
//
// If both buttons are held at the same time the positive button wins. This
// is a deliberate tie-break and not an accident of evaluation order
func AxisFromButtonPair(pos ButtonFunc, neg ButtonFunc) AxisFunc {
	return func() float64 {
		if pos() {
			return 1.0
		}
		if neg() {
			return -1.0
		}
		return 0.0
	}
}

// AxisFromRaw wraps a raw axis query. The invert flag negates the value and
// is used when the learned gesture was a press in the negative direction, so
// that the finished delegate reads positive for the direction the user
// actually pressed
func AxisFromRaw(src sources.Source, axis sources.Axis, invert bool) AxisFunc {
	return func() float64 {
		v := src.AxisValue(axis)
		if invert {
			v = -v
		}
		return v
	}
}

// ButtonFromRaw wraps a raw button press query
func ButtonFromRaw(src sources.Source, button sources.Button) ButtonFunc {
	return func() bool {
		return src.ButtonHeld(button)
	}
}

// ButtonFromKey wraps a keyboard key press query
func ButtonFromKey(src sources.Source, key sources.Key) ButtonFunc {
	return func() bool {
		return src.KeyHeld(key)
	}
}
