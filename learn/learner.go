package learn

import (
	"time"

	"github.com/jetsetilly/inputlearn/binding"
)

// Learner is the polling state machine of a learning run. It begins in the
// Unknown state; Start() moves it to Running and Tick() advances it once per
// host tick until it reaches Cancelled or Complete.
//
// Everything that survives from one tick to the next is held on the Learner
// itself: the current state, the resolved delegate and the pending positive
// button of a two-button gesture
type Learner struct {
	conf  Config
	clock func() time.Time

	state    State
	resolved binding.AxisFunc

	// the first press of a two-button axis gesture becomes the positive
	// side of the pair, held here until a second press arrives or the
	// monitor duration expires. at most one pending button exists at a time
	pendingPos  binding.ButtonFunc
	pendingTime time.Time
}

// NewLearner is the preferred method of initialisation for the Learner type.
// The configuration is copied; later changes to it are not seen by the
// learner
func NewLearner(conf Config) *Learner {
	l := &Learner{
		conf:  conf,
		clock: conf.Clock,
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	return l
}

// State returns the current state of the run
func (l *Learner) State() State {
	return l.state
}

// Binding returns the resolved axis delegate. The result is nil unless the
// run has reached the Complete state
func (l *Learner) Binding() binding.AxisFunc {
	return l.resolved
}

// Start begins a fresh run: the state moves to Running and any resolved
// delegate or pending button from a previous run is discarded
func (l *Learner) Start() {
	l.state = Running
	l.resolved = nil
	l.pendingPos = nil
}

// Cancel moves the run to the Cancelled state, discarding any resolved
// delegate and pending button
func (l *Learner) Cancel() {
	l.state = Cancelled
	l.resolved = nil
	l.pendingPos = nil
}

// Tick advances the run by one host tick and returns the resulting state.
// Calling Tick on a finished or not-yet-started learner does nothing.
//
// Checks run in a fixed priority order: cancellation, the custom axis
// callback, the custom button callback, the standard axis source, the
// standard button source, the keyboard. The first to resolve wins and at
// most one resolving action happens per tick.
//
// A misbehaving custom callback is not guarded against: a panic in user
// supplied code propagates out of Tick rather than leaving the run silently
// stuck in Running
func (l *Learner) Tick() State {
	if l.state != Running {
		return l.state
	}

	conf := &l.conf

	// cancellation is checked before anything else
	if conf.CancelKey != NoCancelKey && conf.Source != nil && conf.Source.KeyJustPressed(conf.CancelKey) {
		l.Cancel()
		return l.state
	}
	if conf.CancelCheck != nil && conf.CancelCheck() {
		l.Cancel()
		return l.state
	}

	// custom callbacks are polled before the standard sources
	if conf.PollAxes && conf.PollAxisFunc != nil {
		if fn, ok := conf.PollAxisFunc(); ok {
			return l.complete(fn)
		}
	}
	if conf.PollButtons && conf.PollButtonFunc != nil {
		if fn, ok := conf.PollButtonFunc(); ok {
			return l.resolveButton(fn)
		}
	}

	if conf.PollStandard && conf.Source != nil {
		if conf.PollAxes {
			if a, ok := conf.Source.TryPollAxis(conf.Joystick); ok {
				if l.pastDeadZone(a.Value) && (conf.AllowMouseAsAxis || !a.Mouse) {
					// a negative-direction press produces an inverted
					// delegate so that the finished axis reads positive for
					// the direction the user pressed
					return l.complete(binding.AxisFromRaw(conf.Source, a, a.Value < 0))
				}
			}
		}
		if conf.PollButtons {
			if b, ok := conf.Source.TryPollButton(conf.Joystick); ok {
				return l.resolveButton(binding.ButtonFromRaw(conf.Source, b))
			}
		}
	}

	if conf.PollKeyboard && conf.Source != nil {
		if k, ok := conf.Source.TryPollKey(); ok {
			return l.resolveButton(binding.ButtonFromKey(conf.Source, k))
		}
	}

	// nothing resolved this tick. a pending button that has waited longer
	// than the monitor duration is forgotten and the user must start the
	// two-press gesture over
	if l.pendingPos != nil && l.clock().Sub(l.pendingTime) > conf.ButtonPressMonitor {
		l.pendingPos = nil
	}

	return l.state
}

// pastDeadZone returns whether an axis value is far enough from neutral, in
// the configured direction, to resolve the run
func (l *Learner) pastDeadZone(v float64) bool {
	switch l.conf.Consideration {
	case AxisPositive:
		return v > l.conf.DeadZone
	case AxisNegative:
		return v < -l.conf.DeadZone
	case AxisAbsolute:
		return v > l.conf.DeadZone || v < -l.conf.DeadZone
	}
	return false
}

// resolveButton applies the button resolution rule. It is the same for
// custom button hits, standard button hits and keyboard hits
func (l *Learner) resolveButton(btn binding.ButtonFunc) State {
	// in trigger mode the first press wins outright
	if l.conf.PollAsTrigger {
		return l.complete(binding.AxisFromButton(btn))
	}

	// a second press pairs with the pending positive button
	if l.pendingPos != nil {
		return l.complete(binding.AxisFromButtonPair(l.pendingPos, btn))
	}

	// a first press becomes the positive side of a future pair
	l.pendingPos = btn
	l.pendingTime = l.clock()
	return l.state
}

func (l *Learner) complete(fn binding.AxisFunc) State {
	l.resolved = fn
	l.pendingPos = nil
	l.state = Complete
	return l.state
}
