package sources_test

import (
	"testing"

	"github.com/jetsetilly/inputlearn/sources"
	"github.com/jetsetilly/inputlearn/test"
)

// fixedSource reports the same hits on every poll
type fixedSource struct {
	axis   *sources.Axis
	button *sources.Button
	key    *sources.Key

	axisValue float64
	held      bool
}

func (s *fixedSource) TryPollAxis(joystick int) (sources.Axis, bool) {
	if s.axis == nil {
		return sources.Axis{}, false
	}
	return *s.axis, true
}

func (s *fixedSource) TryPollButton(joystick int) (sources.Button, bool) {
	if s.button == nil {
		return sources.Button{}, false
	}
	return *s.button, true
}

func (s *fixedSource) TryPollKey() (sources.Key, bool) {
	if s.key == nil {
		return sources.Key(0), false
	}
	return *s.key, true
}

func (s *fixedSource) AxisValue(axis sources.Axis) float64 {
	return s.axisValue
}

func (s *fixedSource) ButtonHeld(button sources.Button) bool {
	return s.held
}

func (s *fixedSource) KeyHeld(key sources.Key) bool {
	return s.held
}

func (s *fixedSource) KeyJustPressed(key sources.Key) bool {
	return s.held
}

func TestRegistryOrder(t *testing.T) {
	first := &fixedSource{
		button: &sources.Button{Joystick: 0, Button: 1},
	}
	second := &fixedSource{
		button: &sources.Button{Joystick: 0, Button: 2},
	}

	r := sources.NewRegistry(first, second)

	// the first registered source wins
	b, ok := r.TryPollButton(sources.AnyJoystick)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Button, 1)

	// a source with nothing to report defers to the next in order
	first.button = nil
	b, ok = r.TryPollButton(sources.AnyJoystick)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Button, 2)

	second.button = nil
	_, ok = r.TryPollButton(sources.AnyJoystick)
	test.ExpectFailure(t, ok)
}

func TestRegistryEmpty(t *testing.T) {
	var r sources.Registry

	_, ok := r.TryPollAxis(sources.AnyJoystick)
	test.ExpectFailure(t, ok)
	_, ok = r.TryPollButton(sources.AnyJoystick)
	test.ExpectFailure(t, ok)
	_, ok = r.TryPollKey()
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, r.AxisValue(sources.Axis{}), 0.0)
	test.ExpectEquality(t, r.ButtonHeld(sources.Button{}), false)
	test.ExpectEquality(t, r.KeyHeld(sources.Key(0)), false)
}

func TestRegistryReads(t *testing.T) {
	silent := &fixedSource{}
	active := &fixedSource{
		axisValue: 0.5,
		held:      true,
	}

	r := sources.NewRegistry(silent, active)

	// a neutral answer from an earlier source does not mask a later one
	test.ExpectEquality(t, r.AxisValue(sources.Axis{Joystick: 0, Axis: 0}), 0.5)
	test.ExpectEquality(t, r.ButtonHeld(sources.Button{Joystick: 0, Button: 0}), true)
	test.ExpectEquality(t, r.KeyJustPressed(sources.Key(0)), true)
}
