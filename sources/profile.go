package sources

import (
	input "github.com/quasilyte/ebitengine-input"
)

// ProfileAxis describes a logical axis as a pair of actions. The Neg action
// may be left as zero for a one-sided axis
type ProfileAxis struct {
	Pos input.Action
	Neg input.Action
}

// Profile is a Source over an ebitengine-input handler: logical actions
// remapped from raw keys and buttons by the handler's keymap. It stands in
// for user supplied input profiles that do their own interpretation of raw
// codes, including sign conventions that differ from the raw device.
//
// Buttons are the actions given to NewProfile, polled in the order given.
// Axes are the ProfileAxis pairs: the value reads +1 when the Pos action is
// held and -1 when the Neg action is held. A profile has no keyboard
// surface; the key functions never report a hit.
//
// Inputs identified through a Profile carry a reserved negative joystick
// number so that they can never be confused with a raw gamepad input when
// read back through a Registry
type Profile struct {
	handler *input.Handler
	id      int
	buttons []input.Action
	axes    []ProfileAxis
}

// NewProfile is the preferred method of initialisation for the Profile type.
// The player argument must match the player number the handler was created
// with
func NewProfile(handler *input.Handler, player uint8, buttons []input.Action, axes []ProfileAxis) *Profile {
	return &Profile{
		handler: handler,
		id:      -2 - int(player),
		buttons: buttons,
		axes:    axes,
	}
}

// matches returns whether the joystick argument of a TryPoll function
// applies to this profile
func (p *Profile) matches(joystick int) bool {
	return joystick == AnyJoystick || joystick == p.id
}

// TryPollAxis implements the Source interface
func (p *Profile) TryPollAxis(joystick int) (Axis, bool) {
	if !p.matches(joystick) {
		return Axis{}, false
	}

	for i, a := range p.axes {
		if p.handler.ActionIsJustPressed(a.Pos) {
			return Axis{Joystick: p.id, Axis: i, Value: 1}, true
		}
		if a.Neg != 0 && p.handler.ActionIsJustPressed(a.Neg) {
			return Axis{Joystick: p.id, Axis: i, Value: -1}, true
		}
	}
	return Axis{}, false
}

// TryPollButton implements the Source interface
func (p *Profile) TryPollButton(joystick int) (Button, bool) {
	if !p.matches(joystick) {
		return Button{}, false
	}

	for i, b := range p.buttons {
		if p.handler.ActionIsJustPressed(b) {
			return Button{Joystick: p.id, Button: i}, true
		}
	}
	return Button{}, false
}

// TryPollKey implements the Source interface. A profile has no keyboard
// surface
func (p *Profile) TryPollKey() (Key, bool) {
	return Key(0), false
}

// AxisValue implements the Source interface. If both sides of the axis are
// held at the same time the positive side wins
func (p *Profile) AxisValue(axis Axis) float64 {
	if axis.Joystick != p.id || axis.Mouse || axis.Axis < 0 || axis.Axis >= len(p.axes) {
		return 0
	}

	a := p.axes[axis.Axis]
	if p.handler.ActionIsPressed(a.Pos) {
		return 1
	}
	if a.Neg != 0 && p.handler.ActionIsPressed(a.Neg) {
		return -1
	}
	return 0
}

// ButtonHeld implements the Source interface
func (p *Profile) ButtonHeld(button Button) bool {
	if button.Joystick != p.id || button.Button < 0 || button.Button >= len(p.buttons) {
		return false
	}
	return p.handler.ActionIsPressed(p.buttons[button.Button])
}

// KeyHeld implements the Source interface
func (p *Profile) KeyHeld(key Key) bool {
	return false
}

// KeyJustPressed implements the Source interface
func (p *Profile) KeyJustPressed(key Key) bool {
	return false
}
