package sources

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/inputlearn/logger"
)

// the deflection magnitude at which an axis is considered to have been
// deliberately moved by the user. this is the source's own activation
// threshold and is distinct from any dead zone applied by the caller
const activation = 0.5

// scaling of mouse movement (in pixels per tick) to an axis-like value
const mouseScale = 0.05

// mouse axis numbering
const (
	MouseAxisX = iota
	MouseAxisY
)

// Gamepads is a Source over the ebiten input layer: gamepad axes and
// buttons, keyboard keys, and mouse movement exposed as a pair of axes.
//
// The Update() function must be called once per tick, before any polling,
// so that the list of attached gamepads and the mouse movement deltas are
// current
type Gamepads struct {
	ids []ebiten.GamepadID

	// previous cursor position and the delta for the current tick
	mouseX, mouseY int
	mouseDelta     [2]float64

	started bool
}

// NewGamepads is the preferred method of initialisation for the Gamepads type
func NewGamepads() *Gamepads {
	return &Gamepads{}
}

// Update refreshes the gamepad list and the mouse movement deltas. To be
// called once per tick before polling
func (g *Gamepads) Update() {
	g.ids = g.ids[:0]
	g.ids = ebiten.AppendGamepadIDs(g.ids)

	for _, id := range inpututil.AppendJustConnectedGamepadIDs(nil) {
		logger.Logf(logger.Allow, "gamepads", "%s attached (id %d)", ebiten.GamepadName(id), id)
	}

	x, y := ebiten.CursorPosition()
	if g.started {
		g.mouseDelta[MouseAxisX] = float64(x-g.mouseX) * mouseScale
		g.mouseDelta[MouseAxisY] = float64(y-g.mouseY) * mouseScale
	}
	g.mouseX = x
	g.mouseY = y
	g.started = true
}

// joysticks returns the list of gamepads to consider for the given joystick
// argument
func (g *Gamepads) joysticks(joystick int) []ebiten.GamepadID {
	if joystick == AnyJoystick {
		return g.ids
	}
	for _, id := range g.ids {
		if int(id) == joystick {
			return []ebiten.GamepadID{id}
		}
	}
	return nil
}

// TryPollAxis implements the Source interface. Gamepad axes are considered
// first, in gamepad then axis order, followed by the two mouse axes
func (g *Gamepads) TryPollAxis(joystick int) (Axis, bool) {
	for _, id := range g.joysticks(joystick) {
		for a := 0; a < ebiten.GamepadAxisCount(id); a++ {
			v := ebiten.GamepadAxis(id, a)
			if v > activation || v < -activation {
				return Axis{
					Joystick: int(id),
					Axis:     a,
					Value:    v,
				}, true
			}
		}
	}

	for a, v := range g.mouseDelta {
		if v > activation || v < -activation {
			return Axis{
				Axis:  a,
				Mouse: true,
				Value: v,
			}, true
		}
	}

	return Axis{}, false
}

// TryPollButton implements the Source interface
func (g *Gamepads) TryPollButton(joystick int) (Button, bool) {
	for _, id := range g.joysticks(joystick) {
		pressed := inpututil.AppendJustPressedGamepadButtons(id, nil)
		if len(pressed) > 0 {
			return Button{
				Joystick: int(id),
				Button:   int(pressed[0]),
			}, true
		}
	}
	return Button{}, false
}

// TryPollKey implements the Source interface
func (g *Gamepads) TryPollKey() (Key, bool) {
	pressed := inpututil.AppendJustPressedKeys(nil)
	if len(pressed) > 0 {
		return Key(pressed[0]), true
	}
	return Key(0), false
}

// AxisValue implements the Source interface. A mouse axis reads as the
// movement delta measured at the most recent Update(). An axis on a gamepad
// that is no longer attached reads as zero
func (g *Gamepads) AxisValue(axis Axis) float64 {
	if axis.Mouse {
		if axis.Axis >= 0 && axis.Axis < len(g.mouseDelta) {
			return g.mouseDelta[axis.Axis]
		}
		return 0
	}

	for _, id := range g.ids {
		if int(id) == axis.Joystick {
			return ebiten.GamepadAxis(id, axis.Axis)
		}
	}
	return 0
}

// ButtonHeld implements the Source interface
func (g *Gamepads) ButtonHeld(button Button) bool {
	for _, id := range g.ids {
		if int(id) == button.Joystick {
			return ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(button.Button))
		}
	}
	return false
}

// KeyHeld implements the Source interface
func (g *Gamepads) KeyHeld(key Key) bool {
	return ebiten.IsKeyPressed(ebiten.Key(key))
}

// KeyJustPressed implements the Source interface
func (g *Gamepads) KeyJustPressed(key Key) bool {
	return inpututil.IsKeyJustPressed(ebiten.Key(key))
}
