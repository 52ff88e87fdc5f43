// Package gui is a small ebiten host for a learning run. It opens a window,
// drives the learner once per frame and reports the outcome on a channel
// before terminating.
package gui

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/inputlearn/binding"
	"github.com/jetsetilly/inputlearn/learn"
	"github.com/jetsetilly/inputlearn/logger"
	"github.com/jetsetilly/inputlearn/sources"
	"github.com/jetsetilly/inputlearn/version"
)

// actions for the demonstration profile. the q and e keys are remapped to
// the two sides of a logical axis, showing a custom profile taking priority
// over the raw keyboard
const (
	actionProfilePos input.Action = iota
	actionProfileNeg
)

// Options for a learning run hosted in the gui window
type Options struct {
	// name given to the learned signature
	Name string

	Trigger       bool
	Consideration learn.AxisConsideration
	DeadZone      float64
	Monitor       time.Duration
	AllowMouse    bool
}

// Result of a learning run
type Result struct {
	Sig       binding.Signature
	Cancelled bool
}

type gui struct {
	started bool

	endGui chan bool
	result chan Result
	opts   Options

	inputSystem input.System

	pads   *sources.Gamepads
	handle *learn.Handle
	drv    learn.Driver

	// whether the result has been delivered to the result channel
	reported bool
}

func (g *gui) initialise() {
	g.pads = sources.NewGamepads()

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	handler := g.inputSystem.NewHandler(uint8(0), input.Keymap{
		actionProfilePos: {input.KeyE},
		actionProfileNeg: {input.KeyQ},
	})
	profile := sources.NewProfile(handler, 0,
		nil,
		[]sources.ProfileAxis{
			{Pos: actionProfilePos, Neg: actionProfileNeg},
		},
	)

	conf := learn.DefaultConfig(sources.NewRegistry(g.pads))
	conf.PollAsTrigger = g.opts.Trigger
	conf.Consideration = g.opts.Consideration
	conf.DeadZone = g.opts.DeadZone
	conf.AllowMouseAsAxis = g.opts.AllowMouse
	conf.ButtonPressMonitor = g.opts.Monitor
	conf.CancelKey = sources.Key(ebiten.KeyEscape)
	conf.PollAxisFunc = binding.PollAxis(profile, sources.AnyJoystick)

	g.handle = learn.NewHandle(conf)
	g.handle.Start(&g.drv)
	logger.Logf(logger.Allow, "gui", "learning %s", g.opts.Name)

	g.started = true
}

func (g *gui) Update() error {
	select {
	case <-g.endGui:
		return ebiten.Termination
	default:
	}

	if !g.started {
		g.initialise()
	}

	// refresh input state before the learner polls it
	g.pads.Update()
	g.inputSystem.Update()

	g.drv.Pump()

	if g.handle.IsComplete() && !g.reported {
		g.reported = true

		var r Result
		if g.handle.IsCancelled() {
			r.Cancelled = true
		} else {
			r.Sig, _ = g.handle.Signature(g.opts.Name)
		}

		select {
		case g.result <- r:
		default:
		}
		return ebiten.Termination
	}

	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("perform the input to bind to '%s'", g.opts.Name), 8, 8)
	ebitenutil.DebugPrintAt(screen,
		"press a second button within the timeout to set the negative direction", 8, 24)
	ebitenutil.DebugPrintAt(screen, "escape cancels", 8, 40)
}

func (g *gui) Layout(width, height int) (int, int) {
	return 640, 200
}

// Launch the gui window and block until the learning run has finished or the
// endGui channel is closed. The outcome is sent on the result channel, which
// should be buffered
func Launch(endGui chan bool, result chan Result, opts Options) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetWindowSize(640, 200)

	g := &gui{
		endGui: endGui,
		result: result,
		opts:   opts,
	}

	return ebiten.RunGame(g)
}
