package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/inputlearn/gui"
	"github.com/jetsetilly/inputlearn/learn"
	"github.com/jetsetilly/inputlearn/logger"
)

const programName = "inputlearn"

type styles struct {
	learned lipgloss.Style
	value   lipgloss.Style
	cancel  lipgloss.Style
}

func newStyles() styles {
	return styles{
		learned: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		value:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		cancel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func run(args []string) error {
	var name string
	var direction string
	var trigger bool
	var mouse bool
	var echoLog bool
	var deadzone float64
	var timeout int

	flgs := flag.NewFlagSet(programName, flag.ExitOnError)
	flgs.StringVar(&name, "name", "stick", "name for the learned signature")
	flgs.StringVar(&direction, "direction", "absolute", "axis direction that can resolve: positive, negative or absolute")
	flgs.BoolVar(&trigger, "trigger", false, "bind the first button press as a one-sided trigger")
	flgs.BoolVar(&mouse, "mouse", false, "allow mouse movement to be learned as an axis")
	flgs.Float64Var(&deadzone, "deadzone", 0.25, "minimum axis deflection")
	flgs.IntVar(&timeout, "timeout", 1000, "button pairing timeout in milliseconds")
	flgs.BoolVar(&echoLog, "log", false, "echo log entries to stderr")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}
	if len(flgs.Args()) > 0 {
		return fmt.Errorf("too many arguments")
	}

	if echoLog {
		logger.SetEcho(os.Stderr, true)
	}

	var consideration learn.AxisConsideration
	switch strings.ToLower(direction) {
	case "positive":
		consideration = learn.AxisPositive
	case "negative":
		consideration = learn.AxisNegative
	case "absolute":
		consideration = learn.AxisAbsolute
	default:
		return fmt.Errorf("unrecognised direction: %s", direction)
	}

	// buffered so that the gui never blocks on delivering the outcome
	endGui := make(chan bool, 1)
	result := make(chan gui.Result, 1)

	err = gui.Launch(endGui, result, gui.Options{
		Name:          name,
		Trigger:       trigger,
		Consideration: consideration,
		DeadZone:      deadzone,
		Monitor:       time.Duration(timeout) * time.Millisecond,
		AllowMouse:    mouse,
	})
	if err != nil {
		return err
	}

	stl := newStyles()

	select {
	case r := <-result:
		if r.Cancelled {
			fmt.Println(stl.cancel.Render("learning cancelled"))
		} else {
			fmt.Println(stl.learned.Render(fmt.Sprintf("learned binding '%s'", r.Sig.Name)))
			fmt.Println(stl.value.Render(fmt.Sprintf("value at exit: %+.2f", r.Sig.Value())))
		}
	default:
		fmt.Println(stl.cancel.Render("no binding learned"))
	}

	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("*** %s\n", err)
		os.Exit(1)
	}
}
