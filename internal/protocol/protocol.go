// Package protocol parses the line-oriented messages sent by the joystick
// firmware: "BTN:<id>" for button presses and "X:<n>,Y:<n>,B:<n>" for
// analog samples.
package protocol

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrMalformedLine = errors.New("malformed line")
	ErrUnknownButton = errors.New("unknown button")
)

type Button string

const (
	ButtonA Button = "A"
	ButtonB Button = "B"
	ButtonC Button = "C"
	ButtonD Button = "D"
	ButtonE Button = "E"
	ButtonF Button = "F"
)

// Buttons lists every id the core reacts to.
var Buttons = []Button{ButtonA, ButtonB, ButtonC, ButtonD, ButtonE, ButtonF}

// Event is either a ButtonEvent or an AxisEvent.
type Event interface {
	event()
}

type ButtonEvent struct {
	Button Button
}

func (ButtonEvent) event() {}

// AxisEvent is one raw joystick sample. Pressed mirrors the trailing B:
// field; the core ignores it because presses arrive as ButtonEvents.
type AxisEvent struct {
	X, Y    int
	Pressed int
}

func (AxisEvent) event() {}

var axisPattern = regexp.MustCompile(`^X:(\d+),Y:(\d+),B:(\d+)$`)

const buttonPrefix = "BTN:"

// Parse decodes one line (without its terminator; surrounding whitespace is
// ignored). Lines that match neither form return ErrMalformedLine; button
// lines with an id outside Buttons return ErrUnknownButton.
func Parse(line string) (Event, error) {
	line = strings.TrimSpace(line)

	if id, ok := strings.CutPrefix(line, buttonPrefix); ok {
		button := Button(id)
		for _, known := range Buttons {
			if button == known {
				return ButtonEvent{Button: button}, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownButton, id)
	}

	match := axisPattern.FindStringSubmatch(line)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	values := make([]int, 3)
	for i := range values {
		v, err := strconv.Atoi(match[i+1])
		if err != nil {
			// Only overflow can get here; the pattern admits digits alone.
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
		}
		values[i] = v
	}
	return AxisEvent{X: values[0], Y: values[1], Pressed: values[2]}, nil
}

// Format renders an event back into its wire form.
func Format(ev Event) string {
	switch e := ev.(type) {
	case ButtonEvent:
		return buttonPrefix + string(e.Button)
	case AxisEvent:
		return fmt.Sprintf("X:%d,Y:%d,B:%d", e.X, e.Y, e.Pressed)
	default:
		return ""
	}
}
