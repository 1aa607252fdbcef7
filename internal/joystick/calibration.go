// Package joystick turns raw analog samples from the joystick shield into
// cursor positions.
package joystick

import (
	"fmt"
	"strings"
)

// Axis describes how one analog channel maps to cursor motion.
type Axis struct {
	Center   int // raw value at rest
	Max      int // raw full-scale value
	DeadZone int // |raw-Center| below this is ignored

	// SpeedDivider and MaxSpeed turn the raw offset into a per-sample step:
	// step = min(|raw-Center|/SpeedDivider, MaxSpeed).
	SpeedDivider float64
	MaxSpeed     float64

	// Invert flips direction. The Y sensor is mounted upside down relative
	// to screen coordinates, so raw values below Center move the cursor down.
	Invert bool
}

type Calibration struct {
	X Axis
	Y Axis
}

// DefaultCalibration matches a 12-bit ADC with the stick resting mid-scale.
func DefaultCalibration() Calibration {
	axis := Axis{Center: 2048, Max: 4095, DeadZone: 100, SpeedDivider: 100.0, MaxSpeed: 10.0}
	y := axis
	y.Invert = true
	return Calibration{X: axis, Y: y}
}

// Validate rejects calibrations that would divide by zero or never move.
func (c Calibration) Validate() error {
	for name, axis := range map[string]Axis{"x": c.X, "y": c.Y} {
		if axis.SpeedDivider <= 0 {
			return fmt.Errorf("%s axis: speed divider must be positive (got %v)", name, axis.SpeedDivider)
		}
		if axis.MaxSpeed <= 0 {
			return fmt.Errorf("%s axis: max speed must be positive (got %v)", name, axis.MaxSpeed)
		}
		if axis.DeadZone < 0 {
			return fmt.Errorf("%s axis: dead zone must not be negative (got %d)", name, axis.DeadZone)
		}
		if axis.Max <= axis.Center {
			return fmt.Errorf("%s axis: max %d must be above center %d", name, axis.Max, axis.Center)
		}
	}
	return nil
}

// Mode selects how samples move the cursor.
type Mode int

const (
	// ModeAbsolute moves the cursor by a step proportional to the deflection.
	ModeAbsolute Mode = iota
	// ModeCentered places the cursor at home plus the scaled deflection and
	// springs back to home inside the dead zone.
	ModeCentered
)

func (m Mode) String() string {
	switch m {
	case ModeAbsolute:
		return "absolute"
	case ModeCentered:
		return "centered"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "absolute":
		return ModeAbsolute, nil
	case "centered", "centred":
		return ModeCentered, nil
	default:
		return ModeAbsolute, fmt.Errorf("unknown joystick mode %q", s)
	}
}
