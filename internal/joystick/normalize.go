package joystick

import "math"

// NormalizeAxis moves current by one sample's worth of deflection and clamps
// the result to [minBound, maxBound]. Inside the dead zone current is
// returned unchanged.
func NormalizeAxis(raw int, axis Axis, current, minBound, maxBound float64) float64 {
	offset := raw - axis.Center
	delta := abs(offset)
	if delta < axis.DeadZone {
		return current
	}

	speed := math.Min(float64(delta)/axis.SpeedDivider, axis.MaxSpeed)
	negative := offset < 0
	if axis.Invert {
		negative = !negative
	}
	if negative {
		current -= speed
	} else {
		current += speed
	}
	return clamp(current, minBound, maxBound)
}

// CenteredAxis maps the deflection onto home ± reach. Inside the dead zone the
// cursor returns to home.
func CenteredAxis(raw int, axis Axis, home, reach, minBound, maxBound float64) float64 {
	offset := raw - axis.Center
	if abs(offset) < axis.DeadZone {
		return clamp(home, minBound, maxBound)
	}
	fullScale := float64(axis.Max - axis.Center)
	normalized := clamp(float64(offset)/fullScale, -1, 1)
	if axis.Invert {
		normalized = -normalized
	}
	return clamp(home+normalized*reach, minBound, maxBound)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
