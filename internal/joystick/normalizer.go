package joystick

// Bounds is the inclusive area the cursor may occupy.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Normalizer owns the cursor position and applies joystick samples to it.
// It is not safe for concurrent use.
type Normalizer struct {
	Calibration Calibration
	Mode        Mode
	Bounds      Bounds

	// HomeX/HomeY is where the cursor starts, and where centered mode rests.
	HomeX, HomeY float64
	// ReachX/ReachY is how far a full deflection carries the cursor from
	// home in centered mode.
	ReachX, ReachY float64

	x, y float64
}

func NewNormalizer(cal Calibration, mode Mode, bounds Bounds, homeX, homeY, reachX, reachY float64) *Normalizer {
	n := &Normalizer{
		Calibration: cal,
		Mode:        mode,
		Bounds:      bounds,
		HomeX:       homeX,
		HomeY:       homeY,
		ReachX:      reachX,
		ReachY:      reachY,
	}
	n.Reset()
	return n
}

// Position returns the published cursor position.
func (n *Normalizer) Position() (x, y float64) { return n.x, n.y }

// SetPosition moves the cursor directly, clamped to Bounds.
func (n *Normalizer) SetPosition(x, y float64) {
	n.x = clamp(x, n.Bounds.MinX, n.Bounds.MaxX)
	n.y = clamp(y, n.Bounds.MinY, n.Bounds.MaxY)
}

// Reset returns the cursor to home.
func (n *Normalizer) Reset() { n.SetPosition(n.HomeX, n.HomeY) }

// Apply consumes one X/Y sample pair. Both axes are computed from the
// previous position before the new one is published.
func (n *Normalizer) Apply(rawX, rawY int) (x, y float64) {
	b := n.Bounds
	switch n.Mode {
	case ModeCentered:
		x = CenteredAxis(rawX, n.Calibration.X, n.HomeX, n.ReachX, b.MinX, b.MaxX)
		y = CenteredAxis(rawY, n.Calibration.Y, n.HomeY, n.ReachY, b.MinY, b.MaxY)
	default:
		x = NormalizeAxis(rawX, n.Calibration.X, n.x, b.MinX, b.MaxX)
		y = NormalizeAxis(rawY, n.Calibration.Y, n.y, b.MinY, b.MaxY)
	}
	n.x, n.y = x, y
	return x, y
}
