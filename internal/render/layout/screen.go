package layout

import "image"

const (
	referenceMarginPx = 20
	paletteTopPx      = 250
	paletteWidthPx    = 80
	paletteRightPx    = 20
	paletteBottomPx   = 20
	maxSwatchPx       = 40
	maxSwatchGapPx    = 10
)

// Screen holds where each part of the UI sits on the display, in display pixels.
type Screen struct {
	Display   image.Rectangle
	Canvas    image.Rectangle
	Reference image.Rectangle
	// Palette is the strip that answers color picks; Swatches are the
	// squares drawn inside it, one per palette color.
	Palette  image.Rectangle
	Swatches []image.Rectangle
}

// NewScreen centres the canvas on the display, pins the reference image to
// the top-right corner and lays swatchCount swatches down the right edge,
// shrinking them so the column always fits on the display.
func NewScreen(displayWidth, displayHeight, canvasWidth, canvasHeight, referenceSize, swatchCount int) Screen {
	display := image.Rect(0, 0, displayWidth, displayHeight)
	screen := Screen{
		Display:   display,
		Canvas:    CenterIn(display, canvasWidth, canvasHeight),
		Reference: AnchorTopRight(display, referenceSize, referenceSize, referenceMarginPx),
	}

	size, gap := maxSwatchPx, maxSwatchGapPx
	available := displayHeight - paletteTopPx - paletteBottomPx
	if swatchCount > 0 && swatchCount*(size+gap)-gap > available {
		pitch := (available + gap) / swatchCount
		gap = pitch / 6
		size = pitch - gap
	}
	left := displayWidth - paletteWidthPx - paletteRightPx
	columnHeight := swatchCount*(size+gap) - gap
	if columnHeight < 0 {
		columnHeight = 0
	}
	screen.Palette = image.Rect(left, paletteTopPx, displayWidth-paletteRightPx, paletteTopPx+columnHeight)
	screen.Swatches = Column(screen.Palette, swatchCount, size, gap)
	return screen
}

// CanvasScale is the factor from the square reference frame to the canvas, per axis.
func (s Screen) CanvasScale(referenceSize int) (scaleX, scaleY float64) {
	return float64(s.Canvas.Dx()) / float64(referenceSize), float64(s.Canvas.Dy()) / float64(referenceSize)
}

// ToCanvas converts a display position to canvas coordinates. ok is false when
// the position is outside the canvas (edges count as inside).
func (s Screen) ToCanvas(x, y float64) (cx, cy float64, ok bool) {
	if !ContainsInclusive(s.Canvas, x, y) {
		return 0, 0, false
	}
	return x - float64(s.Canvas.Min.X), y - float64(s.Canvas.Min.Y), true
}

// SwatchAt returns the index of the swatch row under (x, y). A row spans the
// full palette strip width.
func (s Screen) SwatchAt(x, y float64) (int, bool) {
	if x < float64(s.Palette.Min.X) || x > float64(s.Palette.Max.X) {
		return 0, false
	}
	for i, swatch := range s.Swatches {
		if y >= float64(swatch.Min.Y) && y <= float64(swatch.Max.Y) {
			return i, true
		}
	}
	return 0, false
}

// CanvasCenter is the display position of the middle of the canvas.
func (s Screen) CanvasCenter() (x, y float64) {
	return float64(s.Canvas.Min.X + s.Canvas.Dx()/2), float64(s.Canvas.Min.Y + s.Canvas.Dy()/2)
}
