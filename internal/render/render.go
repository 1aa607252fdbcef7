package render

import (
	"context"
	"image"
	"image/color"

	"github.com/rook-computer/joypaint/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	RedrawWithState(snap state.State)
}

type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(r Drawer, s state.State)
}

// Drawer is an abstraction the renderer provides to screens to draw primitives
// without exposing low-level framebuffer details. Coordinates are display
// pixels with the origin at the top-left.
type Drawer interface {
	// Size returns the logical canvas size (in pixels) that screens draw into.
	Size() (width int, height int)

	FillBackground(c color.Color)

	// Shape primitives. Circles use the same inclusive containment as
	// region hit-testing so a fill covers exactly the pixels that hit.
	FillRect(rect image.Rectangle, c color.Color)
	StrokeRect(rect image.Rectangle, c color.Color, width int)
	FillCircle(cx, cy, radius float64, c color.Color)
	StrokeCircle(cx, cy, radius float64, c color.Color, width int)

	// Generic text primitives.
	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// Generic image primitives.
	DrawImageInRect(img image.Image, rect image.Rectangle, mode ScaleMode)

	// Convenience helpers (implemented using the generic primitives).
	DrawTextCentered(text string, style TextStyle)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y.
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color color.Color
	Size  int // font size in points; 0 means renderer default
	Align TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

type ScaleMode int

const (
	ScaleModeFit ScaleMode = iota
	ScaleModeFill
	ScaleModeStretch
)
