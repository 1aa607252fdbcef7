package screens

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/rook-computer/joypaint/internal/palette"
	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/rook-computer/joypaint/internal/render"
	"github.com/rook-computer/joypaint/internal/render/layout"
	"github.com/rook-computer/joypaint/internal/state"
)

const (
	outlineWidth          = 2
	referenceOutlineWidth = 1
	selectedBorderWidth   = 3
	cursorRadius          = 8

	hints = "A/D pick color   B fill   C clear   E next picture   F clear all"
)

var (
	background = palette.Gray
	textColor  = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	mutedColor = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}
)

// PaintScreen draws the coloring page: canvas, reference image, palette,
// status text and the cursor.
type PaintScreen struct {
	Layout layout.Screen

	references map[picture.Picture]*image.RGBA
}

func NewPaintScreen(l layout.Screen) *PaintScreen { return &PaintScreen{Layout: l} }

func (s *PaintScreen) Start(ctx context.Context) error { return nil }
func (s *PaintScreen) Stop() error                     { return nil }

func (s *PaintScreen) Draw(r render.Drawer, st state.State) {
	r.FillBackground(background)

	canvas := s.Layout.Canvas
	r.FillRect(canvas, palette.White)
	sx, sy := s.Layout.CanvasScale(picture.ReferenceSize)
	regions := picture.RegionsFor(st.Picture)

	// Fills go down first so outlines of overlapping regions stay visible.
	// They are painted back to front so the region that wins a hit-test
	// also wins the overlapping pixels.
	for i := len(regions) - 1; i >= 0; i-- {
		if c, ok := st.Fills[regions[i].Name]; ok {
			fillShape(r, regions[i].Shape.Scale(sx, sy), canvas.Min, c)
		}
	}
	for _, region := range regions {
		strokeShape(r, region.Shape.Scale(sx, sy), canvas.Min, picture.OutlineColor, outlineWidth)
	}
	drawDecorations(r, st.Picture, canvas.Min, sx, sy)
	r.StrokeRect(canvas, mutedColor, 1)

	s.drawReference(r, st.Picture)
	s.drawPalette(r, st.ColorIndex)
	s.drawStatus(r, st)
	s.drawCursor(r, st)
}

func (s *PaintScreen) drawReference(r render.Drawer, p picture.Picture) {
	ref := s.Layout.Reference
	r.FillRect(ref, palette.White)
	r.DrawImageInRect(s.referenceImage(p), ref, render.ScaleModeFit)
	r.StrokeRect(ref, mutedColor, 1)
	r.DrawText("reference", ref.Min.X+ref.Dx()/2, ref.Max.Y+4, render.TextStyle{Color: mutedColor, Size: 12, Align: render.TextAlignCenter})
}

// referenceImage renders the filled reference of p at its authored size.
// Each picture is drawn once and reused for every frame.
func (s *PaintScreen) referenceImage(p picture.Picture) *image.RGBA {
	if img, ok := s.references[p]; ok {
		return img
	}
	c := render.NewCanvas(picture.ReferenceSize, picture.ReferenceSize, nil)
	c.FillBackground(palette.White)
	regions := picture.RegionsFor(p)
	for i := len(regions) - 1; i >= 0; i-- {
		fillShape(c, regions[i].Shape, image.Point{}, regions[i].Reference)
	}
	for _, region := range regions {
		strokeShape(c, region.Shape, image.Point{}, picture.OutlineColor, referenceOutlineWidth)
	}
	drawDecorations(c, p, image.Point{}, 1, 1)

	if s.references == nil {
		s.references = make(map[picture.Picture]*image.RGBA)
	}
	s.references[p] = c.Image()
	return c.Image()
}

func (s *PaintScreen) drawPalette(r render.Drawer, selected int) {
	entries := palette.Entries()
	for i, swatch := range s.Layout.Swatches {
		if i >= len(entries) {
			break
		}
		r.FillRect(swatch, entries[i].Color)
		if i == selected {
			r.StrokeRect(swatch.Inset(-selectedBorderWidth), textColor, selectedBorderWidth)
		} else {
			r.StrokeRect(swatch, mutedColor, 1)
		}
	}
}

func (s *PaintScreen) drawStatus(r render.Drawer, st state.State) {
	x, y := 20, 20
	title := r.DrawText(st.Picture.DisplayName(), x, y, render.TextStyle{Color: textColor, Size: 28})
	y += title.LineHeight + 8

	small := render.TextStyle{Color: textColor, Size: 14}
	selected := palette.At(st.ColorIndex)
	m := r.DrawText("color:", x, y, small)
	r.FillRect(image.Rect(x+m.Width+6, y+2, x+m.Width+6+m.Ascent, y+2+m.Ascent), selected.Color)
	r.StrokeRect(image.Rect(x+m.Width+6, y+2, x+m.Width+6+m.Ascent, y+2+m.Ascent), textColor, 1)
	r.DrawText(selected.Name, x+m.Width+12+m.Ascent, y, small)
	y += m.LineHeight + 4

	p := st.Progress
	r.DrawText(fmt.Sprintf("matched %d/%d (%.0f%%)", p.Matched, p.Total, p.Percent()), x, y, small)
	y += m.LineHeight + 4
	r.DrawText(fmt.Sprintf("filled %d/%d", p.Filled, p.Total), x, y, small)
	if st.Timed {
		y += m.LineHeight + 4
		secs := int(st.Remaining / time.Second)
		r.DrawText(fmt.Sprintf("time left %02d:%02d", secs/60, secs%60), x, y, small)
	}

	_, h := r.Size()
	if st.Message != "" {
		r.DrawText(st.Message, x, h-60, render.TextStyle{Color: textColor, Size: 16})
	}
	r.DrawText(hints, x, h-30, render.TextStyle{Color: mutedColor, Size: 12})
}

// drawCursor draws a crosshair ring tinted with the selected color.
func (s *PaintScreen) drawCursor(r render.Drawer, st state.State) {
	cx, cy := st.Cursor.X, st.Cursor.Y
	selected := palette.At(st.ColorIndex).Color
	r.FillCircle(cx, cy, cursorRadius, selected)
	r.StrokeCircle(cx, cy, cursorRadius, textColor, 2)
	x, y := int(math.Round(cx)), int(math.Round(cy))
	r.FillRect(image.Rect(x-cursorRadius-4, y, x-cursorRadius+1, y), textColor)
	r.FillRect(image.Rect(x+cursorRadius-1, y, x+cursorRadius+4, y), textColor)
	r.FillRect(image.Rect(x, y-cursorRadius-4, x, y-cursorRadius+1), textColor)
	r.FillRect(image.Rect(x, y+cursorRadius-1, x, y+cursorRadius+4), textColor)
}

func fillShape(r render.Drawer, shape picture.Shape, origin image.Point, c color.Color) {
	switch sh := shape.(type) {
	case picture.Circle:
		r.FillCircle(float64(origin.X)+sh.CenterX, float64(origin.Y)+sh.CenterY, sh.Radius, c)
	case picture.Rect:
		r.FillRect(rectAt(sh, origin), c)
	}
}

func strokeShape(r render.Drawer, shape picture.Shape, origin image.Point, c color.Color, width int) {
	switch sh := shape.(type) {
	case picture.Circle:
		r.StrokeCircle(float64(origin.X)+sh.CenterX, float64(origin.Y)+sh.CenterY, sh.Radius, c, width)
	case picture.Rect:
		r.StrokeRect(rectAt(sh, origin), c, width)
	}
}

// drawDecorations scales decoration centres with the picture but keeps
// their radius in display pixels.
func drawDecorations(r render.Drawer, p picture.Picture, origin image.Point, sx, sy float64) {
	for _, deco := range picture.DecorationsFor(p) {
		r.FillCircle(float64(origin.X)+deco.CenterX*sx, float64(origin.Y)+deco.CenterY*sy, deco.Radius, picture.OutlineColor)
	}
}

func rectAt(rc picture.Rect, origin image.Point) image.Rectangle {
	return image.Rect(
		origin.X+int(math.Round(rc.X)),
		origin.Y+int(math.Round(rc.Y)),
		origin.X+int(math.Round(rc.X+rc.Width)),
		origin.Y+int(math.Round(rc.Y+rc.Height)),
	)
}
