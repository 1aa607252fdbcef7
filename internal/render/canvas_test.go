package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/joypaint/internal/state"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestFillRectIncludesFarEdges(t *testing.T) {
	c := NewCanvas(20, 20, nil)
	c.FillBackground(white)
	c.FillRect(image.Rect(2, 3, 5, 6), red)

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(2, 3))
	assert.Equal(t, red, img.RGBAAt(5, 6))
	assert.Equal(t, white, img.RGBAAt(6, 6))
	assert.Equal(t, white, img.RGBAAt(1, 3))
}

func TestFillCircleMatchesInclusiveContainment(t *testing.T) {
	c := NewCanvas(40, 40, nil)
	c.FillBackground(white)
	c.FillCircle(20, 20, 5, red)

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(20, 20))
	assert.Equal(t, red, img.RGBAAt(25, 20), "edge pixel is inside")
	assert.Equal(t, red, img.RGBAAt(23, 24), "3-4-5 triangle lands on the edge")
	assert.Equal(t, white, img.RGBAAt(26, 20))
	assert.Equal(t, white, img.RGBAAt(24, 24))
}

func TestStrokeCircleLeavesInteriorAlone(t *testing.T) {
	c := NewCanvas(40, 40, nil)
	c.FillBackground(white)
	c.FillCircle(20, 20, 10, red)
	c.StrokeCircle(20, 20, 10, black, 2)

	img := c.Image()
	assert.Equal(t, black, img.RGBAAt(30, 20))
	assert.Equal(t, black, img.RGBAAt(29, 20))
	assert.Equal(t, red, img.RGBAAt(27, 20))
	assert.Equal(t, red, img.RGBAAt(20, 20))
}

func TestCirclesClipToCanvas(t *testing.T) {
	c := NewCanvas(10, 10, nil)
	c.FillBackground(white)
	assert.NotPanics(t, func() {
		c.FillCircle(-5, -5, 8, red)
		c.StrokeCircle(12, 12, 30, black, 3)
	})
	assert.Equal(t, red, c.Image().RGBAAt(0, 0))
}

func TestStrokeRect(t *testing.T) {
	c := NewCanvas(20, 20, nil)
	c.FillBackground(white)
	c.StrokeRect(image.Rect(2, 2, 10, 10), black, 1)

	img := c.Image()
	assert.Equal(t, black, img.RGBAAt(2, 2))
	assert.Equal(t, black, img.RGBAAt(10, 10))
	assert.Equal(t, black, img.RGBAAt(6, 2))
	assert.Equal(t, black, img.RGBAAt(10, 6))
	assert.Equal(t, white, img.RGBAAt(6, 6))
}

func TestDrawTextMarksPixels(t *testing.T) {
	c := NewCanvas(200, 60, nil)
	c.FillBackground(white)
	m := c.DrawText("Human", 10, 10, TextStyle{Color: black, Size: 14})
	assert.Greater(t, m.Width, 0)
	assert.Greater(t, m.Height, 0)

	big := c.MeasureText("Human", TextStyle{Size: 32})
	assert.Greater(t, big.Width, m.Width)

	img := c.Image()
	found := false
	for y := 10; y < 10+m.Height && !found; y++ {
		for x := 10; x < 10+m.Width; x++ {
			if img.RGBAAt(x, y) != white {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "text should draw inside its measured box")
}

func TestTextAlignment(t *testing.T) {
	c := NewCanvas(200, 40, nil)
	style := TextStyle{Color: black, Size: 12, Align: TextAlignRight}
	c.FillBackground(white)
	m := c.DrawText("right", 190, 5, style)

	img := c.Image()
	for y := 0; y < 40; y++ {
		for x := 191; x < 200; x++ {
			require.Equal(t, white, img.RGBAAt(x, y), "right-aligned text must end at x")
		}
	}
	assert.Greater(t, m.Width, 0)
}

func TestFitRect(t *testing.T) {
	src := image.Rect(0, 0, 100, 50)
	dst := image.Rect(0, 0, 200, 200)
	assert.Equal(t, image.Rect(0, 50, 200, 150), fitRect(src, dst, ScaleModeFit))
	assert.Equal(t, image.Rect(-100, 0, 300, 200), fitRect(src, dst, ScaleModeFill))
	assert.Equal(t, dst, fitRect(src, dst, ScaleModeStretch))
}

func TestDrawImageInRect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	c := NewCanvas(20, 20, nil)
	c.FillBackground(black)
	c.DrawImageInRect(src, image.Rect(5, 5, 15, 15), ScaleModeFit)

	img := c.Image()
	assert.Equal(t, white, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(14, 14))
	assert.Equal(t, black, img.RGBAAt(15, 15))
}

func TestBlitScalesToTarget(t *testing.T) {
	c := NewCanvas(4, 4, nil)
	c.FillBackground(white)
	c.FillRect(image.Rect(0, 0, 1, 1), red)

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	blitToFB(dst, c.Image())
	assert.Equal(t, red, dst.RGBAAt(0, 0))
	assert.Equal(t, red, dst.RGBAAt(3, 3))
	assert.Equal(t, white, dst.RGBAAt(4, 4))

	same := image.NewRGBA(image.Rect(0, 0, 4, 4))
	blitToFB(same, c.Image())
	assert.Equal(t, c.Image().Pix, same.Pix)
}

type recordingScreen struct {
	draws int
	last  state.State
}

func (s *recordingScreen) Start(ctx context.Context) error { return nil }
func (s *recordingScreen) Stop() error                     { return nil }
func (s *recordingScreen) Draw(d Drawer, st state.State) {
	s.draws++
	s.last = st
	d.FillBackground(red)
}

func TestImageRendererDrawsCurrentScreen(t *testing.T) {
	r := NewImageRenderer(10, 10, nil)
	r.RedrawWithState(state.State{})
	assert.Equal(t, 0, r.Frames(), "no screen, no frame")

	screen := &recordingScreen{}
	r.SetScreen(screen)
	r.RedrawWithState(state.State{Message: "hi"})

	assert.Equal(t, 1, r.Frames())
	assert.Equal(t, "hi", screen.last.Message)
	snap := r.Snapshot()
	assert.Equal(t, red, snap.RGBAAt(9, 9))

	r.FillBackground(white)
	assert.Equal(t, red, snap.RGBAAt(9, 9), "snapshot is a copy")
}
