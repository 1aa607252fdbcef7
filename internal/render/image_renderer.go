package render

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rook-computer/joypaint/internal/state"
)

// ImageRenderer draws frames into memory. The simulator and tests use it in
// place of the framebuffer.
type ImageRenderer struct {
	*Canvas
	current Screen
	frames  int
}

func NewImageRenderer(width, height int, logger Logger) *ImageRenderer {
	return &ImageRenderer{Canvas: NewCanvas(width, height, logger)}
}

func (r *ImageRenderer) Start(ctx context.Context) error { return nil }
func (r *ImageRenderer) Stop() error                     { return nil }
func (r *ImageRenderer) SetScreen(screen Screen)         { r.current = screen }

func (r *ImageRenderer) RedrawWithState(snap state.State) {
	if r.current == nil {
		return
	}
	r.current.Draw(r.Canvas, snap)
	r.frames++
}

// Frames counts completed redraws.
func (r *ImageRenderer) Frames() int { return r.frames }

// Snapshot returns a copy of the last frame.
func (r *ImageRenderer) Snapshot() *image.RGBA {
	src := r.Canvas.Image()
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

// SavePNG writes the last frame to path.
func (r *ImageRenderer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, r.Canvas.Image()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
