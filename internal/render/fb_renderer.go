package render

import (
	"context"
	"image"
	"image/draw"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/joypaint/internal/state"
	xdraw "golang.org/x/image/draw"
)

const DefaultDevice = "/dev/fb0"

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	*Canvas

	fbDev   *fb.Device
	running atomic.Bool
	current Screen
	lastLog time.Time

	Device        string
	Width, Height int
	Logger        Logger
	Debug         bool
}

func NewFBRenderer(width, height int) *FBRenderer {
	return &FBRenderer{Device: DefaultDevice, Width: width, Height: height}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	if r.Logger == nil {
		r.Logger = noopLogger{}
	}
	dev, err := fb.Open(r.Device)
	if err != nil {
		return err
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d, canvas=%dx%d", bounds.Dx(), bounds.Dy(), r.Width, r.Height)

	// Prepare logical canvas
	r.Canvas = NewCanvas(r.Width, r.Height, r.Logger)
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

// SetScreen sets the current logical screen to be drawn.
func (r *FBRenderer) SetScreen(screen Screen) { r.current = screen }

// RedrawWithState draws the current screen and pushes the frame out.
func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil || r.fbDev == nil {
		return
	}
	r.current.Draw(r.Canvas, snap)
	blitToFB(r.fbDev, r.Canvas.Image())
	if r.Debug && time.Since(r.lastLog) > time.Second {
		r.Logger.Infof("fb", "heartbeat frame, picture=%s fills=%d", snap.Picture, len(snap.Fills))
		r.lastLog = time.Now()
	}
}

// Helper: blit canvas to framebuffer via nearest-neighbor scaling.
func blitToFB(dst draw.Image, canvas *image.RGBA) {
	if dst.Bounds().Eq(canvas.Bounds()) {
		draw.Draw(dst, dst.Bounds(), canvas, image.Point{}, draw.Src)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
}
