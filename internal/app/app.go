package app

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rook-computer/joypaint/internal/app/screens"
	"github.com/rook-computer/joypaint/internal/paint"
	"github.com/rook-computer/joypaint/internal/render"
	"github.com/rook-computer/joypaint/internal/system"
	"github.com/rook-computer/joypaint/internal/transport"
)

// ErrDisconnected is returned when the joystick link closes while painting.
var ErrDisconnected = errors.New("joystick disconnected")

const DefaultFrameRate = 60

type App struct {
	Session   *paint.Session
	Render    render.Renderer
	Transport transport.Transport
	Logger    Logger
	Debug     bool

	FrameRate      int
	ConnectTimeout time.Duration
	ConnectRetry   time.Duration

	// Console switches the VT into graphics mode while running.
	Console bool
	// ExitOnEOF ends the app cleanly when the transport runs dry instead of
	// treating it as a lost connection.
	ExitOnEOF bool

	currentScreen render.Screen
	connect       *screens.ConnectScreen

	exitOnce    atomic.Bool
	exitCh      chan error
	connectedCh chan struct{}
}

func New(session *paint.Session, renderer render.Renderer, t transport.Transport) *App {
	return &App{
		Session:     session,
		Render:      renderer,
		Transport:   t,
		Logger:      NoopLogger{},
		FrameRate:   DefaultFrameRate,
		exitCh:      make(chan error, 1),
		connectedCh: make(chan struct{}, 1),
	}
}

// Exit requests the app to stop running.
// Any screen can call this to terminate the process via the generic codepath.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Connected is called by the connect screen once the transport is reading.
func (app *App) Connected() {
	select {
	case app.connectedCh <- struct{}{}:
	default:
	}
}

// Start runs the app until ctx is done or Exit is called. Rendering, event
// draining and screen changes all happen on the calling goroutine.
func (app *App) Start(ctx context.Context) error {
	if app.Session == nil || app.Transport == nil {
		return errors.New("app needs a session and a transport")
	}
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	if app.connectedCh == nil {
		app.connectedCh = make(chan struct{}, 1)
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.exitOnce.Store(false)

	// Initialize renderer and draw first screen
	if app.Render == nil {
		return errors.New("app needs a renderer")
	}
	if fb, ok := app.Render.(*render.FBRenderer); ok {
		fb.Logger = app.Logger
		fb.Debug = app.Debug
	}
	if err := app.Render.Start(ctx); err != nil {
		app.Logger.Errorf("app", "renderer start error: %v", err)
		return err
	}
	defer app.Render.Stop()

	if app.Console {
		console := system.Console{Logger: app.Logger}
		console.Enter()
		defer console.Leave()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer func() { _ = app.Transport.Stop() }()

	app.connect = screens.NewConnectScreen(app.Transport, app.Logger, app)
	if app.ConnectTimeout > 0 {
		app.connect.TimeoutSeconds = int(app.ConnectTimeout / time.Second)
	}
	if app.ConnectRetry > 0 {
		app.connect.RetryDelay = app.ConnectRetry
	}
	if err := app.setScreen(runCtx, app.connect); err != nil {
		return err
	}
	defer func() { _ = app.currentScreen.Stop() }()

	// Force immediate first redraw to ensure text shows without waiting for loop.
	app.Render.RedrawWithState(app.Session.Snapshot())

	err := app.loop(runCtx)
	cancel()
	app.connect.Wait()
	return err
}

func (app *App) loop(ctx context.Context) error {
	fps := app.FrameRate
	if fps <= 0 {
		fps = DefaultFrameRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	painting := false
	lastLog := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-app.exitCh:
			return err
		case <-app.connectedCh:
			if err := app.setScreen(ctx, screens.NewPaintScreen(app.Session.Screen())); err != nil {
				return err
			}
			painting = true
			app.Logger.Infof("app", "joystick connected, painting %s", app.Session.Picture())
		case <-ticker.C:
			if painting {
				app.Session.Tick()
				n, open := app.Session.Drain(app.Transport.Lines())
				if !open {
					app.Render.RedrawWithState(app.Session.Snapshot())
					if app.ExitOnEOF {
						app.Logger.Infof("app", "input finished")
						return nil
					}
					app.Logger.Errorf("app", "%v", ErrDisconnected)
					return ErrDisconnected
				}
				if app.Debug && n > 0 && time.Since(lastLog) > time.Second {
					app.Logger.Infof("app", "applied %d lines this frame", n)
					lastLog = time.Now()
				}
			}
			app.Render.RedrawWithState(app.Session.Snapshot())
		}
	}
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}
