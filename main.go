package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/joypaint/internal/app"
	"github.com/rook-computer/joypaint/internal/config"
	"github.com/rook-computer/joypaint/internal/paint"
	"github.com/rook-computer/joypaint/internal/palette"
	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/rook-computer/joypaint/internal/render"
	"github.com/rook-computer/joypaint/internal/render/layout"
	"github.com/rook-computer/joypaint/internal/system"
	"github.com/rook-computer/joypaint/internal/transport"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs before exit.
func run() int {
	fmt.Println("joypaint starting")

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NewLogrusLogger(os.Stderr, false)
	if cfg.Debug {
		f, err := os.OpenFile("./joypaint-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewLogrusLogger(f, true)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	// Context for lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	system.StartExitOnKeys(ctx, logger, cancel)

	screen := layout.NewScreen(cfg.DisplayWidth, cfg.DisplayHeight, cfg.CanvasWidth, cfg.CanvasHeight, picture.ReferenceSize, palette.Len())
	session := paint.NewSession(paint.Options{
		Screen:      screen,
		Calibration: cfg.Calibration,
		Mode:        cfg.Mode,
		Picture:     cfg.Picture,
		Logger:      logger,
		Round:       cfg.Round,
	})

	renderer := render.NewFBRenderer(cfg.DisplayWidth, cfg.DisplayHeight)
	renderer.Device = cfg.FBDevice
	link := transport.NewSerialTransport(transport.SerialConfig{PortName: cfg.PortName, BaudRate: cfg.BaudRate}, logger)

	a := app.New(session, renderer, link)
	a.Logger = logger
	a.Debug = cfg.Debug
	a.FrameRate = cfg.FrameRate
	a.ConnectTimeout = cfg.ConnectTimeout
	a.Console = true

	if err := a.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("main", "app stopped: %v", err)
		fmt.Println("app error:", err)
		return 1
	}
	logger.Infof("main", "bye")
	return 0
}
