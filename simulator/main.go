package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/rook-computer/joypaint/internal/app"
	"github.com/rook-computer/joypaint/internal/config"
	"github.com/rook-computer/joypaint/internal/paint"
	"github.com/rook-computer/joypaint/internal/palette"
	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/rook-computer/joypaint/internal/render"
	"github.com/rook-computer/joypaint/internal/render/layout"
	"github.com/rook-computer/joypaint/internal/transport"
)

// The simulator drives the painting core from protocol lines on stdin or a
// script file and renders headless, so the app can be exercised without
// the joystick board or a framebuffer.
func main() {
	os.Exit(run())
}

func run() int {
	flags := flag.NewFlagSet("joypaint-sim", flag.ExitOnError)
	script := flags.String("script", "", "read protocol lines from this file instead of stdin")
	snapshot := flags.String("snapshot", "", "write the last frame to this PNG file")
	cfg, err := config.Load(flags, os.Args[1:])
	if err != nil {
		fmt.Println("config error:", err)
		return 2
	}

	logger := app.NewLogrusLogger(os.Stderr, cfg.Debug)

	var input io.Reader = os.Stdin
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			fmt.Println("script error:", err)
			return 2
		}
		defer f.Close()
		input = f
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen := layout.NewScreen(cfg.DisplayWidth, cfg.DisplayHeight, cfg.CanvasWidth, cfg.CanvasHeight, picture.ReferenceSize, palette.Len())
	session := paint.NewSession(paint.Options{
		Screen:      screen,
		Calibration: cfg.Calibration,
		Mode:        cfg.Mode,
		Picture:     cfg.Picture,
		Logger:      logger,
		Round:       cfg.Round,
	})
	renderer := render.NewImageRenderer(cfg.DisplayWidth, cfg.DisplayHeight, logger)

	a := app.New(session, renderer, transport.NewReaderTransport(input, logger))
	a.Logger = logger
	a.Debug = cfg.Debug
	a.FrameRate = cfg.FrameRate
	a.ConnectRetry = 10 * time.Millisecond
	a.ExitOnEOF = true

	runErr := a.Start(processCtx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Println("simulator error:", runErr)
	}

	printSummary(os.Stdout, session)
	if *snapshot != "" {
		if err := renderer.SavePNG(*snapshot); err != nil {
			fmt.Println("snapshot error:", err)
			return 1
		}
		fmt.Println("snapshot:", *snapshot)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return 1
	}
	return 0
}

func printSummary(w io.Writer, s *paint.Session) {
	snap := s.Snapshot()
	fmt.Fprintf(w, "picture: %s\n", snap.Picture.DisplayName())
	fmt.Fprintf(w, "cursor: %.1f,%.1f\n", snap.Cursor.X, snap.Cursor.Y)
	fmt.Fprintf(w, "color: %s\n", palette.At(snap.ColorIndex).Name)

	names := make([]string, 0, len(snap.Fills))
	for name := range snap.Fills {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "fill %s = %s\n", name, palette.NameOf(snap.Fills[name]))
	}
	fmt.Fprintf(w, "progress: %d/%d matched, %d filled\n", snap.Progress.Matched, snap.Progress.Total, snap.Progress.Filled)
	if res, ok := s.LastRound(); ok {
		fmt.Fprintf(w, "round: %s\n", res)
	}
}
