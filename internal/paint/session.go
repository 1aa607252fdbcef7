// Package paint holds the coloring-book core: it owns the active picture,
// its fills, the cursor and the selected color, and applies joystick events
// to them. A Session has a single owner and is not safe for concurrent use.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/rook-computer/joypaint/internal/joystick"
	"github.com/rook-computer/joypaint/internal/palette"
	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/rook-computer/joypaint/internal/protocol"
	"github.com/rook-computer/joypaint/internal/render/layout"
	"github.com/rook-computer/joypaint/internal/state"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// debugLogger is implemented by loggers that can emit per-event detail.
type debugLogger interface {
	Debugf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

const (
	component           = "session"
	defaultFeedbackSize = 8
)

type Options struct {
	Screen      layout.Screen
	Calibration joystick.Calibration
	Mode        joystick.Mode
	Picture     picture.Picture
	Logger      Logger

	// FeedbackSize bounds the message history; 0 means the default.
	FeedbackSize int

	// Round enables timed rounds of this length; 0 disables them.
	Round time.Duration
	// Now is the clock for timed rounds; nil means time.Now.
	Now func() time.Time
}

type Session struct {
	screen         layout.Screen
	scaleX, scaleY float64

	fills      *state.FillState
	cursor     *joystick.Normalizer
	colorIndex int
	feedback   *state.Feedback
	logger     Logger

	now       func() time.Time
	round     *round
	lastRound *RoundResult
}

func NewSession(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	if opts.FeedbackSize <= 0 {
		opts.FeedbackSize = defaultFeedbackSize
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	display := opts.Screen.Display
	bounds := joystick.Bounds{
		MinX: float64(display.Min.X),
		MinY: float64(display.Min.Y),
		MaxX: float64(display.Max.X - 1),
		MaxY: float64(display.Max.Y - 1),
	}
	homeX, homeY := opts.Screen.CanvasCenter()
	reachX := float64(opts.Screen.Canvas.Dx()) / 2
	reachY := float64(opts.Screen.Canvas.Dy()) / 2

	s := &Session{
		screen:     opts.Screen,
		fills:      state.NewFillState(opts.Picture),
		cursor:     joystick.NewNormalizer(opts.Calibration, opts.Mode, bounds, homeX, homeY, reachX, reachY),
		colorIndex: palette.DefaultIndex,
		feedback:   state.NewFeedback(opts.FeedbackSize),
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if opts.Round > 0 {
		s.round = &round{duration: opts.Round}
	}
	s.scaleX, s.scaleY = opts.Screen.CanvasScale(picture.ReferenceSize)
	return s
}

// Drain applies the lines that were waiting on lines when it was called, in
// arrival order, and returns how many it consumed. Lines arriving meanwhile
// are left for the next call. open is false once lines has been closed.
// It never blocks.
func (s *Session) Drain(lines <-chan string) (n int, open bool) {
	pending := len(lines)
	for n < pending {
		line, ok := <-lines
		if !ok {
			return n, false
		}
		s.HandleLine(line)
		n++
	}
	if pending == 0 {
		// An empty closed channel must still report closure.
		select {
		case line, ok := <-lines:
			if !ok {
				return 0, false
			}
			s.HandleLine(line)
			n++
		default:
		}
	}
	return n, true
}

// HandleLine parses one protocol line and applies it. Malformed lines and
// unknown buttons are dropped.
func (s *Session) HandleLine(line string) {
	ev, err := protocol.Parse(line)
	if err != nil {
		if errors.Is(err, protocol.ErrMalformedLine) || errors.Is(err, protocol.ErrUnknownButton) {
			s.debugf("dropped: %v", err)
			return
		}
		s.logger.Errorf(component, "parse: %v", err)
		return
	}
	s.Apply(ev)
}

func (s *Session) Apply(ev protocol.Event) {
	switch e := ev.(type) {
	case protocol.ButtonEvent:
		c := s.Cursor()
		s.debugf("%s at (%.1f, %.1f)", protocol.Format(e), c.X, c.Y)
		s.Press(e.Button)
	case protocol.AxisEvent:
		s.Move(e.X, e.Y)
	}
}

// Press runs the command bound to b.
func (s *Session) Press(b protocol.Button) {
	switch b {
	case protocol.ButtonA, protocol.ButtonD:
		s.SelectColorAtCursor()
	case protocol.ButtonB:
		s.FillAtCursor()
	case protocol.ButtonC:
		s.ClearAtCursor()
	case protocol.ButtonE:
		s.NextPicture()
	case protocol.ButtonF:
		s.ClearAll()
	}
}

// Move applies one raw joystick sample to the cursor.
func (s *Session) Move(rawX, rawY int) {
	s.cursor.Apply(rawX, rawY)
}

// SelectColorAtCursor picks the palette swatch under the cursor, if any.
func (s *Session) SelectColorAtCursor() {
	idx, ok := s.screen.SwatchAt(s.cursor.Position())
	if !ok {
		return
	}
	s.colorIndex = idx
	entry := palette.At(idx)
	s.notify("selected %s", entry.Name)
}

// SelectColor picks a palette entry by index.
func (s *Session) SelectColor(idx int) bool {
	if idx < 0 || idx >= palette.Len() {
		return false
	}
	s.colorIndex = idx
	return true
}

// FillAtCursor fills the region under the cursor with the selected color.
func (s *Session) FillAtCursor() {
	region, ok := s.regionUnderCursor()
	if !ok {
		return
	}
	c := s.SelectedColor()
	s.fills.Fill(region, c)
	s.notify("filled %s with %s", region, palette.NameOf(c))
	timed := s.round != nil && s.round.running()
	if timed {
		s.round.fillActions++
	}
	if s.Progress().Complete() {
		s.notify("%s complete!", s.fills.Picture().DisplayName())
		if timed {
			s.endRound(true)
		}
	}
}

// ClearAtCursor removes the fill of the region under the cursor.
func (s *Session) ClearAtCursor() {
	region, ok := s.regionUnderCursor()
	if !ok {
		return
	}
	if !s.fills.Clear(region) {
		s.notify("%s is already empty", region)
		return
	}
	s.notify("cleared %s", region)
}

// NextPicture switches to the next picture and starts it from scratch: no
// fills, cursor on the canvas centre, default color.
func (s *Session) NextPicture() {
	next := s.fills.Picture().Next()
	s.fills.ResetForPicture(next)
	s.cursor.Reset()
	s.colorIndex = palette.DefaultIndex
	s.notify("now coloring: %s", next.DisplayName())
	if s.round != nil {
		s.round = &round{duration: s.round.duration}
	}
}

// ClearAll drops every fill but keeps the picture.
func (s *Session) ClearAll() {
	s.fills.ClearAll()
	s.notify("canvas cleared")
}

// Tick advances the timed round: the first tick starts it and a tick past
// its deadline ends it. Without a round it does nothing.
func (s *Session) Tick() {
	if s.round == nil {
		return
	}
	now := s.now()
	switch {
	case s.round.started.IsZero():
		s.round.start(now)
		s.notify("round started: %s to color %s", clockString(s.round.duration), s.fills.Picture().DisplayName())
	case s.round.running() && now.Sub(s.round.started) >= s.round.duration:
		s.endRound(false)
	}
}

// LastRound returns the result of the most recently finished round.
func (s *Session) LastRound() (RoundResult, bool) {
	if s.lastRound == nil {
		return RoundResult{}, false
	}
	return *s.lastRound, true
}

func (s *Session) endRound(success bool) {
	res := s.round.finish(s.now(), success, s.Progress())
	s.lastRound = &res
	s.notify("%s", res)
}

// SetCursor moves the cursor directly (display pixels, clamped).
func (s *Session) SetCursor(x, y float64) { s.cursor.SetPosition(x, y) }

func (s *Session) Cursor() state.Cursor {
	x, y := s.cursor.Position()
	return state.Cursor{X: x, Y: y}
}

func (s *Session) Picture() picture.Picture { return s.fills.Picture() }

// Fills returns a copy of the current fill map.
func (s *Session) Fills() map[string]color.RGBA { return s.fills.Snapshot() }

func (s *Session) SelectedColor() color.RGBA { return palette.At(s.colorIndex).Color }

func (s *Session) ColorIndex() int { return s.colorIndex }

func (s *Session) Progress() picture.Progress {
	return picture.Score(s.fills.Picture(), s.fills.Snapshot())
}

// Screen returns the layout the session hit-tests against.
func (s *Session) Screen() layout.Screen { return s.screen }

// Messages returns the recent feedback, oldest first.
func (s *Session) Messages() []string { return s.feedback.Messages() }

// Snapshot captures the state the renderer needs for one frame.
func (s *Session) Snapshot() state.State {
	fills := s.fills.Snapshot()
	snap := state.State{
		Picture:    s.fills.Picture(),
		Fills:      fills,
		Cursor:     s.Cursor(),
		ColorIndex: s.colorIndex,
		Progress:   picture.Score(s.fills.Picture(), fills),
		Message:    s.feedback.Latest(),
	}
	if s.round != nil {
		snap.Timed = true
		snap.Remaining = s.round.remaining(s.now())
	}
	return snap
}

// regionUnderCursor resolves the cursor to a region of the active picture.
// Misses are reported to the user, not treated as errors.
func (s *Session) regionUnderCursor() (string, bool) {
	cx, cy, ok := s.screen.ToCanvas(s.cursor.Position())
	if !ok {
		s.notify("cursor is outside the picture")
		return "", false
	}
	region, ok := picture.HitTest(s.fills.Picture(), picture.Point{X: cx, Y: cy}, s.scaleX, s.scaleY)
	if !ok {
		s.notify("no region under cursor")
		return "", false
	}
	return region, true
}

func (s *Session) notify(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.feedback.Push(msg)
	s.logger.Infof(component, "%s", msg)
}

func (s *Session) debugf(format string, args ...interface{}) {
	if d, ok := s.logger.(debugLogger); ok {
		d.Debugf(component, format, args...)
	}
}
