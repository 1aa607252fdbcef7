package paint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/joypaint/internal/joystick"
	"github.com/rook-computer/joypaint/internal/palette"
	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/rook-computer/joypaint/internal/render/layout"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTimedSession(t *testing.T, clock *fakeClock, d time.Duration) *Session {
	t.Helper()
	return NewSession(Options{
		Screen:      layout.NewScreen(1000, 700, 600, 600, 200, palette.Len()),
		Calibration: joystick.DefaultCalibration(),
		Picture:     picture.Human,
		Round:       d,
		Now:         clock.Now,
	})
}

func TestRoundTimesOut(t *testing.T) {
	clock := newFakeClock()
	s := newTimedSession(t, clock, time.Minute)

	snap := s.Snapshot()
	assert.True(t, snap.Timed)
	assert.Equal(t, time.Minute, snap.Remaining, "the round waits for the first tick")

	s.Tick()
	assert.Equal(t, "round started: 01:00 to color Human", s.Snapshot().Message)

	clock.Advance(20 * time.Second)
	fillAt(t, s, 500, 290, yellowIndex)
	fillAt(t, s, 500, 440, redIndex)
	fillAt(t, s, 500, 440, blueIndex)
	assert.Equal(t, 40*time.Second, s.Snapshot().Remaining)

	clock.Advance(39 * time.Second)
	s.Tick()
	_, done := s.LastRound()
	assert.False(t, done)

	clock.Advance(5 * time.Second)
	s.Tick()
	res, done := s.LastRound()
	require.True(t, done)
	assert.False(t, res.Success)
	assert.Equal(t, time.Minute, res.Elapsed, "elapsed is capped at the round length")
	assert.Equal(t, picture.Progress{Matched: 2, Filled: 2, Total: 6}, res.Progress)
	assert.Equal(t, 3, res.FillActions)
	assert.InDelta(t, 33.3, res.CompletionPercent(), 0.1)
	assert.InDelta(t, 3.0, res.ActionsPerMinute(), 1e-9)
	assert.Equal(t, "time's up: 2/6 regions filled (33%), 2 matched, 3 fills (3.0/min)", s.Snapshot().Message)
	assert.Zero(t, s.Snapshot().Remaining)

	clock.Advance(time.Minute)
	s.Tick()
	fillAt(t, s, 410, 440, redIndex)
	res, _ = s.LastRound()
	assert.Equal(t, 3, res.FillActions, "fills after the round do not count")
}

func TestRoundCompletedInTime(t *testing.T) {
	clock := newFakeClock()
	s := newTimedSession(t, clock, 2*time.Minute)
	s.Tick()

	clock.Advance(30 * time.Second)
	fillAt(t, s, 500, 290, yellowIndex)
	fillAt(t, s, 500, 440, blueIndex)
	fillAt(t, s, 410, 440, redIndex)
	fillAt(t, s, 590, 440, redIndex)
	clock.Advance(12 * time.Second)
	fillAt(t, s, 476, 590, greenIndex)
	fillAt(t, s, 521, 590, greenIndex)

	res, done := s.LastRound()
	require.True(t, done)
	assert.True(t, res.Success)
	assert.Equal(t, 42*time.Second, res.Elapsed)
	assert.Equal(t, 6, res.FillActions)
	assert.Equal(t, float64(100), res.CompletionPercent())
	assert.Equal(t, "done in 00:42: 6/6 regions filled (100%), 6 matched, 6 fills (8.6/min)", s.Snapshot().Message)

	clock.Advance(5 * time.Minute)
	s.Tick()
	again, _ := s.LastRound()
	assert.Equal(t, res, again, "a finished round does not time out")
	assert.Equal(t, 78*time.Second, s.Snapshot().Remaining)
}

func TestNextPictureRestartsRound(t *testing.T) {
	clock := newFakeClock()
	s := newTimedSession(t, clock, time.Minute)
	s.Tick()
	clock.Advance(50 * time.Second)

	s.HandleLine("BTN:E")
	assert.Equal(t, time.Minute, s.Snapshot().Remaining)

	s.Tick()
	assert.Equal(t, "round started: 01:00 to color Flower", s.Snapshot().Message)
	clock.Advance(30 * time.Second)
	s.Tick()
	_, done := s.LastRound()
	assert.False(t, done)
	assert.Equal(t, 30*time.Second, s.Snapshot().Remaining)
}

func TestUntimedSessionIgnoresTicks(t *testing.T) {
	s := newTestSession(t)
	s.Tick()
	fillAt(t, s, 500, 290, redIndex)

	snap := s.Snapshot()
	assert.False(t, snap.Timed)
	assert.Zero(t, snap.Remaining)
	assert.Equal(t, "filled head with red", snap.Message)
	_, done := s.LastRound()
	assert.False(t, done)
}
