package paint

import (
	"fmt"
	"time"

	"github.com/rook-computer/joypaint/internal/picture"
)

// RoundResult summarises a finished timed round.
type RoundResult struct {
	Success     bool // the picture was completed before time ran out
	Duration    time.Duration
	Elapsed     time.Duration
	Progress    picture.Progress
	FillActions int
}

// CompletionPercent is the share of filled regions in [0, 100].
func (r RoundResult) CompletionPercent() float64 {
	if r.Progress.Total == 0 {
		return 0
	}
	return float64(r.Progress.Filled) / float64(r.Progress.Total) * 100
}

func (r RoundResult) ActionsPerMinute() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.FillActions) / r.Elapsed.Minutes()
}

func (r RoundResult) String() string {
	head := "time's up"
	if r.Success {
		head = "done in " + clockString(r.Elapsed)
	}
	return fmt.Sprintf("%s: %d/%d regions filled (%.0f%%), %d matched, %d fills (%.1f/min)",
		head, r.Progress.Filled, r.Progress.Total, r.CompletionPercent(),
		r.Progress.Matched, r.FillActions, r.ActionsPerMinute())
}

// round tracks one timed attempt at a picture. It starts on the first tick
// so time spent waiting for the joystick does not count.
type round struct {
	duration    time.Duration
	started     time.Time
	fillActions int
	result      *RoundResult
}

func (r *round) running() bool { return !r.started.IsZero() && r.result == nil }

func (r *round) start(now time.Time) {
	r.started = now
	r.fillActions = 0
	r.result = nil
}

func (r *round) remaining(now time.Time) time.Duration {
	if r.started.IsZero() {
		return r.duration
	}
	if r.result != nil {
		return max(r.duration-r.result.Elapsed, 0)
	}
	return max(r.duration-now.Sub(r.started), 0)
}

func (r *round) finish(now time.Time, success bool, progress picture.Progress) RoundResult {
	elapsed := min(now.Sub(r.started), r.duration)
	res := RoundResult{
		Success:     success,
		Duration:    r.duration,
		Elapsed:     elapsed,
		Progress:    progress,
		FillActions: r.fillActions,
	}
	r.result = &res
	return res
}

// clockString formats d as mm:ss, truncated to whole seconds.
func clockString(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
