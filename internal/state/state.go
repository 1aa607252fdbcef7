package state

import (
	"image/color"
	"time"

	"github.com/rook-computer/joypaint/internal/picture"
)

// Cursor is a position in display pixels.
type Cursor struct {
	X, Y float64
}

// State is a read-only snapshot of everything a frame needs.
type State struct {
	Picture    picture.Picture
	Fills      map[string]color.RGBA
	Cursor     Cursor
	ColorIndex int
	Progress   picture.Progress
	Message    string

	// Timed is set while the session runs timed rounds; Remaining is the
	// time left in the current one.
	Timed     bool
	Remaining time.Duration
}

// FillState maps region names of the active picture to their fill color.
// A region without an entry is unfilled and renders as an outline only.
type FillState struct {
	picture picture.Picture
	fills   map[string]color.RGBA
}

func NewFillState(active picture.Picture) *FillState {
	return &FillState{picture: active, fills: make(map[string]color.RGBA)}
}

// Picture returns the active picture.
func (fs *FillState) Picture() picture.Picture { return fs.picture }

// Fill stores c for region, replacing any earlier color. Region names come
// from hit-testing the active picture and are stored as given.
func (fs *FillState) Fill(region string, c color.RGBA) {
	fs.fills[region] = c
}

// Clear removes the fill of region and reports whether there was one.
func (fs *FillState) Clear(region string) bool {
	if _, ok := fs.fills[region]; !ok {
		return false
	}
	delete(fs.fills, region)
	return true
}

func (fs *FillState) ClearAll() {
	clear(fs.fills)
}

// ResetForPicture makes next the active picture and drops every fill.
func (fs *FillState) ResetForPicture(next picture.Picture) {
	fs.ClearAll()
	fs.picture = next
}

// Color returns the fill of region, if any.
func (fs *FillState) Color(region string) (color.RGBA, bool) {
	c, ok := fs.fills[region]
	return c, ok
}

func (fs *FillState) Len() int { return len(fs.fills) }

// Snapshot copies the current fills. Iteration order is unspecified.
func (fs *FillState) Snapshot() map[string]color.RGBA {
	out := make(map[string]color.RGBA, len(fs.fills))
	for name, c := range fs.fills {
		out[name] = c
	}
	return out
}
