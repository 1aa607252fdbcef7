package state

import (
	"image/color"
	"testing"

	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func TestFillThenQuery(t *testing.T) {
	fs := NewFillState(picture.Human)
	fs.Fill("head", red)

	got, ok := fs.Color("head")
	require.True(t, ok)
	assert.Equal(t, red, got)

	fs.Fill("head", red)
	assert.Equal(t, 1, fs.Len())

	fs.Fill("head", blue)
	got, _ = fs.Color("head")
	assert.Equal(t, blue, got)
}

func TestClear(t *testing.T) {
	fs := NewFillState(picture.Human)
	fs.Fill("body", red)

	assert.True(t, fs.Clear("body"))
	_, ok := fs.Color("body")
	assert.False(t, ok)

	assert.False(t, fs.Clear("body"), "clearing an unfilled region is a no-op")
	assert.Zero(t, fs.Len())
}

func TestClearAllAndReset(t *testing.T) {
	fs := NewFillState(picture.Human)
	fs.Fill("head", red)
	fs.Fill("body", blue)

	fs.ClearAll()
	assert.Empty(t, fs.Snapshot())
	assert.Equal(t, picture.Human, fs.Picture())

	fs.Fill("head", red)
	fs.ResetForPicture(picture.Flower)
	assert.Empty(t, fs.Snapshot())
	assert.Equal(t, picture.Flower, fs.Picture())
}

func TestFillStoresNamesAsGiven(t *testing.T) {
	fs := NewFillState(picture.Human)
	fs.Fill("stem", red)

	got, ok := fs.Color("stem")
	require.True(t, ok)
	assert.Equal(t, red, got)
	assert.Equal(t, picture.Progress{Total: 6}, picture.Score(fs.Picture(), fs.Snapshot()),
		"names outside the picture do not count towards progress")

	fs.ResetForPicture(picture.Flower)
	assert.Zero(t, fs.Len())
}

func TestSnapshotIsACopy(t *testing.T) {
	fs := NewFillState(picture.Human)
	fs.Fill("head", red)

	snap := fs.Snapshot()
	snap["body"] = blue
	delete(snap, "head")

	_, ok := fs.Color("head")
	assert.True(t, ok)
	_, ok = fs.Color("body")
	assert.False(t, ok)
}

func TestFeedbackKeepsNewest(t *testing.T) {
	fb := NewFeedback(2)
	assert.Equal(t, "", fb.Latest())
	assert.Nil(t, fb.Messages())

	fb.Push("one")
	fb.Push("two")
	fb.Push("three")
	assert.Equal(t, "three", fb.Latest())
	assert.Equal(t, []string{"two", "three"}, fb.Messages())

	disabled := NewFeedback(0)
	disabled.Push("ignored")
	assert.Equal(t, "", disabled.Latest())
}
