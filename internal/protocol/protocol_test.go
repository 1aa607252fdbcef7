package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseButtons(t *testing.T) {
	for _, b := range Buttons {
		ev, err := Parse("BTN:" + string(b) + "\r\n")
		require.NoError(t, err)
		assert.Equal(t, ButtonEvent{Button: b}, ev)
	}
}

func TestParseUnknownButton(t *testing.T) {
	for _, line := range []string{"BTN:JOY", "BTN:", "BTN:a", "BTN:AB"} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrUnknownButton, line)
	}
}

func TestParseAxis(t *testing.T) {
	ev, err := Parse("X:2048,Y:1000,B:1")
	require.NoError(t, err)
	assert.Equal(t, AxisEvent{X: 2048, Y: 1000, Pressed: 1}, ev)

	ev, err = Parse("  X:0,Y:4095,B:0\n")
	require.NoError(t, err)
	assert.Equal(t, AxisEvent{X: 0, Y: 4095}, ev)
}

func TestParseMalformed(t *testing.T) {
	for _, line := range []string{
		"",
		"hello",
		"X:1,Y:2",
		"X:1,Y:2,B:3,extra",
		"X:-1,Y:2,B:0",
		"Y:1,X:2,B:0",
		"X:1, Y:2, B:0",
		"X:99999999999999999999999,Y:1,B:0",
	} {
		_, err := Parse(line)
		assert.ErrorIs(t, err, ErrMalformedLine, "%q", line)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "BTN:E", Format(ButtonEvent{Button: ButtonE}))
	assert.Equal(t, "X:1,Y:2,B:0", Format(AxisEvent{X: 1, Y: 2}))
	assert.Equal(t, "", Format(nil))
}
