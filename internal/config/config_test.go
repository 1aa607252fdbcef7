package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/joypaint/internal/joystick"
	"github.com/rook-computer/joypaint/internal/picture"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func newFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("joypaint", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestDefaults(t *testing.T) {
	cfg, err := load(newFlags(), nil, env(nil))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, joystick.ModeAbsolute, cfg.Mode)
	assert.Equal(t, picture.Human, cfg.Picture)
	assert.Equal(t, 2048, cfg.Calibration.X.Center)
	assert.Equal(t, 100, cfg.Calibration.Y.DeadZone)
	assert.True(t, cfg.Calibration.Y.Invert)
}

func TestEnvOverridesDefaults(t *testing.T) {
	cfg, err := FromEnv(Default(), env(map[string]string{
		EnvPort:           "/dev/ttyACM0",
		EnvBaud:           "9600",
		EnvDebug:          "true",
		EnvConnectTimeout: "5s",
		EnvMode:           "centered",
		EnvPicture:        "flower",
		EnvCenterX:        "2000",
		EnvDeadZone:       "150",
		EnvMaxSpeed:       "4.5",
		EnvFrameRate:      "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyACM0", cfg.PortName)
	assert.Equal(t, 9600, cfg.BaudRate)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, joystick.ModeCentered, cfg.Mode)
	assert.Equal(t, picture.Flower, cfg.Picture)
	assert.Equal(t, 2000, cfg.Calibration.X.Center)
	assert.Equal(t, 2048, cfg.Calibration.Y.Center)
	assert.Equal(t, 150, cfg.Calibration.X.DeadZone)
	assert.Equal(t, 150, cfg.Calibration.Y.DeadZone)
	assert.Equal(t, 4.5, cfg.Calibration.Y.MaxSpeed)
	assert.Equal(t, 60, cfg.FrameRate, "empty values keep the default")
}

func TestEnvErrorsNameTheVariable(t *testing.T) {
	tests := map[string]string{
		EnvDebug:          "maybe",
		EnvBaud:           "fast",
		EnvConnectTimeout: "soon",
		EnvMode:           "diagonal",
		EnvPicture:        "cat",
		EnvSpeedDivider:   "x",
		EnvDeadZone:       "1.5",
		EnvRound:          "a minute",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(Default(), env(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(newFlags(), []string{"-baud", "57600", "-mode", "absolute", "-picture", "human", "-dead-zone", "50"},
		env(map[string]string{EnvBaud: "9600", EnvMode: "centered", EnvPicture: "flower"}))
	require.NoError(t, err)

	assert.Equal(t, 57600, cfg.BaudRate)
	assert.Equal(t, joystick.ModeAbsolute, cfg.Mode)
	assert.Equal(t, picture.Human, cfg.Picture)
	assert.Equal(t, 50, cfg.Calibration.X.DeadZone)
}

func TestExtraFlagsSurviveLoad(t *testing.T) {
	fs := newFlags()
	script := fs.String("script", "", "")
	_, err := load(fs, []string{"-script", "moves.txt", "-port", "/dev/null"}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, "moves.txt", *script)
}

func TestEnvFileSitsUnderEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "joypaint.env")
	require.NoError(t, os.WriteFile(path, []byte("JOYPAINT_PORT=/dev/ttyUSB9\nJOYPAINT_BAUD=38400\n"), 0o644))

	cfg, err := load(newFlags(), nil, env(map[string]string{EnvFile: path, EnvBaud: "19200"}))
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyUSB9", cfg.PortName)
	assert.Equal(t, 19200, cfg.BaudRate)
}

func TestMissingExplicitEnvFile(t *testing.T) {
	_, err := load(newFlags(), nil, env(map[string]string{EnvFile: filepath.Join(t.TempDir(), "nope.env")}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.FrameRate = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.CanvasWidth = 2000
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Calibration.X.SpeedDivider = 0
	assert.ErrorContains(t, bad.Validate(), "calibration")

	_, err := load(newFlags(), []string{"-fps", "0"}, env(nil))
	assert.Error(t, err)
}

func TestConnectTimeoutBelowOneSecondIsRejected(t *testing.T) {
	for _, value := range []string{"0", "500ms", "-5s"} {
		_, err := load(newFlags(), []string{"-connect-timeout", value}, env(nil))
		assert.ErrorContains(t, err, "connect timeout", value)
	}

	cfg, err := load(newFlags(), []string{"-connect-timeout", "1s"}, env(nil))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.ConnectTimeout)
}

func TestRoundLength(t *testing.T) {
	cfg, err := load(newFlags(), nil, env(nil))
	require.NoError(t, err)
	assert.Zero(t, cfg.Round, "rounds are untimed by default")

	cfg, err = load(newFlags(), nil, env(map[string]string{EnvRound: "90s"}))
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, cfg.Round)

	cfg, err = load(newFlags(), []string{"-round", "2m"}, env(map[string]string{EnvRound: "90s"}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Round)

	_, err = load(newFlags(), []string{"-round", "-1m"}, env(nil))
	assert.ErrorContains(t, err, "round length")
}
