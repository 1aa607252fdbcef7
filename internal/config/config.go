// Package config resolves runtime settings. Later sources win: built-in
// defaults, then a .env file, then JOYPAINT_* environment variables, then
// command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/rook-computer/joypaint/internal/joystick"
	"github.com/rook-computer/joypaint/internal/picture"
	"github.com/rook-computer/joypaint/internal/transport"
)

const (
	EnvFile           = "JOYPAINT_ENV_FILE"
	EnvPort           = "JOYPAINT_PORT"
	EnvBaud           = "JOYPAINT_BAUD"
	EnvDebug          = "JOYPAINT_DEBUG"
	EnvStdioLog       = "JOYPAINT_STDIO_LOG"
	EnvFBDevice       = "JOYPAINT_FB_DEVICE"
	EnvFrameRate      = "JOYPAINT_FPS"
	EnvConnectTimeout = "JOYPAINT_CONNECT_TIMEOUT"
	EnvMode           = "JOYPAINT_MODE"
	EnvPicture        = "JOYPAINT_PICTURE"
	EnvCenterX        = "JOYPAINT_CENTER_X"
	EnvCenterY        = "JOYPAINT_CENTER_Y"
	EnvDeadZone       = "JOYPAINT_DEAD_ZONE"
	EnvSpeedDivider   = "JOYPAINT_SPEED_DIVIDER"
	EnvMaxSpeed       = "JOYPAINT_MAX_SPEED"
	EnvRound          = "JOYPAINT_ROUND"

	defaultEnvFile = ".env"
)

// Config contains everything the device binary needs to run.
type Config struct {
	DisplayWidth  int
	DisplayHeight int
	CanvasWidth   int
	CanvasHeight  int

	PortName string // empty means discover
	BaudRate int

	FrameRate      int
	ConnectTimeout time.Duration
	FBDevice       string

	// Round is the length of a timed round; 0 disables timed rounds.
	Round time.Duration

	Debug    bool
	StdioLog string

	Mode        joystick.Mode
	Picture     picture.Picture
	Calibration joystick.Calibration
}

func Default() Config {
	return Config{
		DisplayWidth:   1000,
		DisplayHeight:  700,
		CanvasWidth:    600,
		CanvasHeight:   600,
		BaudRate:       transport.DefaultBaudRate,
		FrameRate:      60,
		ConnectTimeout: 30 * time.Second,
		FBDevice:       "/dev/fb0",
		Mode:           joystick.ModeAbsolute,
		Picture:        picture.Human,
		Calibration:    joystick.DefaultCalibration(),
	}
}

// Load resolves the full configuration. Callers may register extra flags on
// flags before calling; Load parses args into flags.
func Load(flags *flag.FlagSet, args []string) (Config, error) {
	return load(flags, args, os.LookupEnv)
}

func load(flags *flag.FlagSet, args []string, lookup func(string) (string, bool)) (Config, error) {
	lookup, err := envWithFile(lookup)
	if err != nil {
		return Config{}, err
	}
	cfg, err := FromEnv(Default(), lookup)
	if err != nil {
		return Config{}, err
	}
	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envWithFile layers the .env file under the process environment. A missing
// default file is fine; a missing file named by JOYPAINT_ENV_FILE is not.
func envWithFile(lookup func(string) (string, bool)) (func(string) (string, bool), error) {
	path, explicit := lookup(EnvFile)
	explicit = explicit && path != ""
	if !explicit {
		path = defaultEnvFile
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return lookup, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// FromEnv overrides fields of base with any JOYPAINT_* variables found.
func FromEnv(base Config, lookup func(string) (string, bool)) (Config, error) {
	cfg := base
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvPort); ok {
		cfg.PortName = v
	}
	if v, ok := get(EnvStdioLog); ok {
		cfg.StdioLog = v
	}
	if v, ok := get(EnvFBDevice); ok {
		cfg.FBDevice = v
	}
	if v, ok := get(EnvDebug); ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, v, err)
		}
		cfg.Debug = parsed
	}
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvConnectTimeout, &cfg.ConnectTimeout},
		{EnvRound, &cfg.Round},
	}
	for _, field := range durations {
		if v, ok := get(field.key); ok {
			parsed, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s must be a duration (got %q): %w", field.key, v, err)
			}
			*field.dst = parsed
		}
	}
	if v, ok := get(EnvMode); ok {
		mode, err := joystick.ParseMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMode, err)
		}
		cfg.Mode = mode
	}
	if v, ok := get(EnvPicture); ok {
		p, err := picture.Parse(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPicture, err)
		}
		cfg.Picture = p
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvBaud, &cfg.BaudRate},
		{EnvFrameRate, &cfg.FrameRate},
		{EnvCenterX, &cfg.Calibration.X.Center},
		{EnvCenterY, &cfg.Calibration.Y.Center},
	}
	for _, field := range ints {
		if v, ok := get(field.key); ok {
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", field.key, v, err)
			}
			*field.dst = parsed
		}
	}
	if v, ok := get(EnvDeadZone); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvDeadZone, v, err)
		}
		cfg.Calibration.X.DeadZone = parsed
		cfg.Calibration.Y.DeadZone = parsed
	}

	floats := []struct {
		key  string
		dstX *float64
		dstY *float64
	}{
		{EnvSpeedDivider, &cfg.Calibration.X.SpeedDivider, &cfg.Calibration.Y.SpeedDivider},
		{EnvMaxSpeed, &cfg.Calibration.X.MaxSpeed, &cfg.Calibration.Y.MaxSpeed},
	}
	for _, field := range floats {
		if v, ok := get(field.key); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return Config{}, fmt.Errorf("%s must be a number (got %q): %w", field.key, v, err)
			}
			*field.dstX, *field.dstY = parsed, parsed
		}
	}
	return cfg, nil
}

// RegisterFlags binds flags to c, using the current values as defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.PortName, "port", c.PortName, "serial port of the joystick board (empty: auto-detect); also "+EnvPort)
	flags.IntVar(&c.BaudRate, "baud", c.BaudRate, "serial baud rate; also "+EnvBaud)
	flags.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging to ./joypaint-debug.log; also "+EnvDebug)
	flags.StringVar(&c.StdioLog, "stdio-log", c.StdioLog, "redirect stdout+stderr (including panics) to this file; also "+EnvStdioLog)
	flags.StringVar(&c.FBDevice, "fb", c.FBDevice, "framebuffer device; also "+EnvFBDevice)
	flags.IntVar(&c.FrameRate, "fps", c.FrameRate, "frames per second; also "+EnvFrameRate)
	flags.DurationVar(&c.ConnectTimeout, "connect-timeout", c.ConnectTimeout, "give up if the joystick is not connected in time (at least 1s); also "+EnvConnectTimeout)
	flags.DurationVar(&c.Round, "round", c.Round, "play timed rounds of this length, e.g. 90s (0: untimed); also "+EnvRound)
	flags.Func("mode", "joystick mode: absolute or centered (default "+c.Mode.String()+"); also "+EnvMode, func(v string) error {
		mode, err := joystick.ParseMode(v)
		if err != nil {
			return err
		}
		c.Mode = mode
		return nil
	})
	flags.Func("picture", "picture to start with: human or flower (default "+c.Picture.String()+"); also "+EnvPicture, func(v string) error {
		p, err := picture.Parse(v)
		if err != nil {
			return err
		}
		c.Picture = p
		return nil
	})
	flags.Func("dead-zone", "joystick dead zone in raw units (both axes); also "+EnvDeadZone, func(v string) error {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Calibration.X.DeadZone = parsed
		c.Calibration.Y.DeadZone = parsed
		return nil
	})
}

func (c Config) Validate() error {
	if c.DisplayWidth <= 0 || c.DisplayHeight <= 0 {
		return fmt.Errorf("display size must be positive (got %dx%d)", c.DisplayWidth, c.DisplayHeight)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 || c.CanvasWidth > c.DisplayWidth || c.CanvasHeight > c.DisplayHeight {
		return fmt.Errorf("canvas %dx%d must fit the %dx%d display", c.CanvasWidth, c.CanvasHeight, c.DisplayWidth, c.DisplayHeight)
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be positive (got %d)", c.BaudRate)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be positive (got %d)", c.FrameRate)
	}
	if c.ConnectTimeout < time.Second {
		return fmt.Errorf("connect timeout must be at least 1s (got %s)", c.ConnectTimeout)
	}
	if c.Round < 0 {
		return fmt.Errorf("round length must not be negative (got %s)", c.Round)
	}
	if err := c.Calibration.Validate(); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}
	return nil
}
