//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// StartExitOnKeys watches Linux evdev devices under /dev/input/event* and
// invokes onExit once when ESC or F4 is pressed.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartExitOnKeys(ctx context.Context, logger logger, onExit func()) {
	if onExit == nil {
		return
	}

	tvSize, eventSize := inputEventLayout()

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for keyboard exit")
		}
		return
	}

	var once sync.Once
	triggerExit := func(code uint16) {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "%s pressed: exiting", keyName(code))
			}
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, tvSize, eventSize, triggerExit)
	}
}

// inputEventLayout returns the timeval size and the full input_event size
// for this architecture: input_event = timeval + u16 type + u16 code + s32 value.
func inputEventLayout() (tvSize, eventSize int) {
	tvSize = binary.Size(unix.Timeval{})
	eventSize = tvSize + 2 + 2 + 4
	if tvSize <= 0 {
		tvSize, eventSize = 16, 24
	}
	return tvSize, eventSize
}

func watchDevice(ctx context.Context, path string, tvSize, eventSize int, trigger func(uint16)) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		_, pollErr := unix.Poll(pollFds, 250)
		if pollErr != nil {
			if pollErr == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, readErr := unix.Read(fd, buf)
		if readErr != nil {
			if readErr == unix.EAGAIN || readErr == unix.EINTR {
				continue
			}
			return
		}

		if code, ok := findExitKey(buf[:n], tvSize, eventSize); ok {
			trigger(code)
			// Give the app a moment to unwind; then stop reading.
			time.Sleep(50 * time.Millisecond)
			return
		}
	}
}
