//go:build !linux

package system

import "context"

// StartExitOnKeys is a no-op off linux; use SIGINT to quit.
func StartExitOnKeys(ctx context.Context, logger logger, onExit func()) {
	if logger != nil {
		logger.Infof("input", "keyboard exit is only supported on linux")
	}
}
