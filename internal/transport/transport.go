// Package transport delivers protocol lines from the joystick to the app.
// A Transport reads on its own goroutine and hands complete lines over a
// channel; consumers never touch the underlying port.
package transport

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

var ErrNoPort = errors.New("no serial port found")

// QueueSize is the capacity of the line channel.
const QueueSize = 256

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

type Transport interface {
	Start(ctx context.Context) error
	Stop() error
	// Lines is closed when the transport stops or its source ends.
	Lines() <-chan string
}

// pump reads newline-terminated lines from r and sends them on out until r
// fails or ctx is done. Invalid UTF-8 is replaced rather than rejected, and
// a trailing partial line at EOF is still delivered.
func pump(ctx context.Context, r io.Reader, out chan<- string) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.ToValidUTF8(strings.TrimRight(line, "\r\n"), "�")
			if line != "" {
				select {
				case out <- line:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
