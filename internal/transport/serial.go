package transport

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.bug.st/serial"
)

const DefaultBaudRate = 115200

type SerialConfig struct {
	// PortName is opened directly when set; otherwise Discover picks one.
	PortName string
	BaudRate int
}

// SerialTransport reads protocol lines from the joystick board.
type SerialTransport struct {
	cfg    SerialConfig
	logger Logger
	lines  chan string

	// open and discover are replaced in tests.
	open     func(name string, mode *serial.Mode) (serial.Port, error)
	discover func() ([]string, error)

	mu      sync.Mutex
	port    serial.Port
	name    string
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewSerialTransport(cfg SerialConfig, logger Logger) *SerialTransport {
	if logger == nil {
		logger = noopLogger{}
	}
	if cfg.BaudRate <= 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	return &SerialTransport{
		cfg:      cfg,
		logger:   logger,
		lines:    make(chan string, QueueSize),
		open:     serial.Open,
		discover: Discover,
	}
}

// Start opens the port and begins reading. It may be called again after a
// failed attempt; once reading has started further calls are no-ops.
func (t *SerialTransport) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return errors.New("transport stopped")
	}
	if t.port != nil {
		return nil
	}

	port, name, err := t.connect()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	t.port, t.name = port, name
	t.cancel = cancel
	t.done = make(chan struct{})
	t.logger.Infof("transport", "connected to %s at %d baud", name, t.cfg.BaudRate)

	go func() {
		defer close(t.done)
		defer close(t.lines)
		err := pump(ctx, port, t.lines)
		t.mu.Lock()
		stopped := t.stopped
		t.mu.Unlock()
		if err != nil && !stopped && ctx.Err() == nil {
			t.logger.Errorf("transport", "read %s: %v", name, err)
		}
	}()
	return nil
}

func (t *SerialTransport) connect() (serial.Port, string, error) {
	mode := &serial.Mode{BaudRate: t.cfg.BaudRate}
	if t.cfg.PortName != "" {
		port, err := t.open(t.cfg.PortName, mode)
		if err != nil {
			return nil, "", fmt.Errorf("open %s: %w", t.cfg.PortName, err)
		}
		return port, t.cfg.PortName, nil
	}

	candidates, err := t.discover()
	if err != nil {
		return nil, "", fmt.Errorf("discover ports: %w", err)
	}
	var errs []error
	for _, name := range candidates {
		port, err := t.open(name, mode)
		if err == nil {
			return port, name, nil
		}
		errs = append(errs, fmt.Errorf("open %s: %w", name, err))
	}
	if len(errs) == 0 {
		return nil, "", ErrNoPort
	}
	return nil, "", fmt.Errorf("%w: %w", ErrNoPort, errors.Join(errs...))
}

// Stop closes the port, which unblocks the reader goroutine.
func (t *SerialTransport) Stop() error {
	t.mu.Lock()
	t.stopped = true
	port, done, cancel := t.port, t.done, t.cancel
	t.mu.Unlock()
	if port == nil {
		return nil
	}
	cancel()
	err := port.Close()
	<-done
	return err
}

func (t *SerialTransport) Lines() <-chan string { return t.lines }

// PortName is the port in use, empty until Start succeeds.
func (t *SerialTransport) PortName() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.name
}
