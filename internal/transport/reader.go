package transport

import (
	"context"
	"io"
	"sync"
)

// ReaderTransport serves lines from any io.Reader, such as stdin or a
// script file for the simulator.
type ReaderTransport struct {
	r      io.Reader
	logger Logger
	lines  chan string

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewReaderTransport(r io.Reader, logger Logger) *ReaderTransport {
	if logger == nil {
		logger = noopLogger{}
	}
	return &ReaderTransport{r: r, logger: logger, lines: make(chan string, QueueSize)}
}

func (t *ReaderTransport) Start(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	go func() {
		defer close(t.lines)
		if err := pump(ctx, t.r, t.lines); err != nil && ctx.Err() == nil {
			t.logger.Errorf("transport", "read: %v", err)
		}
	}()
	return nil
}

// Stop cancels delivery. A reader blocked in Read is not interrupted; close
// the underlying source for that.
func (t *ReaderTransport) Stop() error {
	t.mu.Lock()
	cancel := t.cancel
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	return nil
}

func (t *ReaderTransport) Lines() <-chan string { return t.lines }
