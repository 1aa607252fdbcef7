package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rook-computer/joypaint/internal/render"
	"github.com/rook-computer/joypaint/internal/state"
	"github.com/rook-computer/joypaint/internal/transport"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// AppHost is implemented by the host application.
// Screens call Exit to request termination and Connected once the joystick
// link is up.
type AppHost interface {
	Exit(err error)
	Connected()
}

// ConnectScreen is shown while the joystick link is brought up.
// It retries the transport until it starts or the timeout passes.
type ConnectScreen struct {
	Transport transport.Transport
	Logger    Logger
	Host      AppHost

	TimeoutSeconds int
	RetryDelay     time.Duration

	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	attempts int
	lastErr  error
}

func NewConnectScreen(t transport.Transport, logger Logger, host AppHost) *ConnectScreen {
	return &ConnectScreen{
		Transport:      t,
		Logger:         logger,
		Host:           host,
		TimeoutSeconds: 30,
		RetryDelay:     time.Second,
	}
}

func (s *ConnectScreen) Start(ctx context.Context) error {
	if s.Transport == nil {
		return errors.New("no transport configured")
	}
	if s.Host == nil {
		return errors.New("no app host configured")
	}

	screenCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		deadline := time.Now().Add(time.Duration(s.TimeoutSeconds) * time.Second)
		for {
			err := s.Transport.Start(ctx)
			s.record(err)
			if err == nil {
				s.Host.Connected()
				return
			}
			if s.Logger != nil {
				s.Logger.Errorf("transport", "connect failed: %v", err)
			}
			if !time.Now().Before(deadline) {
				s.Host.Exit(fmt.Errorf("joystick not connected after %ds: %w", s.TimeoutSeconds, err))
				return
			}

			select {
			case <-screenCtx.Done():
				return
			case <-time.After(s.RetryDelay):
				if s.Logger != nil {
					s.Logger.Infof("app", "waiting for joystick...")
				}
			}
		}
	}()

	return nil
}

func (s *ConnectScreen) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	s.lastErr = err
}

func (s *ConnectScreen) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Wait blocks until the connect loop has finished.
func (s *ConnectScreen) Wait() {
	if s.done != nil {
		<-s.done
	}
}

func (s *ConnectScreen) Draw(r render.Drawer, st state.State) {
	s.mu.Lock()
	attempts, lastErr := s.attempts, s.lastErr
	s.mu.Unlock()

	r.FillBackground(background)
	title := render.TextStyle{Color: textColor, Size: 32}
	r.DrawTextCentered("connecting to joystick", title)

	if attempts > 1 && lastErr != nil {
		w, h := r.Size()
		m := r.MeasureText("connecting to joystick", title)
		detail := fmt.Sprintf("attempt %d: %v", attempts, lastErr)
		r.DrawText(detail, w/2, h/2+m.Height, render.TextStyle{Color: mutedColor, Size: 14, Align: render.TextAlignCenter})
	}
}
