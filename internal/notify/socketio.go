package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/sdfc/internal/config"
	"github.com/vk/sdfc/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// SocketIO emits events to a socket.io server over a websocket. Every Notify
// call opens its own connection and closes it afterwards.
type SocketIO struct {
	cfg config.Notify
}

func NewSocketIO(cfg config.Notify) *SocketIO {
	return &SocketIO{cfg: cfg}
}

// Notify connects, emits the configured event with ev's payload and
// disconnects. It gives up after the configured timeout.
func (s *SocketIO) Notify(ctx context.Context, ev Event) error {
	logger := ctxlog.FromContext(ctx).With("url", s.cfg.URL, "event", s.cfg.Event)

	parsedURL, err := url.Parse(s.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse notify URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("notify URL %q must include scheme and host", s.cfg.URL)
	}

	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))
	opts.SetReconnection(false)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(s.namespace(), opts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to viewer.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	logger.Debug("Connecting to viewer...")
	io.Connect()
	defer io.Disconnect()

	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		return fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	if err := io.Emit(s.cfg.Event, ev.Payload()); err != nil {
		return fmt.Errorf("failed to emit %q: %w", s.cfg.Event, err)
	}
	logger.Info("Viewer notified.", "scene", ev.Scene, "artifacts", len(ev.Artifacts))
	return nil
}

func (s *SocketIO) namespace() string {
	if s.cfg.Namespace == "" {
		return "/"
	}
	return s.cfg.Namespace
}
