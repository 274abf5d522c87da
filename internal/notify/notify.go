// Package notify tells a running viewer that a scene's shaders were rebuilt.
package notify

import (
	"context"

	"github.com/vk/sdfc/internal/config"
)

// Event describes one compiled scene.
type Event struct {
	Scene     string
	Source    string
	Artifacts []string
	Failed    []string
}

// Payload is the event body sent over the wire.
func (e Event) Payload() map[string]any {
	artifacts := e.Artifacts
	if artifacts == nil {
		artifacts = []string{}
	}
	failed := e.Failed
	if failed == nil {
		failed = []string{}
	}
	return map[string]any{
		"scene":     e.Scene,
		"source":    e.Source,
		"artifacts": artifacts,
		"failed":    failed,
	}
}

// Notifier delivers events.
type Notifier interface {
	Notify(ctx context.Context, ev Event) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) error { return nil }

// New returns a socket.io notifier for cfg, or Nop when no URL is set.
func New(cfg config.Notify) Notifier {
	if cfg.URL == "" {
		return Nop{}
	}
	return NewSocketIO(cfg)
}
