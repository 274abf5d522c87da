package testutil

import (
	"context"
	"sync"

	"github.com/vk/sdfc/internal/notify"
)

// RecordingNotifier keeps every event it receives and returns Err.
type RecordingNotifier struct {
	Err error

	mu     sync.Mutex
	events []notify.Event
}

func (n *RecordingNotifier) Notify(_ context.Context, ev notify.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
	return n.Err
}

func (n *RecordingNotifier) Events() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.events...)
}
