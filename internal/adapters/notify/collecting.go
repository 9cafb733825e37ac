package notify

import (
	"sync"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
)

// CollectingNotifier buffers notifications in memory. The pipeline uses it to
// gather per-step warnings before emitting one aggregated alert; tests use it
// to assert on emitted warnings.
type CollectingNotifier struct {
	mu            sync.Mutex
	notifications []common.Notification
}

// NewCollectingNotifier creates an empty collector.
func NewCollectingNotifier() *CollectingNotifier {
	return &CollectingNotifier{}
}

// Notify appends the notification to the buffer.
func (n *CollectingNotifier) Notify(notification common.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification)
}

// Drain returns the buffered notifications and clears the buffer.
func (n *CollectingNotifier) Drain() []common.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	drained := n.notifications
	n.notifications = nil
	return drained
}

// Notifications returns a copy of the buffer without clearing it.
func (n *CollectingNotifier) Notifications() []common.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]common.Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}
