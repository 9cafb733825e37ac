package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/andrescamacho/satisplanner-go/internal/application/common"
)

// ConsoleNotifier writes notifications to a stream, one line per event.
type ConsoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stderr.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{out: os.Stderr}
}

// NewConsoleNotifierTo creates a notifier writing to the given stream.
func NewConsoleNotifierTo(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

// Notify writes the notification as a single line.
func (n *ConsoleNotifier) Notify(notification common.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "[%s] %s\n", notification.Severity, notification.Message)
}
