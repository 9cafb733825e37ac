package common

import "time"

// Severity classifies a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a discrete user-facing event: clamped-amount warnings,
// truncated-overclock warnings, validation summaries.
type Notification struct {
	Message  string
	Severity Severity

	// Duration is an optional display hint; zero means the sink decides.
	Duration time.Duration
}

// Notifier is the notification sink the planner produces to. Implementations
// must not block; the planner never waits for acknowledgement.
type Notifier interface {
	Notify(n Notification)
}

// NoopNotifier discards all notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(n Notification) {}

// Warn is a convenience for emitting a warning without a duration hint.
func Warn(notifier Notifier, message string) {
	if notifier == nil {
		return
	}
	notifier.Notify(Notification{Message: message, Severity: SeverityWarning})
}
