package notify

//go:generate mockgen -destination=mock/mock_notifier.go -package=mocknotify -source=notifier.go

import (
	"context"
	"log"
)

// Level is the severity of a user-facing notice
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Notifier delivers user-facing notices. It is fire-and-forget: delivery
// failures are logged by implementations, never returned.
type Notifier interface {
	Notify(ctx context.Context, level Level, message string)
}

// LogNotifier writes notices to the standard logger
type LogNotifier struct{}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notice
func (n *LogNotifier) Notify(_ context.Context, level Level, message string) {
	log.Printf("Notify [%s]: %s", level, message)
}

// Multi fans a notice out to several notifiers
type Multi []Notifier

// Notify forwards to every notifier in order
func (m Multi) Notify(ctx context.Context, level Level, message string) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, level, message)
		}
	}
}
