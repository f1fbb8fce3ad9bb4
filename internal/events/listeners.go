package events

import (
	"log"
)

// PoolLoggerID identifies the listener returned by NewPoolLogger
const PoolLoggerID = "pool_logger"

// NewPoolLogger returns a listener that writes one line per pool event to
// logger, or to the standard logger when logger is nil. It runs after every
// listener with a lower order and never fails.
func NewPoolLogger(logger *log.Logger) *ListenerFunc {
	if logger == nil {
		logger = log.Default()
	}

	return &ListenerFunc{
		ListenerID: PoolLoggerID,
		Order:      1000,
		Fn: func(event Event) error {
			pe, ok := event.(*PoolEvent)
			if !ok {
				logger.Printf("EventBus: %s actor=%s id=%s", event.GetType(), event.GetActorID(), event.GetID())
				return nil
			}

			color := string(pe.Color)
			if color == "" {
				color = "*"
			}
			logger.Printf("EventBus: %s actor=%s color=%s amount=%d index=%d id=%s",
				pe.Type, pe.ActorID, color, pe.Amount, pe.Index, pe.ID)
			return nil
		},
	}
}
