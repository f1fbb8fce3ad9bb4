package events

import (
	"time"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
)

// EventType represents the type of pool event
type EventType string

// Event is the base interface for all events on the bus
type Event interface {
	GetID() string
	GetType() EventType
	GetActorID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	ID        string
	Type      EventType
	ActorID   string
	Cancelled bool
}

func (e *BaseEvent) GetID() string      { return e.ID }
func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetActorID() string { return e.ActorID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// PoolEvent is emitted after a change to a character's pool has been persisted
type PoolEvent struct {
	BaseEvent

	// Color is empty for changes spanning every color (rest, reconfiguration)
	Color mana.ColorKey

	// Amount is the number of slots spent or regenerated
	Amount int

	// Index is the toggled slot, -1 when not applicable
	Index int

	// State is the normalized pool after the write
	State mana.PoolState

	OccurredAt time.Time
}
