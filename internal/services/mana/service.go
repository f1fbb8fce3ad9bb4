package mana

//go:generate mockgen -destination=mock/mock_service.go -package=mockmana -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/KirkDiggler/magic-mana-engine/internal/metrics"
	"github.com/KirkDiggler/magic-mana-engine/internal/notify"
	"github.com/KirkDiggler/magic-mana-engine/internal/repositories/pools"
	"github.com/KirkDiggler/magic-mana-engine/internal/uuid"
)

// Repository is an alias for the pool repository interface
type Repository = pools.Repository

// Service owns every character's mana pool: reads, lock-gated mutation,
// slot selection and the card and rest triggers
type Service interface {
	// Palette returns the colors this service manages, in display order
	Palette() mana.Palette

	// GetSlotConfig returns the capacity of every palette color
	GetSlotConfig(ctx context.Context, actorID string) (mana.SlotConfig, error)

	// SetSlotConfig stores new capacities and resizes the pool to match
	SetSlotConfig(ctx context.Context, actorID string, input map[mana.ColorKey]float64) (mana.SlotConfig, error)

	// GetState returns the normalized pool without writing
	GetState(ctx context.Context, actorID string) (mana.PoolState, error)

	// ToggleSlot flips one slot, subject to slot and bar locks
	ToggleSlot(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, index int) error

	// SetBarLocked locks or unlocks a whole bar (GM only)
	SetBarLocked(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, locked bool) error

	// SetSlotLocked locks or unlocks a single slot (GM only)
	SetSlotLocked(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, index int, locked bool) error

	// RegenerateOneForAll activates the lowest free slot of every unlocked bar
	RegenerateOneForAll(ctx context.Context, actorID string) ([]mana.ColorKey, error)

	// Spend deactivates amount slots of a color, all or nothing
	Spend(ctx context.Context, actorID string, color mana.ColorKey, amount int) (bool, error)

	// ActivateNext toggles on the first free slot of a bar
	ActivateNext(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey) (int, error)

	// DeactivateLast toggles off the last spendable slot of a bar
	DeactivateLast(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey) (int, error)

	// BarVisuals describes how every bar of the pool is drawn
	BarVisuals(ctx context.Context, actorID string, icons map[mana.ColorKey]string) ([]mana.BarVisual, error)

	// SpendFromCard pays for a card played to the table
	SpendFromCard(ctx context.Context, play *CardPlay) (bool, error)

	// LongRest applies the rest regeneration
	LongRest(ctx context.Context, actorID string) ([]mana.ColorKey, error)
}

// service implements the Service interface
type service struct {
	repository    Repository
	palette       mana.Palette
	notifier      notify.Notifier
	eventBus      *events.Bus
	metrics       *metrics.Recorder
	uuidGenerator uuid.Generator
	maxCapacity   int
	now           func() time.Time
	locks         *actorLocks
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository        // Required
	Palette       mana.Palette      // Optional, defaults to mana.DefaultPalette()
	Notifier      notify.Notifier   // Optional, defaults to a LogNotifier
	EventBus      *events.Bus       // Optional, no events when nil
	Metrics       *metrics.Recorder // Optional
	UUIDGenerator uuid.Generator    // Optional, will use default if nil
	MaxCapacity   int               // Optional, defaults to mana.DefaultMaxCapacity
	Clock         func() time.Time  // Optional, defaults to time.Now
}

// NewService creates a new mana service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.MaxCapacity < 0 {
		panic("max capacity cannot be negative")
	}

	svc := &service{
		repository:  cfg.Repository,
		palette:     cfg.Palette,
		notifier:    cfg.Notifier,
		eventBus:    cfg.EventBus,
		metrics:     cfg.Metrics,
		maxCapacity: cfg.MaxCapacity,
		now:         cfg.Clock,
		locks:       newActorLocks(),
	}

	if svc.maxCapacity == 0 {
		svc.maxCapacity = mana.DefaultMaxCapacity
	}
	if len(svc.palette) == 0 {
		svc.palette = mana.DefaultPalette()
	}
	if svc.notifier == nil {
		svc.notifier = notify.NewLogNotifier()
	}
	if svc.now == nil {
		svc.now = time.Now
	}

	// Use provided UUID generator or create default
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// Palette returns the managed colors
func (s *service) Palette() mana.Palette {
	out := make(mana.Palette, len(s.palette))
	copy(out, s.palette)
	return out
}

// validateColor rejects colors outside the palette
func (s *service) validateColor(color mana.ColorKey) error {
	if !s.palette.Contains(color) {
		return manaerr.InvalidArgumentf("unknown mana color '%s'", color).
			WithMeta("color", string(color))
	}
	return nil
}

func validateActor(actorID string) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}
	return nil
}

// record counts an operation, deriving the outcome from err
func (s *service) record(operation string, err error) {
	s.metrics.Record(operation, outcomeOf(err))
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case manaerr.IsPermissionDenied(err):
		return metrics.OutcomeDenied
	case manaerr.IsInvalidArgument(err):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}

// deny warns the caller and returns the matching error
func (s *service) deny(ctx context.Context, err error) error {
	s.notifier.Notify(ctx, notify.LevelWarn, err.Error())
	return err
}

// emit publishes a committed change. Listener failures are logged only.
func (s *service) emit(eventType events.EventType, actorID string, color mana.ColorKey, amount, index int, state mana.PoolState) {
	if s.eventBus == nil {
		return
	}

	event := &events.PoolEvent{
		BaseEvent: events.BaseEvent{
			ID:      s.uuidGenerator.New(),
			Type:    eventType,
			ActorID: actorID,
		},
		Color:      color,
		Amount:     amount,
		Index:      index,
		State:      state.Clone(),
		OccurredAt: s.now(),
	}

	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("ManaService: Event %s for actor %s failed: %v", eventType, actorID, err)
	}
}
