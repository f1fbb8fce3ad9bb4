package pools

//go:generate mockgen -destination=mock/mock.go -package=mockpools -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
)

// Repository persists each character's slot configuration and pool state.
// Reads of an actor nothing was stored for return a NotFound error.
type Repository interface {
	// GetSlotConfig retrieves the stored capacity per color
	GetSlotConfig(ctx context.Context, actorID string) (mana.SlotConfig, error)

	// GetState retrieves the stored bars
	GetState(ctx context.Context, actorID string) (mana.PoolState, error)

	// SaveState replaces the stored bars
	SaveState(ctx context.Context, actorID string, state mana.PoolState) error

	// SaveConfig replaces the slot configuration and the bars in one atomic write
	SaveConfig(ctx context.Context, actorID string, cfg mana.SlotConfig, state mana.PoolState) error

	// ListActorIDs lists every actor with stored data, sorted
	ListActorIDs(ctx context.Context) ([]string, error)

	// Delete removes everything stored for an actor
	Delete(ctx context.Context, actorID string) error
}
