package pools

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
)

type inMemoryRecord struct {
	cfg   mana.SlotConfig
	state mana.PoolState
}

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*inMemoryRecord
}

// NewInMemoryRepository creates a new in-memory pool repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		records: make(map[string]*inMemoryRecord),
	}
}

// GetSlotConfig retrieves a copy of the stored config
func (r *inMemoryRepository) GetSlotConfig(ctx context.Context, actorID string) (mana.SlotConfig, error) {
	if actorID == "" {
		return nil, manaerr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[actorID]
	if !exists || rec.cfg == nil {
		return nil, manaerr.NotFoundf("slot config for actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}

	return rec.cfg.Clone(), nil
}

// GetState retrieves a copy of the stored state
func (r *inMemoryRepository) GetState(ctx context.Context, actorID string) (mana.PoolState, error) {
	if actorID == "" {
		return nil, manaerr.InvalidArgument("actor ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.records[actorID]
	if !exists || rec.state == nil {
		return nil, manaerr.NotFoundf("pool state for actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}

	return rec.state.Clone(), nil
}

// SaveState stores a copy of state
func (r *inMemoryRepository) SaveState(ctx context.Context, actorID string, state mana.PoolState) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}
	if state == nil {
		return manaerr.InvalidArgument("pool state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.record(actorID).state = state.Clone()
	return nil
}

// SaveConfig stores copies of cfg and state together
func (r *inMemoryRepository) SaveConfig(ctx context.Context, actorID string, cfg mana.SlotConfig, state mana.PoolState) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}
	if cfg == nil {
		return manaerr.InvalidArgument("slot config cannot be nil")
	}
	if state == nil {
		return manaerr.InvalidArgument("pool state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := r.record(actorID)
	rec.cfg = cfg.Clone()
	rec.state = state.Clone()
	return nil
}

// ListActorIDs lists every stored actor
func (r *inMemoryRepository) ListActorIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes an actor's data
func (r *inMemoryRepository) Delete(ctx context.Context, actorID string) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[actorID]; !exists {
		return manaerr.NotFoundf("actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	delete(r.records, actorID)
	return nil
}

// record returns the actor's record, creating it; callers hold the write lock
func (r *inMemoryRepository) record(actorID string) *inMemoryRecord {
	rec, exists := r.records[actorID]
	if !exists {
		rec = &inMemoryRecord{}
		r.records[actorID] = rec
	}
	return rec
}
