package mana

import (
	"context"
	"log"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/KirkDiggler/magic-mana-engine/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// snapshot is a character's normalized config and pool as of one load
type snapshot struct {
	cfg   mana.SlotConfig
	state mana.PoolState
}

// load reads config and state concurrently and normalizes them.
// Never-stored data reads as blank.
func (s *service) load(ctx context.Context, actorID string) (*snapshot, error) {
	var (
		storedCfg   mana.SlotConfig
		storedState mana.PoolState
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg, err := s.repository.GetSlotConfig(gctx, actorID)
		if err != nil && !manaerr.IsNotFound(err) {
			return err
		}
		storedCfg = cfg
		return nil
	})
	g.Go(func() error {
		state, err := s.repository.GetState(gctx, actorID)
		if err != nil && !manaerr.IsNotFound(err) {
			return err
		}
		storedState = state
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, manaerr.WrapWithCode(err, manaerr.CodeUnavailable, "failed to load mana pool").
			WithMeta("actor_id", actorID)
	}

	cfg := mana.ResolveSlotConfig(s.palette, storedCfg)
	return &snapshot{
		cfg:   cfg,
		state: mana.NormalizeState(s.palette, cfg, storedState),
	}, nil
}

// update runs fn on a fresh snapshot while holding the actor's lock and
// persists the state once when fn reports a change. The returned state is
// what was committed (or the unchanged snapshot).
func (s *service) update(ctx context.Context, actorID string, fn func(snap *snapshot) (bool, error)) (mana.PoolState, bool, error) {
	release, err := s.locks.acquire(ctx, actorID)
	if err != nil {
		return nil, false, manaerr.Wrap(err, "failed to acquire mana pool lock").
			WithMeta("actor_id", actorID)
	}
	defer release()

	snap, err := s.load(ctx, actorID)
	if err != nil {
		return nil, false, err
	}

	changed, err := fn(snap)
	if err != nil || !changed {
		return snap.state, false, err
	}

	if err := s.repository.SaveState(ctx, actorID, snap.state); err != nil {
		log.Printf("ManaService: Failed to save pool for actor %s: %v", actorID, err)
		return nil, false, manaerr.WrapWithCode(err, manaerr.CodePersistFailed, "failed to save mana pool").
			WithMeta("actor_id", actorID)
	}

	return snap.state, true, nil
}

// GetSlotConfig returns every palette color's capacity, 0 when unset
func (s *service) GetSlotConfig(ctx context.Context, actorID string) (mana.SlotConfig, error) {
	if err := validateActor(actorID); err != nil {
		return nil, err
	}

	stored, err := s.repository.GetSlotConfig(ctx, actorID)
	if err != nil && !manaerr.IsNotFound(err) {
		return nil, manaerr.WrapWithCode(err, manaerr.CodeUnavailable, "failed to load slot config").
			WithMeta("actor_id", actorID)
	}

	return mana.ResolveSlotConfig(s.palette, stored), nil
}

// SetSlotConfig clamps the input, resizes the pool and writes both together
func (s *service) SetSlotConfig(ctx context.Context, actorID string, input map[mana.ColorKey]float64) (mana.SlotConfig, error) {
	if err := validateActor(actorID); err != nil {
		s.record("set_slot_config", err)
		return nil, err
	}

	cfg := mana.NormalizeSlotConfig(s.palette, input, s.maxCapacity)

	state, err := s.replaceConfig(ctx, actorID, cfg)
	s.record("set_slot_config", err)
	if err != nil {
		return nil, err
	}

	log.Printf("ManaService: Updated slot config for actor %s: %v", actorID, cfg)
	s.emit(events.OnSlotConfigChanged, actorID, "", 0, -1, state)
	return cfg.Clone(), nil
}

func (s *service) replaceConfig(ctx context.Context, actorID string, cfg mana.SlotConfig) (mana.PoolState, error) {
	release, err := s.locks.acquire(ctx, actorID)
	if err != nil {
		return nil, manaerr.Wrap(err, "failed to acquire mana pool lock").
			WithMeta("actor_id", actorID)
	}
	defer release()

	snap, err := s.load(ctx, actorID)
	if err != nil {
		return nil, err
	}

	state := mana.NormalizeState(s.palette, cfg, snap.state)
	if err := s.repository.SaveConfig(ctx, actorID, cfg, state); err != nil {
		log.Printf("ManaService: Failed to save slot config for actor %s: %v", actorID, err)
		return nil, manaerr.WrapWithCode(err, manaerr.CodePersistFailed, "failed to save slot config").
			WithMeta("actor_id", actorID)
	}

	return state, nil
}

// GetState returns the normalized pool. It never writes.
func (s *service) GetState(ctx context.Context, actorID string) (mana.PoolState, error) {
	if err := validateActor(actorID); err != nil {
		return nil, err
	}

	snap, err := s.load(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return snap.state, nil
}

// ToggleSlot flips one slot. Non-privileged callers are refused on a locked
// slot or bar.
func (s *service) ToggleSlot(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, index int) error {
	err := s.toggleSlot(ctx, caller, actorID, color, index)
	s.record("toggle_slot", err)
	if manaerr.IsPermissionDenied(err) {
		return s.deny(ctx, err)
	}
	return err
}

func (s *service) toggleSlot(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, index int) error {
	if err := validateActor(actorID); err != nil {
		return err
	}
	if err := s.validateColor(color); err != nil {
		return err
	}

	state, _, err := s.update(ctx, actorID, func(snap *snapshot) (bool, error) {
		bar := snap.state[color]
		if !bar.InRange(index) {
			return false, manaerr.InvalidArgumentf("slot index %d out of range for capacity %d", index, bar.Capacity()).
				WithMeta("actor_id", actorID).
				WithMeta("color", string(color)).
				WithMeta("index", index)
		}
		if bar.IsLocked(index) && !caller.Privileged {
			return false, manaerr.PermissionDenied("Only the GM can change locked mana").
				WithMeta("actor_id", actorID).
				WithMeta("color", string(color)).
				WithMeta("index", index)
		}
		bar.Active[index] = !bar.Active[index]
		return true, nil
	})
	if err != nil {
		return err
	}

	s.emit(events.OnSlotToggled, actorID, color, 1, index, state)
	return nil
}

// SetBarLocked locks or unlocks a bar. Only privileged callers may do this.
func (s *service) SetBarLocked(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, locked bool) error {
	err := s.setBarLocked(ctx, caller, actorID, color, locked)
	s.record("set_bar_locked", err)
	if manaerr.IsPermissionDenied(err) {
		return s.deny(ctx, err)
	}
	return err
}

func (s *service) setBarLocked(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, locked bool) error {
	if !caller.Privileged {
		return manaerr.PermissionDenied("Only the GM can lock or unlock mana bars").
			WithMeta("actor_id", actorID).
			WithMeta("color", string(color))
	}
	if err := validateActor(actorID); err != nil {
		return err
	}
	if err := s.validateColor(color); err != nil {
		return err
	}

	state, changed, err := s.update(ctx, actorID, func(snap *snapshot) (bool, error) {
		bar := snap.state[color]
		if bar.BarLocked == locked {
			return false, nil
		}
		bar.BarLocked = locked
		snap.state[color] = bar
		return true, nil
	})
	if err != nil || !changed {
		return err
	}

	s.emit(events.OnBarLockChanged, actorID, color, 0, -1, state)
	return nil
}

// SetSlotLocked locks or unlocks one slot. Only privileged callers may do this.
func (s *service) SetSlotLocked(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, index int, locked bool) error {
	err := s.setSlotLocked(ctx, caller, actorID, color, index, locked)
	s.record("set_slot_locked", err)
	if manaerr.IsPermissionDenied(err) {
		return s.deny(ctx, err)
	}
	return err
}

func (s *service) setSlotLocked(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey, index int, locked bool) error {
	if !caller.Privileged {
		return manaerr.PermissionDenied("Only the GM can lock or unlock mana slots").
			WithMeta("actor_id", actorID).
			WithMeta("color", string(color)).
			WithMeta("index", index)
	}
	if err := validateActor(actorID); err != nil {
		return err
	}
	if err := s.validateColor(color); err != nil {
		return err
	}

	state, changed, err := s.update(ctx, actorID, func(snap *snapshot) (bool, error) {
		bar := snap.state[color]
		if !bar.InRange(index) {
			return false, manaerr.InvalidArgumentf("slot index %d out of range for capacity %d", index, bar.Capacity()).
				WithMeta("actor_id", actorID).
				WithMeta("color", string(color)).
				WithMeta("index", index)
		}
		if bar.SlotLocked[index] == locked {
			return false, nil
		}
		bar.SlotLocked[index] = locked
		return true, nil
	})
	if err != nil || !changed {
		return err
	}

	s.emit(events.OnSlotLockChanged, actorID, color, 0, index, state)
	return nil
}

// RegenerateOneForAll activates at most one slot per unlocked bar, the lowest
// inactive unlocked one. It writes only when a slot changed.
func (s *service) RegenerateOneForAll(ctx context.Context, actorID string) ([]mana.ColorKey, error) {
	if err := validateActor(actorID); err != nil {
		s.record("regenerate", err)
		return nil, err
	}

	var regenerated []mana.ColorKey
	state, changed, err := s.update(ctx, actorID, func(snap *snapshot) (bool, error) {
		regenerated = regenerated[:0]
		for _, color := range s.palette {
			if snap.state[color.Key].Regenerate() >= 0 {
				regenerated = append(regenerated, color.Key)
			}
		}
		return len(regenerated) > 0, nil
	})
	if err != nil {
		s.record("regenerate", err)
		return nil, err
	}
	if !changed {
		s.metrics.Record("regenerate", metrics.OutcomeNoop)
		return []mana.ColorKey{}, nil
	}

	s.record("regenerate", nil)
	s.emit(events.OnManaRegenerated, actorID, "", len(regenerated), -1, state)
	return regenerated, nil
}

// Spend deactivates exactly amount eligible slots from the highest index
// down. Too few eligible slots reports false and leaves the pool untouched.
// Bar locks do not block spending.
func (s *service) Spend(ctx context.Context, actorID string, color mana.ColorKey, amount int) (bool, error) {
	ok, err := s.spend(ctx, actorID, color, amount)
	switch {
	case err != nil:
		s.record("spend", err)
	case !ok:
		s.metrics.Record("spend", metrics.OutcomeInsufficient)
	default:
		s.record("spend", nil)
	}
	return ok, err
}

func (s *service) spend(ctx context.Context, actorID string, color mana.ColorKey, amount int) (bool, error) {
	if err := validateActor(actorID); err != nil {
		return false, err
	}
	if amount <= 0 {
		return false, manaerr.InvalidArgumentf("spend amount must be positive, got %d", amount).
			WithMeta("actor_id", actorID).
			WithMeta("amount", amount)
	}
	if err := s.validateColor(color); err != nil {
		return false, err
	}

	state, changed, err := s.update(ctx, actorID, func(snap *snapshot) (bool, error) {
		return snap.state[color].Spend(amount) != nil, nil
	})
	if err != nil || !changed {
		return false, err
	}

	s.emit(events.OnManaSpent, actorID, color, amount, -1, state)
	return true, nil
}
