package mana

import (
	"context"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/KirkDiggler/magic-mana-engine/internal/metrics"
)

// ActivateNext turns on the lowest inactive unlocked slot. A bar-locked bar
// is left alone for non-privileged callers. Returns the index or -1.
func (s *service) ActivateNext(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey) (int, error) {
	return s.toggleResolved(ctx, "activate_next", caller, actorID, color, mana.Bar.NextActivatable)
}

// DeactivateLast turns off the highest active unlocked slot. A bar-locked bar
// is left alone for non-privileged callers. Returns the index or -1.
func (s *service) DeactivateLast(ctx context.Context, caller mana.Caller, actorID string, color mana.ColorKey) (int, error) {
	return s.toggleResolved(ctx, "deactivate_last", caller, actorID, color, mana.Bar.LastSpendable)
}

// toggleResolved picks a slot and flips it under the same actor lock, so the
// picked index cannot go stale before the write
func (s *service) toggleResolved(ctx context.Context, operation string, caller mana.Caller, actorID string, color mana.ColorKey, pick func(mana.Bar) int) (int, error) {
	if err := validateActor(actorID); err != nil {
		s.record(operation, err)
		return -1, err
	}
	if err := s.validateColor(color); err != nil {
		s.record(operation, err)
		return -1, err
	}

	index := -1
	state, changed, err := s.update(ctx, actorID, func(snap *snapshot) (bool, error) {
		bar := snap.state[color]
		if bar.BarLocked && !caller.Privileged {
			return false, nil
		}
		index = pick(bar)
		if index < 0 {
			return false, nil
		}
		bar.Active[index] = !bar.Active[index]
		return true, nil
	})
	if err != nil {
		s.record(operation, err)
		return -1, err
	}
	if !changed {
		s.metrics.Record(operation, metrics.OutcomeNoop)
		return -1, nil
	}

	s.record(operation, nil)
	s.emit(events.OnSlotToggled, actorID, color, 1, index, state)
	return index, nil
}

// BarVisuals describes every bar in palette order. icons maps a color to a
// custom slot image; colors without one are drawn with a solid fill.
func (s *service) BarVisuals(ctx context.Context, actorID string, icons map[mana.ColorKey]string) ([]mana.BarVisual, error) {
	state, err := s.GetState(ctx, actorID)
	if err != nil {
		return nil, err
	}

	visuals := make([]mana.BarVisual, 0, len(s.palette))
	for _, color := range s.palette {
		visuals = append(visuals, mana.VisualizeBar(color, state[color.Key], icons[color.Key]))
	}
	return visuals, nil
}
