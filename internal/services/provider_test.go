package services

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Defaults(t *testing.T) {
	var logged bytes.Buffer
	provider := NewProvider(&ProviderConfig{MaxCapacity: 10, EventLogger: log.New(&logged, "", 0)})
	require.NotNil(t, provider.ManaService)
	require.NotNil(t, provider.PoolRepository)
	require.NotNil(t, provider.EventBus)

	var seen []events.EventType
	provider.EventBus.SubscribeAll(&events.ListenerFunc{
		ListenerID: "test",
		Fn: func(e events.Event) error {
			seen = append(seen, e.GetType())
			return nil
		},
	})

	ctx := context.Background()
	cfg, err := provider.ManaService.SetSlotConfig(ctx, "actor-1", map[mana.ColorKey]float64{mana.ColorWhite: 50})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg[mana.ColorWhite])

	ids, err := provider.PoolRepository.ListActorIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"actor-1"}, ids)
	assert.Equal(t, []events.EventType{events.OnSlotConfigChanged}, seen)
	assert.Contains(t, logged.String(), "EventBus: on_slot_config_changed actor=actor-1 color=* amount=0 index=-1")
}

func TestNewProvider_DefaultCapacity(t *testing.T) {
	provider := NewProvider(&ProviderConfig{EventLogger: log.New(&bytes.Buffer{}, "", 0)})

	cfg, err := provider.ManaService.SetSlotConfig(context.Background(), "actor-1",
		map[mana.ColorKey]float64{mana.ColorGreen: 1e9})
	require.NoError(t, err)
	assert.Equal(t, mana.DefaultMaxCapacity, cfg[mana.ColorGreen])
}
