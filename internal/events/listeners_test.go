package events_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolLogger(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewBus()
	bus.SubscribeAll(events.NewPoolLogger(log.New(&buf, "", 0)))

	require.NoError(t, bus.Emit(newSpentEvent()))
	assert.Equal(t, "EventBus: on_mana_spent actor=actor-1 color=W amount=2 index=-1 id=evt-1\n", buf.String())

	buf.Reset()
	require.NoError(t, bus.Emit(&events.PoolEvent{
		BaseEvent: events.BaseEvent{ID: "evt-2", Type: events.OnManaRegenerated, ActorID: "actor-1"},
		Amount:    3,
		Index:     -1,
	}))
	assert.Equal(t, "EventBus: on_mana_regenerated actor=actor-1 color=* amount=3 index=-1 id=evt-2\n", buf.String())
}

func TestPoolLogger_RunsAfterOtherListeners(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewBus()
	bus.Subscribe(events.OnManaSpent, events.NewPoolLogger(log.New(&buf, "", 0)))
	bus.Subscribe(events.OnManaSpent, &events.ListenerFunc{
		ListenerID: "canceller",
		Fn: func(e events.Event) error {
			e.Cancel()
			return nil
		},
	})

	require.NoError(t, bus.Emit(newSpentEvent()))
	assert.Empty(t, buf.String())
}
