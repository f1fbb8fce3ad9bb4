package mana

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/KirkDiggler/magic-mana-engine/internal/metrics"
	"github.com/KirkDiggler/magic-mana-engine/internal/notify"
	mocknotify "github.com/KirkDiggler/magic-mana-engine/internal/notify/mock"
	"github.com/KirkDiggler/magic-mana-engine/internal/repositories/pools"
	mockpools "github.com/KirkDiggler/magic-mana-engine/internal/repositories/pools/mock"
	"github.com/KirkDiggler/magic-mana-engine/internal/testutils"
	"github.com/KirkDiggler/magic-mana-engine/internal/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const actorID = "actor-1"

var (
	gm     = mana.GM("gm-user")
	player = mana.Player("player-user")
	epoch  = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	notifier *mocknotify.MockNotifier
	repo     pools.Repository
	bus      *events.Bus
	recorder *metrics.Recorder
	svc      Service
	ctx      context.Context

	mu      sync.Mutex
	emitted []*events.PoolEvent
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.notifier = mocknotify.NewMockNotifier(s.ctrl)
	s.repo = pools.NewInMemoryRepository()
	s.bus = events.NewBus()
	s.recorder = metrics.NewRecorder(prometheus.NewRegistry())
	s.ctx = context.Background()
	s.emitted = nil

	s.bus.SubscribeAll(&events.ListenerFunc{
		ListenerID: "capture",
		Fn: func(event events.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.emitted = append(s.emitted, event.(*events.PoolEvent))
			return nil
		},
	})

	s.svc = NewService(&ServiceConfig{
		Repository:    s.repo,
		Notifier:      s.notifier,
		EventBus:      s.bus,
		Metrics:       s.recorder,
		UUIDGenerator: uuid.NewSequenceGenerator("evt"),
		Clock:         func() time.Time { return epoch },
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

// seed stores a pool directly, bypassing the service
func (s *ServiceTestSuite) seed(slots map[mana.ColorKey]int, bars map[mana.ColorKey]mana.Bar) {
	cfg := testutils.SlotConfig(slots)
	s.Require().NoError(s.repo.SaveConfig(s.ctx, actorID, cfg, testutils.PoolState(cfg, bars)))
}

func (s *ServiceTestSuite) bar(color mana.ColorKey) mana.Bar {
	state, err := s.svc.GetState(s.ctx, actorID)
	s.Require().NoError(err)
	return state[color]
}

func (s *ServiceTestSuite) emittedEvents() []*events.PoolEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*events.PoolEvent(nil), s.emitted...)
}

func (s *ServiceTestSuite) count(operation, outcome string) float64 {
	return testutil.ToFloat64(s.recorder.Operations().WithLabelValues(operation, outcome))
}

func (s *ServiceTestSuite) TestGetSlotConfig_Unset() {
	cfg, err := s.svc.GetSlotConfig(s.ctx, actorID)
	s.Require().NoError(err)
	s.Len(cfg, 7)
	for _, key := range mana.DefaultPalette().Keys() {
		s.Equal(0, cfg[key], "color %s", key)
	}
}

func (s *ServiceTestSuite) TestSetSlotConfig_Clamps() {
	cfg, err := s.svc.SetSlotConfig(s.ctx, actorID, map[mana.ColorKey]float64{
		mana.ColorWhite: 5.7,
		mana.ColorBlue:  -1,
		mana.ColorBlack: math.NaN(),
		mana.ColorRed:   math.Inf(1),
		"X":             3,
	})
	s.Require().NoError(err)

	s.Equal(5, cfg[mana.ColorWhite])
	s.Equal(0, cfg[mana.ColorBlue])
	s.Equal(0, cfg[mana.ColorBlack])
	s.Equal(0, cfg[mana.ColorRed])
	s.Equal(0, cfg[mana.ColorGreen])
	s.NotContains(cfg, mana.ColorKey("X"))

	stored, err := s.svc.GetSlotConfig(s.ctx, actorID)
	s.Require().NoError(err)
	s.Equal(cfg, stored)

	state, err := s.svc.GetState(s.ctx, actorID)
	s.Require().NoError(err)
	s.Len(state[mana.ColorWhite].Active, 5)
	s.Len(state[mana.ColorWhite].SlotLocked, 5)

	evts := s.emittedEvents()
	s.Require().Len(evts, 1)
	s.Equal(events.OnSlotConfigChanged, evts[0].GetType())
	s.Equal(1.0, s.count("set_slot_config", metrics.OutcomeOK))
}

func (s *ServiceTestSuite) TestSetSlotConfig_MaxCapacity() {
	svc := NewService(&ServiceConfig{Repository: s.repo, Notifier: s.notifier, MaxCapacity: 100})

	cfg, err := svc.SetSlotConfig(s.ctx, actorID, map[mana.ColorKey]float64{mana.ColorGreen: 250})
	s.Require().NoError(err)
	s.Equal(100, cfg[mana.ColorGreen])
}

func (s *ServiceTestSuite) TestSetSlotConfig_DefaultCapBoundsHugeInput() {
	cfg, err := s.svc.SetSlotConfig(s.ctx, actorID, map[mana.ColorKey]float64{
		mana.ColorWhite: 1e12,
		mana.ColorBlue:  5e7,
		mana.ColorBlack: 100,
		mana.ColorRed:   99.9,
	})
	s.Require().NoError(err)

	s.Equal(mana.DefaultMaxCapacity, cfg[mana.ColorWhite])
	s.Equal(mana.DefaultMaxCapacity, cfg[mana.ColorBlue])
	s.Equal(100, cfg[mana.ColorBlack])
	s.Equal(99, cfg[mana.ColorRed])

	s.Len(s.bar(mana.ColorWhite).Active, mana.DefaultMaxCapacity)
	s.Len(s.bar(mana.ColorBlue).SlotLocked, mana.DefaultMaxCapacity)
}

func (s *ServiceTestSuite) TestSetSlotConfig_ResizeKeepsSurvivingSlots() {
	s.seed(map[mana.ColorKey]int{mana.ColorWhite: 5}, map[mana.ColorKey]mana.Bar{
		mana.ColorWhite: testutils.BarFrom(
			[]bool{true, false, true, true, true},
			[]bool{false, true, false, false, true},
			true),
	})

	_, err := s.svc.SetSlotConfig(s.ctx, actorID, map[mana.ColorKey]float64{mana.ColorWhite: 3})
	s.Require().NoError(err)

	bar := s.bar(mana.ColorWhite)
	s.Equal([]bool{true, false, true}, bar.Active)
	s.Equal([]bool{false, true, false}, bar.SlotLocked)
	s.True(bar.BarLocked)

	_, err = s.svc.SetSlotConfig(s.ctx, actorID, map[mana.ColorKey]float64{mana.ColorWhite: 6})
	s.Require().NoError(err)

	bar = s.bar(mana.ColorWhite)
	s.Equal([]bool{true, false, true, false, false, false}, bar.Active)
	s.Equal([]bool{false, true, false, false, false, false}, bar.SlotLocked)
}

func (s *ServiceTestSuite) TestGetState_Stable() {
	s.seed(map[mana.ColorKey]int{mana.ColorRed: 2}, map[mana.ColorKey]mana.Bar{
		mana.ColorRed: testutils.ActiveBar(2, 1),
	})

	first, err := s.svc.GetState(s.ctx, actorID)
	s.Require().NoError(err)
	second, err := s.svc.GetState(s.ctx, actorID)
	s.Require().NoError(err)

	s.True(first.Equal(second))
	s.Len(first, 7)
	s.Empty(s.emittedEvents())
}

func (s *ServiceTestSuite) TestToggleSlot() {
	s.seed(map[mana.ColorKey]int{mana.ColorBlue: 3}, nil)

	s.Require().NoError(s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorBlue, 1))
	s.Equal([]bool{false, true, false}, s.bar(mana.ColorBlue).Active)

	s.Require().NoError(s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorBlue, 1))
	s.Equal([]bool{false, false, false}, s.bar(mana.ColorBlue).Active)

	evts := s.emittedEvents()
	s.Require().Len(evts, 2)
	s.Equal(events.OnSlotToggled, evts[0].GetType())
	s.Equal("evt-1", evts[0].GetID())
	s.Equal(actorID, evts[0].GetActorID())
	s.Equal(mana.ColorBlue, evts[0].Color)
	s.Equal(1, evts[0].Index)
	s.Equal(epoch, evts[0].OccurredAt)
	s.Equal([]bool{false, true, false}, evts[0].State[mana.ColorBlue].Active)
	s.Equal(2.0, s.count("toggle_slot", metrics.OutcomeOK))
}

func (s *ServiceTestSuite) TestToggleSlot_InvalidArguments() {
	s.seed(map[mana.ColorKey]int{mana.ColorBlue: 3}, nil)

	err := s.svc.ToggleSlot(s.ctx, gm, actorID, mana.ColorBlue, 3)
	s.True(manaerr.IsInvalidArgument(err))
	s.Equal(3, manaerr.GetMeta(err)["index"])

	err = s.svc.ToggleSlot(s.ctx, gm, actorID, mana.ColorBlue, -1)
	s.True(manaerr.IsInvalidArgument(err))

	err = s.svc.ToggleSlot(s.ctx, gm, actorID, "X", 0)
	s.True(manaerr.IsInvalidArgument(err))

	err = s.svc.ToggleSlot(s.ctx, gm, "", mana.ColorBlue, 0)
	s.True(manaerr.IsInvalidArgument(err))

	s.Empty(s.emittedEvents())
	s.Equal(4.0, s.count("toggle_slot", metrics.OutcomeInvalid))
}

func (s *ServiceTestSuite) TestToggleSlot_LockedSlotDeniedForPlayer() {
	s.seed(map[mana.ColorKey]int{mana.ColorBlack: 3}, map[mana.ColorKey]mana.Bar{
		mana.ColorBlack: testutils.BarFrom([]bool{true, true, false}, []bool{false, true, false}, false),
	})

	s.notifier.EXPECT().Notify(gomock.Any(), notify.LevelWarn, "Only the GM can change locked mana")

	err := s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorBlack, 1)
	s.True(manaerr.IsPermissionDenied(err))
	s.Equal([]bool{true, true, false}, s.bar(mana.ColorBlack).Active)
	s.Empty(s.emittedEvents())
	s.Equal(1.0, s.count("toggle_slot", metrics.OutcomeDenied))

	// Unlocked neighbours stay usable
	s.Require().NoError(s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorBlack, 2))

	// The GM bypasses the lock
	s.Require().NoError(s.svc.ToggleSlot(s.ctx, gm, actorID, mana.ColorBlack, 1))
	s.Equal([]bool{true, false, true}, s.bar(mana.ColorBlack).Active)
}

func (s *ServiceTestSuite) TestToggleSlot_LockedBarDeniedForPlayer() {
	s.seed(map[mana.ColorKey]int{mana.ColorGreen: 2}, map[mana.ColorKey]mana.Bar{
		mana.ColorGreen: testutils.BarFrom([]bool{false, false}, nil, true),
	})

	s.notifier.EXPECT().Notify(gomock.Any(), notify.LevelWarn, gomock.Any())

	err := s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorGreen, 0)
	s.True(manaerr.IsPermissionDenied(err))
	s.Equal([]bool{false, false}, s.bar(mana.ColorGreen).Active)

	s.Require().NoError(s.svc.ToggleSlot(s.ctx, gm, actorID, mana.ColorGreen, 0))
	s.Equal([]bool{true, false}, s.bar(mana.ColorGreen).Active)
}

func (s *ServiceTestSuite) TestSetBarLocked() {
	s.seed(map[mana.ColorKey]int{mana.ColorRed: 2}, nil)

	s.Require().NoError(s.svc.SetBarLocked(s.ctx, gm, actorID, mana.ColorRed, true))
	s.True(s.bar(mana.ColorRed).BarLocked)

	// Setting the same value again writes nothing
	s.Require().NoError(s.svc.SetBarLocked(s.ctx, gm, actorID, mana.ColorRed, true))

	s.Require().NoError(s.svc.SetBarLocked(s.ctx, gm, actorID, mana.ColorRed, false))
	s.False(s.bar(mana.ColorRed).BarLocked)

	evts := s.emittedEvents()
	s.Require().Len(evts, 2)
	s.Equal(events.OnBarLockChanged, evts[0].GetType())
	s.Equal(events.OnBarLockChanged, evts[1].GetType())

	err := s.svc.SetBarLocked(s.ctx, gm, actorID, "X", true)
	s.True(manaerr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestSetSlotLocked() {
	s.seed(map[mana.ColorKey]int{mana.ColorWhite: 3}, map[mana.ColorKey]mana.Bar{
		mana.ColorWhite: testutils.ActiveBar(3, 2),
	})

	s.Require().NoError(s.svc.SetSlotLocked(s.ctx, gm, actorID, mana.ColorWhite, 1, true))
	s.Equal([]bool{false, true, false}, s.bar(mana.ColorWhite).SlotLocked)

	// Setting the same value again writes nothing
	s.Require().NoError(s.svc.SetSlotLocked(s.ctx, gm, actorID, mana.ColorWhite, 1, true))

	evts := s.emittedEvents()
	s.Require().Len(evts, 1)
	s.Equal(events.OnSlotLockChanged, evts[0].GetType())
	s.Equal(mana.ColorWhite, evts[0].Color)
	s.Equal(1, evts[0].Index)
	s.Equal(2.0, s.count("set_slot_locked", metrics.OutcomeOK))

	// The lock now gates players
	s.notifier.EXPECT().Notify(gomock.Any(), notify.LevelWarn, "Only the GM can change locked mana")
	err := s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorWhite, 1)
	s.True(manaerr.IsPermissionDenied(err))

	s.Require().NoError(s.svc.SetSlotLocked(s.ctx, gm, actorID, mana.ColorWhite, 1, false))
	s.Equal([]bool{false, false, false}, s.bar(mana.ColorWhite).SlotLocked)
	s.Require().NoError(s.svc.ToggleSlot(s.ctx, player, actorID, mana.ColorWhite, 1))
	s.Equal([]bool{true, false, false}, s.bar(mana.ColorWhite).Active)
}

func (s *ServiceTestSuite) TestSetSlotLocked_DeniedForPlayer() {
	s.seed(map[mana.ColorKey]int{mana.ColorWhite: 3}, nil)

	s.notifier.EXPECT().Notify(gomock.Any(), notify.LevelWarn, "Only the GM can lock or unlock mana slots")

	err := s.svc.SetSlotLocked(s.ctx, player, actorID, mana.ColorWhite, 0, true)
	s.True(manaerr.IsPermissionDenied(err))
	s.Equal([]bool{false, false, false}, s.bar(mana.ColorWhite).SlotLocked)
	s.Empty(s.emittedEvents())
	s.Equal(1.0, s.count("set_slot_locked", metrics.OutcomeDenied))
}

func (s *ServiceTestSuite) TestSetSlotLocked_InvalidArguments() {
	s.seed(map[mana.ColorKey]int{mana.ColorWhite: 3}, nil)

	for _, tc := range []struct {
		name    string
		actorID string
		color   mana.ColorKey
		index   int
	}{
		{name: "missing actor", actorID: "", color: mana.ColorWhite, index: 0},
		{name: "unknown color", actorID: actorID, color: "X", index: 0},
		{name: "negative index", actorID: actorID, color: mana.ColorWhite, index: -1},
		{name: "index past capacity", actorID: actorID, color: mana.ColorWhite, index: 3},
	} {
		err := s.svc.SetSlotLocked(s.ctx, gm, tc.actorID, tc.color, tc.index, true)
		s.True(manaerr.IsInvalidArgument(err), tc.name)
	}

	s.Empty(s.emittedEvents())
	s.Equal(4.0, s.count("set_slot_locked", metrics.OutcomeInvalid))
}

func (s *ServiceTestSuite) TestRegenerateOneForAll() {
	s.seed(map[mana.ColorKey]int{
		mana.ColorWhite: 3,
		mana.ColorBlue:  2,
		mana.ColorBlack: 3,
		mana.ColorRed:   2,
	}, map[mana.ColorKey]mana.Bar{
		mana.ColorWhite: testutils.BarFrom([]bool{true, false, false}, nil, false),
		mana.ColorBlue:  testutils.BarFrom([]bool{false, false}, nil, true),
		mana.ColorBlack: testutils.BarFrom([]bool{false, false, false}, []bool{true, false, false}, false),
		mana.ColorRed:   testutils.ActiveBar(2, 2),
	})

	regenerated, err := s.svc.RegenerateOneForAll(s.ctx, actorID)
	s.Require().NoError(err)
	s.Equal([]mana.ColorKey{mana.ColorWhite, mana.ColorBlack}, regenerated)

	s.Equal([]bool{true, true, false}, s.bar(mana.ColorWhite).Active)
	s.Equal([]bool{false, false}, s.bar(mana.ColorBlue).Active)
	s.Equal([]bool{false, true, false}, s.bar(mana.ColorBlack).Active)
	s.Equal([]bool{true, true}, s.bar(mana.ColorRed).Active)

	evts := s.emittedEvents()
	s.Require().Len(evts, 1)
	s.Equal(events.OnManaRegenerated, evts[0].GetType())
	s.Equal(2, evts[0].Amount)
}

func (s *ServiceTestSuite) TestLongRest() {
	s.seed(map[mana.ColorKey]int{mana.ColorGreen: 2}, nil)

	regenerated, err := s.svc.LongRest(s.ctx, actorID)
	s.Require().NoError(err)
	s.Equal([]mana.ColorKey{mana.ColorGreen}, regenerated)
	s.Equal([]bool{true, false}, s.bar(mana.ColorGreen).Active)
}

func (s *ServiceTestSuite) TestSpend() {
	s.seed(map[mana.ColorKey]int{mana.ColorRed: 5}, map[mana.ColorKey]mana.Bar{
		mana.ColorRed: testutils.BarFrom(
			[]bool{true, true, true, true, true},
			[]bool{false, false, false, false, true},
			true),
	})

	// Bar locks do not block spending; slot locks are never spent
	ok, err := s.svc.Spend(s.ctx, actorID, mana.ColorRed, 2)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]bool{true, true, false, false, true}, s.bar(mana.ColorRed).Active)

	evts := s.emittedEvents()
	s.Require().Len(evts, 1)
	s.Equal(events.OnManaSpent, evts[0].GetType())
	s.Equal(2, evts[0].Amount)

	ok, err = s.svc.Spend(s.ctx, actorID, mana.ColorRed, 3)
	s.Require().NoError(err)
	s.False(ok)
	s.Equal([]bool{true, true, false, false, true}, s.bar(mana.ColorRed).Active)
	s.Len(s.emittedEvents(), 1)

	s.Equal(1.0, s.count("spend", metrics.OutcomeOK))
	s.Equal(1.0, s.count("spend", metrics.OutcomeInsufficient))
}

func (s *ServiceTestSuite) TestSpend_InvalidArguments() {
	_, err := s.svc.Spend(s.ctx, actorID, mana.ColorRed, 0)
	s.True(manaerr.IsInvalidArgument(err))

	_, err = s.svc.Spend(s.ctx, actorID, mana.ColorRed, -2)
	s.True(manaerr.IsInvalidArgument(err))

	_, err = s.svc.Spend(s.ctx, actorID, "X", 1)
	s.True(manaerr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestScenario_ActivateThenSpend() {
	_, err := s.svc.SetSlotConfig(s.ctx, actorID, map[mana.ColorKey]float64{mana.ColorWhite: 5})
	s.Require().NoError(err)

	for want := 0; want < 3; want++ {
		idx, err := s.svc.ActivateNext(s.ctx, player, actorID, mana.ColorWhite)
		s.Require().NoError(err)
		s.Equal(want, idx)
	}
	s.Equal([]bool{true, true, true, false, false}, s.bar(mana.ColorWhite).Active)

	ok, err := s.svc.Spend(s.ctx, actorID, mana.ColorWhite, 2)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]bool{true, false, false, false, false}, s.bar(mana.ColorWhite).Active)

	ok, err = s.svc.Spend(s.ctx, actorID, mana.ColorWhite, 2)
	s.Require().NoError(err)
	s.False(ok)
	s.Equal([]bool{true, false, false, false, false}, s.bar(mana.ColorWhite).Active)
}

func (s *ServiceTestSuite) TestScenario_RegenerateBlockedByLockedSlot() {
	s.seed(map[mana.ColorKey]int{mana.ColorWhite: 3}, map[mana.ColorKey]mana.Bar{
		mana.ColorWhite: testutils.BarFrom([]bool{true, false, true}, []bool{false, true, false}, false),
	})

	regenerated, err := s.svc.RegenerateOneForAll(s.ctx, actorID)
	s.Require().NoError(err)
	s.Empty(regenerated)
	s.Equal([]bool{true, false, true}, s.bar(mana.ColorWhite).Active)
	s.Empty(s.emittedEvents())
	s.Equal(1.0, s.count("regenerate", metrics.OutcomeNoop))
}

func (s *ServiceTestSuite) TestActivateNext_SkipsLockedSlots() {
	s.seed(map[mana.ColorKey]int{mana.ColorBlue: 3}, map[mana.ColorKey]mana.Bar{
		mana.ColorBlue: testutils.BarFrom([]bool{false, false, false}, []bool{true, false, false}, false),
	})

	idx, err := s.svc.ActivateNext(s.ctx, player, actorID, mana.ColorBlue)
	s.Require().NoError(err)
	s.Equal(1, idx)
}

func (s *ServiceTestSuite) TestDeactivateLast() {
	s.seed(map[mana.ColorKey]int{mana.ColorBlue: 4}, map[mana.ColorKey]mana.Bar{
		mana.ColorBlue: testutils.BarFrom([]bool{true, true, false, true}, []bool{false, false, false, true}, false),
	})

	idx, err := s.svc.DeactivateLast(s.ctx, player, actorID, mana.ColorBlue)
	s.Require().NoError(err)
	s.Equal(1, idx)

	idx, err = s.svc.DeactivateLast(s.ctx, player, actorID, mana.ColorBlue)
	s.Require().NoError(err)
	s.Equal(0, idx)

	idx, err = s.svc.DeactivateLast(s.ctx, player, actorID, mana.ColorBlue)
	s.Require().NoError(err)
	s.Equal(-1, idx)
	s.Equal([]bool{false, false, false, true}, s.bar(mana.ColorBlue).Active)
	s.Equal(1.0, s.count("deactivate_last", metrics.OutcomeNoop))
}

func (s *ServiceTestSuite) TestSelector_BarLockedIsSilentNoopForPlayer() {
	s.seed(map[mana.ColorKey]int{mana.ColorRed: 2}, map[mana.ColorKey]mana.Bar{
		mana.ColorRed: testutils.BarFrom([]bool{true, false}, nil, true),
	})

	// No notification is expected: the strict mock fails on any call
	idx, err := s.svc.ActivateNext(s.ctx, player, actorID, mana.ColorRed)
	s.Require().NoError(err)
	s.Equal(-1, idx)

	idx, err = s.svc.DeactivateLast(s.ctx, player, actorID, mana.ColorRed)
	s.Require().NoError(err)
	s.Equal(-1, idx)
	s.Equal([]bool{true, false}, s.bar(mana.ColorRed).Active)

	// The GM is not held back by the bar lock
	idx, err = s.svc.ActivateNext(s.ctx, gm, actorID, mana.ColorRed)
	s.Require().NoError(err)
	s.Equal(1, idx)
}

func (s *ServiceTestSuite) TestBarVisuals() {
	s.seed(map[mana.ColorKey]int{mana.ColorWhite: 2, mana.ColorBlue: 1}, map[mana.ColorKey]mana.Bar{
		mana.ColorWhite: testutils.BarFrom([]bool{true, false}, []bool{false, true}, false),
		mana.ColorBlue:  testutils.BarFrom([]bool{true}, nil, true),
	})

	visuals, err := s.svc.BarVisuals(s.ctx, actorID, map[mana.ColorKey]string{mana.ColorBlue: "icons/blue.webp"})
	s.Require().NoError(err)
	s.Require().Len(visuals, 7)

	white := visuals[0]
	s.Equal(mana.ColorWhite, white.Color.Key)
	s.Equal("rgba(248,246,216,0.7)", white.Background)
	s.Require().Len(white.Slots, 2)
	s.Equal(mana.FillSolid, white.Slots[0].Fill)
	s.Equal("#f8f6d8", white.Slots[0].Color)
	s.Equal(mana.FillEmpty, white.Slots[1].Fill)
	s.True(white.Slots[1].Locked)

	blue := visuals[1]
	s.True(blue.BarLocked)
	s.Equal(mana.FillIcon, blue.Slots[0].Fill)
	s.Equal("icons/blue.webp", blue.Slots[0].Icon)
	s.True(blue.Slots[0].Locked)

	s.Empty(visuals[6].Slots)
}

func (s *ServiceTestSuite) TestConcurrentSpendsNeverLoseUpdates() {
	s.seed(map[mana.ColorKey]int{mana.ColorGreen: 40}, map[mana.ColorKey]mana.Bar{
		mana.ColorGreen: testutils.ActiveBar(40, 40),
	})

	var wg sync.WaitGroup
	results := make(chan bool, 60)
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.svc.Spend(s.ctx, actorID, mana.ColorGreen, 1)
			s.NoError(err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	spent := 0
	for ok := range results {
		if ok {
			spent++
		}
	}
	s.Equal(40, spent)
	s.Equal(0, s.bar(mana.ColorGreen).ActiveCount())
	s.Equal(0, s.svc.(*service).locks.size())
}

func TestSpendFromCard(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		play      *CardPlay
		setup     func(n *mocknotify.MockNotifier)
		wantSpent bool
		wantErr   bool
		wantLeft  int
	}{
		{
			name: "spends and announces",
			play: &CardPlay{ActorID: actorID, PlayerName: "Ana", CardName: "Lightning Bolt", Suit: "r", Value: 2},
			setup: func(n *mocknotify.MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), notify.LevelInfo, "Ana played Lightning Bolt and spent 2 Red mana")
			},
			wantSpent: true,
			wantLeft:  1,
		},
		{
			name: "not enough mana",
			play: &CardPlay{ActorID: actorID, Suit: "R", Value: 4},
			setup: func(n *mocknotify.MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), notify.LevelInfo, "Player could not play Card: not enough Red mana")
			},
			wantLeft: 3,
		},
		{
			name:     "non primary suit is ignored",
			play:     &CardPlay{ActorID: actorID, Suit: "C", Value: 1},
			wantLeft: 3,
		},
		{
			name:     "unknown suit is ignored",
			play:     &CardPlay{ActorID: actorID, Suit: "hearts", Value: 1},
			wantLeft: 3,
		},
		{
			name:     "zero value is ignored",
			play:     &CardPlay{ActorID: actorID, Suit: "R", Value: 0},
			wantLeft: 3,
		},
		{
			name: "missing actor",
			play: &CardPlay{Suit: "R", Value: 1},
			setup: func(n *mocknotify.MockNotifier) {
				n.EXPECT().Notify(gomock.Any(), notify.LevelWarn, gomock.Any())
			},
			wantErr:  true,
			wantLeft: 3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			notifier := mocknotify.NewMockNotifier(ctrl)
			repo := pools.NewInMemoryRepository()

			cfg := testutils.SlotConfig(map[mana.ColorKey]int{mana.ColorRed: 3})
			state := testutils.PoolState(cfg, map[mana.ColorKey]mana.Bar{mana.ColorRed: testutils.ActiveBar(3, 3)})
			if err := repo.SaveConfig(ctx, actorID, cfg, state); err != nil {
				t.Fatalf("seed: %v", err)
			}

			if tc.setup != nil {
				tc.setup(notifier)
			}

			svc := NewService(&ServiceConfig{Repository: repo, Notifier: notifier})
			spent, err := svc.SpendFromCard(ctx, tc.play)
			if tc.wantErr {
				if !manaerr.IsInvalidArgument(err) {
					t.Fatalf("expected invalid argument, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if spent != tc.wantSpent {
				t.Errorf("spent = %v, want %v", spent, tc.wantSpent)
			}

			got, err := svc.GetState(ctx, actorID)
			if err != nil {
				t.Fatalf("get state: %v", err)
			}
			if left := got[mana.ColorRed].Available(); left != tc.wantLeft {
				t.Errorf("available = %d, want %d", left, tc.wantLeft)
			}
		})
	}
}

func TestNewService_Panics(t *testing.T) {
	cases := map[string]*ServiceConfig{
		"nil config":       nil,
		"no repository":    {},
		"negative max cap": {Repository: pools.NewInMemoryRepository(), MaxCapacity: -1},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			NewService(cfg)
		})
	}
}

func TestLoadFailureIsUnavailable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mockpools.NewMockRepository(ctrl)

	repo.EXPECT().GetSlotConfig(gomock.Any(), actorID).Return(nil, errors.New("connection refused"))
	repo.EXPECT().GetState(gomock.Any(), actorID).Return(nil, nil).AnyTimes()

	svc := NewService(&ServiceConfig{Repository: repo, Notifier: notify.NewLogNotifier()})
	_, err := svc.GetState(ctx, actorID)
	if !manaerr.IsUnavailable(err) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}
