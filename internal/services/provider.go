package services

import (
	"log"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	"github.com/KirkDiggler/magic-mana-engine/internal/events"
	"github.com/KirkDiggler/magic-mana-engine/internal/metrics"
	"github.com/KirkDiggler/magic-mana-engine/internal/notify"
	"github.com/KirkDiggler/magic-mana-engine/internal/repositories/pools"
	manaService "github.com/KirkDiggler/magic-mana-engine/internal/services/mana"
)

// Provider holds all service instances
type Provider struct {
	ManaService    manaService.Service
	PoolRepository pools.Repository
	EventBus       *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	PoolRepository pools.Repository
	Palette        mana.Palette
	Notifier       notify.Notifier
	EventBus       *events.Bus
	Metrics        *metrics.Recorder
	MaxCapacity    int
	EventLogger    *log.Logger // Optional, pool events are logged to the standard logger when nil
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	poolRepo := cfg.PoolRepository
	if poolRepo == nil {
		poolRepo = pools.NewInMemoryRepository()
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	bus.SubscribeAll(events.NewPoolLogger(cfg.EventLogger))

	svc := manaService.NewService(&manaService.ServiceConfig{
		Repository:  poolRepo,
		Palette:     cfg.Palette,
		Notifier:    cfg.Notifier,
		EventBus:    bus,
		Metrics:     cfg.Metrics,
		MaxCapacity: cfg.MaxCapacity,
	})

	return &Provider{
		ManaService:    svc,
		PoolRepository: poolRepo,
		EventBus:       bus,
	}
}
