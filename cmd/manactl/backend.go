package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/magic-mana-engine/internal/config"
	"github.com/KirkDiggler/magic-mana-engine/internal/notify"
	"github.com/KirkDiggler/magic-mana-engine/internal/repositories/pools"
)

// openRepository connects the configured storage backend. The returned func
// releases it.
func openRepository(ctx context.Context, cfg *config.Config) (pools.Repository, func() error, error) {
	switch cfg.Storage {
	case config.StorageRedis:
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse Redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect to Redis: %w", err)
		}

		return pools.NewRedis(client), client.Close, nil

	case config.StorageSQLite:
		log.Printf("Opening SQLite database at: %s", cfg.SQLite.Path)

		repo, err := pools.NewSQLiteRepository(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil

	default:
		log.Println("Using in-memory storage; nothing is kept after exit")
		return pools.NewInMemoryRepository(), func() error { return nil }, nil
	}
}

// newNotifier posts to Discord when configured and always logs
func newNotifier(cfg *config.Config) (notify.Notifier, error) {
	if !cfg.Discord.Enabled() {
		return notify.NewLogNotifier(), nil
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}

	return notify.Multi{
		notify.NewLogNotifier(),
		notify.NewDiscordNotifier(&notify.DiscordNotifierConfig{
			Sender:    dg,
			ChannelID: cfg.Discord.ChannelID,
		}),
	}, nil
}
