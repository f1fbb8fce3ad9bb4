package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage backends understood by Load
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Storage string `env:"MANA_STORAGE" envDefault:"memory"`
	Redis   RedisConfig
	SQLite  SQLiteConfig
	Discord DiscordConfig
	Mana    ManaConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	Path string `env:"MANA_SQLITE_PATH" envDefault:"mana.db"`
}

// DiscordConfig holds the optional Discord notification target
type DiscordConfig struct {
	Token     string `env:"DISCORD_TOKEN"`
	ChannelID string `env:"DISCORD_CHANNEL_ID"`
}

// Enabled reports whether notifications should be posted to Discord
func (d DiscordConfig) Enabled() bool {
	return d.Token != ""
}

// ManaConfig holds engine tuning
type ManaConfig struct {
	// MaxCapacity caps configured slot counts
	MaxCapacity int `env:"MANA_MAX_CAPACITY" envDefault:"100"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values for consistency
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("MANA_STORAGE must be one of %s, %s, %s; got %q",
			StorageMemory, StorageRedis, StorageSQLite, c.Storage)
	}

	if c.Mana.MaxCapacity < 0 {
		return fmt.Errorf("MANA_MAX_CAPACITY cannot be negative")
	}

	if c.Discord.Enabled() && c.Discord.ChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}

	return nil
}
