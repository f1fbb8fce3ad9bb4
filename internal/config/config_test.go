package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "MANA_STORAGE", "REDIS_URL", "MANA_SQLITE_PATH", "DISCORD_TOKEN", "DISCORD_CHANNEL_ID", "MANA_MAX_CAPACITY")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "mana.db", cfg.SQLite.Path)
	assert.Equal(t, 100, cfg.Mana.MaxCapacity)
	assert.False(t, cfg.Discord.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MANA_STORAGE", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6380/2")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "12345")
	t.Setenv("MANA_MAX_CAPACITY", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "redis://cache:6380/2", cfg.Redis.URL)
	assert.True(t, cfg.Discord.Enabled())
	assert.Equal(t, "12345", cfg.Discord.ChannelID)
	assert.Equal(t, 250, cfg.Mana.MaxCapacity)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "unknown backend",
			env:  map[string]string{"MANA_STORAGE": "postgres"},
		},
		{
			name: "negative max capacity",
			env:  map[string]string{"MANA_MAX_CAPACITY": "-1"},
		},
		{
			name: "discord token without channel",
			env:  map[string]string{"DISCORD_TOKEN": "token", "DISCORD_CHANNEL_ID": ""},
		},
		{
			name: "max capacity not a number",
			env:  map[string]string{"MANA_MAX_CAPACITY": "lots"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MANA_STORAGE", "memory")
			t.Setenv("MANA_MAX_CAPACITY", "0")
			t.Setenv("DISCORD_TOKEN", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
