//go:build integration

package pools

import (
	"context"
	"testing"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/KirkDiggler/magic-mana-engine/internal/testutils"
	"github.com/stretchr/testify/suite"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.RedisClient(t)
	suite.Run(t, &RepositoryTestSuite{newRepo: func() Repository {
		// Each test starts from an empty database
		if err := client.FlushDB(context.Background()).Err(); err != nil {
			t.Fatalf("flush: %v", err)
		}
		return NewRedis(client)
	}})
}

func TestRedisRepository_Integration_KeyLayout(t *testing.T) {
	client := testutils.RedisClient(t)
	repo := NewRedis(client)
	ctx := context.Background()

	cfg := testutils.SlotConfig(map[mana.ColorKey]int{mana.ColorRed: 2})
	state := testutils.PoolState(cfg, map[mana.ColorKey]mana.Bar{mana.ColorRed: testutils.ActiveBar(2, 1)})

	if err := repo.SaveConfig(ctx, "actor-1", cfg, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	for _, key := range []string{"mana:config:actor-1", "mana:pool:actor-1"} {
		n, err := client.Exists(ctx, key).Result()
		if err != nil || n != 1 {
			t.Fatalf("expected %s to exist, got %d (%v)", key, n, err)
		}
	}

	if err := repo.Delete(ctx, "actor-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetState(ctx, "actor-1"); !manaerr.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}
