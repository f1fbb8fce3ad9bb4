package pools

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "mana"

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	prefix string
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client    redis.UniversalClient // Required
	KeyPrefix string                // Optional, defaults to "mana"
}

// NewRedisRepository creates a new Redis-backed pool repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepo{
		client: cfg.Client,
		prefix: prefix,
	}
}

// configKey generates the Redis key for an actor's slot config
func (r *redisRepo) configKey(actorID string) string {
	return fmt.Sprintf("%s:config:%s", r.prefix, actorID)
}

// poolKey generates the Redis key for an actor's pool state
func (r *redisRepo) poolKey(actorID string) string {
	return fmt.Sprintf("%s:pool:%s", r.prefix, actorID)
}

// actorsKey is the set of every actor with stored data
func (r *redisRepo) actorsKey() string {
	return fmt.Sprintf("%s:actors", r.prefix)
}

// GetSlotConfig retrieves an actor's slot config
func (r *redisRepo) GetSlotConfig(ctx context.Context, actorID string) (mana.SlotConfig, error) {
	if actorID == "" {
		return nil, manaerr.InvalidArgument("actor ID is required")
	}

	payload, err := r.client.Get(ctx, r.configKey(actorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, manaerr.NotFoundf("slot config for actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot config: %w", err)
	}

	return unmarshalSlotConfig(payload)
}

// GetState retrieves an actor's pool state
func (r *redisRepo) GetState(ctx context.Context, actorID string) (mana.PoolState, error) {
	if actorID == "" {
		return nil, manaerr.InvalidArgument("actor ID is required")
	}

	payload, err := r.client.Get(ctx, r.poolKey(actorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, manaerr.NotFoundf("pool state for actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pool state: %w", err)
	}

	return unmarshalState(payload)
}

// SaveState replaces an actor's pool state
func (r *redisRepo) SaveState(ctx context.Context, actorID string, state mana.PoolState) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}
	if state == nil {
		return manaerr.InvalidArgument("pool state cannot be nil")
	}

	payload, err := marshalState(state)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.poolKey(actorID), string(payload), 0)
	pipe.SAdd(ctx, r.actorsKey(), actorID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save pool state: %w", err)
	}

	return nil
}

// SaveConfig replaces an actor's slot config and pool state in one pipeline
func (r *redisRepo) SaveConfig(ctx context.Context, actorID string, cfg mana.SlotConfig, state mana.PoolState) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}
	if cfg == nil {
		return manaerr.InvalidArgument("slot config cannot be nil")
	}
	if state == nil {
		return manaerr.InvalidArgument("pool state cannot be nil")
	}

	cfgPayload, err := marshalSlotConfig(cfg)
	if err != nil {
		return err
	}
	statePayload, err := marshalState(state)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.configKey(actorID), string(cfgPayload), 0)
	pipe.Set(ctx, r.poolKey(actorID), string(statePayload), 0)
	pipe.SAdd(ctx, r.actorsKey(), actorID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save slot config: %w", err)
	}

	return nil
}

// ListActorIDs lists every actor with stored data
func (r *redisRepo) ListActorIDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.actorsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actor IDs: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes an actor's config, state and index entry
func (r *redisRepo) Delete(ctx context.Context, actorID string) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.configKey(actorID), r.poolKey(actorID))
	pipe.SRem(ctx, r.actorsKey(), actorID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	if del.Val() == 0 {
		return manaerr.NotFoundf("actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}

	return nil
}
