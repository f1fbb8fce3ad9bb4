package pools

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KirkDiggler/magic-mana-engine/internal/domain/mana"
	manaerr "github.com/KirkDiggler/magic-mana-engine/internal/errors"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS mana_pools (
	actor_id    TEXT PRIMARY KEY,
	slot_config BLOB,
	pool_state  BLOB,
	updated_at  INTEGER NOT NULL
)`

// SQLiteRepository persists pools as JSON blobs in a single SQLite table
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository opens (and creates when missing) the database at path
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	if path == "" {
		path = "mana.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection: sqlite has a single writer and ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create mana_pools table: %w", err)
	}

	return &SQLiteRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close releases the database handle
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetSlotConfig retrieves an actor's slot config
func (r *SQLiteRepository) GetSlotConfig(ctx context.Context, actorID string) (mana.SlotConfig, error) {
	payload, err := r.column(ctx, "slot_config", actorID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, manaerr.NotFoundf("slot config for actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	return unmarshalSlotConfig(payload)
}

// GetState retrieves an actor's pool state
func (r *SQLiteRepository) GetState(ctx context.Context, actorID string) (mana.PoolState, error) {
	payload, err := r.column(ctx, "pool_state", actorID)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, manaerr.NotFoundf("pool state for actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	return unmarshalState(payload)
}

// column reads one payload column; nil means the actor or the column is absent
func (r *SQLiteRepository) column(ctx context.Context, column, actorID string) ([]byte, error) {
	if actorID == "" {
		return nil, manaerr.InvalidArgument("actor ID is required")
	}

	var payload []byte
	// column is one of two constants, never user input
	query := fmt.Sprintf(`SELECT %s FROM mana_pools WHERE actor_id = ?`, column)
	err := r.db.QueryRowContext(ctx, query, actorID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", column, err)
	}
	return payload, nil
}

// SaveState replaces an actor's pool state
func (r *SQLiteRepository) SaveState(ctx context.Context, actorID string, state mana.PoolState) error {
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

	_, err = r.db.ExecContext(ctx, `INSERT INTO mana_pools (actor_id, pool_state, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(actor_id) DO UPDATE SET
			pool_state = excluded.pool_state,
			updated_at = excluded.updated_at`,
		actorID, payload, r.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save pool state: %w", err)
	}
	return nil
}

// SaveConfig replaces an actor's slot config and pool state in one statement
func (r *SQLiteRepository) SaveConfig(ctx context.Context, actorID string, cfg mana.SlotConfig, state mana.PoolState) error {
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

	_, err = r.db.ExecContext(ctx, `INSERT INTO mana_pools (actor_id, slot_config, pool_state, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(actor_id) DO UPDATE SET
			slot_config = excluded.slot_config,
			pool_state = excluded.pool_state,
			updated_at = excluded.updated_at`,
		actorID, cfgPayload, statePayload, r.now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save slot config: %w", err)
	}
	return nil
}

// ListActorIDs lists every actor with stored data
func (r *SQLiteRepository) ListActorIDs(ctx context.Context) (ids []string, retErr error) {
	rows, err := r.db.QueryContext(ctx, `SELECT actor_id FROM mana_pools ORDER BY actor_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list actor IDs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	ids = []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan actor ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate actor IDs: %w", err)
	}
	return ids, nil
}

// Delete removes an actor's row
func (r *SQLiteRepository) Delete(ctx context.Context, actorID string) error {
	if actorID == "" {
		return manaerr.InvalidArgument("actor ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM mana_pools WHERE actor_id = ?`, actorID)
	if err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}
	if n == 0 {
		return manaerr.NotFoundf("actor '%s' not found", actorID).
			WithMeta("actor_id", actorID)
	}
	return nil
}
