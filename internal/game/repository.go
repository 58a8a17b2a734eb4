package game

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Montyshaa/Sumeris/internal/shared/config"
	"github.com/Montyshaa/Sumeris/internal/shared/database"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/redis"
)

// Repository persists one save-state aggregate per player as a JSONB
// document, with Redis as a read-through cache in front of Postgres.
type Repository struct {
	db     *database.DB
	cache  *redis.Client
	logger *slog.Logger
}

func NewRepository(db *database.DB, cache *redis.Client, logger *slog.Logger) *Repository {
	logger.Debug("Initializing game repository")

	return &Repository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func cacheKey(playerID int) string {
	return fmt.Sprintf("sumeris:state:%d", playerID)
}

// Encode serializes a save-state for storage. Resource amounts are
// truncated to their display precision here and nowhere else; in-memory
// accrual keeps full float precision.
func (r *Repository) Encode(s *State) ([]byte, error) {
	snapshot := *s
	snapshot.Resources = s.Resources.Truncate()
	snapshot.Produced = s.Produced.Truncate()

	data, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save-state: %w", err)
	}
	return data, nil
}

// SaveStateData upserts an encoded save-state and refreshes the cache.
func (r *Repository) SaveStateData(ctx context.Context, playerID int, data []byte) error {
	logger := r.logger.With(
		"component", "game_repository",
		"operation", "save_state",
		"player_id", playerID,
	)

	query := `
		INSERT INTO game_states (player_id, state, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (player_id) DO UPDATE SET state = $2, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, playerID, data); err != nil {
		logger.Error("Failed to save game state", "error", err)
		return fmt.Errorf("failed to save game state: %w", err)
	}

	if r.cache != nil {
		ttl := config.GlobalConfig.Redis.CacheTTL
		if err := r.cache.Set(ctx, cacheKey(playerID), data, ttl).Err(); err != nil {
			// Cache failures are not fatal; the database holds the truth
			logger.Warn("Failed to refresh save-state cache", "error", err)
		}
	}

	logger.Debug("Game state saved", "bytes", len(data))
	return nil
}

func (r *Repository) SaveState(ctx context.Context, playerID int, s *State) error {
	data, err := r.Encode(s)
	if err != nil {
		return err
	}
	return r.SaveStateData(ctx, playerID, data)
}

// LoadState returns the player's save-state, consulting the cache first.
func (r *Repository) LoadState(ctx context.Context, playerID int) (*State, error) {
	logger := r.logger.With(
		"component", "game_repository",
		"operation", "load_state",
		"player_id", playerID,
	)

	if r.cache != nil {
		data, err := r.cache.Get(ctx, cacheKey(playerID)).Bytes()
		if err == nil {
			var s State
			if err := json.Unmarshal(data, &s); err == nil {
				logger.Debug("Save-state served from cache")
				return &s, nil
			}
			logger.Warn("Corrupt save-state in cache, falling back to database", "error", err)
		}
	}

	var data []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT state FROM game_states WHERE player_id = $1`, playerID,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No save-state for player")
			return nil, errors.NotFoundf("no save-state for player %d", playerID)
		}
		logger.Error("Failed to load game state", "error", err)
		return nil, fmt.Errorf("failed to load game state: %w", err)
	}

	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Error("Failed to decode game state", "error", err)
		return nil, fmt.Errorf("failed to decode game state: %w", err)
	}

	if r.cache != nil {
		ttl := config.GlobalConfig.Redis.CacheTTL
		if err := r.cache.Set(ctx, cacheKey(playerID), data, ttl).Err(); err != nil {
			logger.Warn("Failed to populate save-state cache", "error", err)
		}
	}

	logger.Debug("Save-state loaded from database", "last_tick", s.LastTick.Format(time.RFC3339))
	return &s, nil
}

// DeleteState removes a player's save, clearing the cache entry too.
func (r *Repository) DeleteState(ctx context.Context, playerID int) error {
	logger := r.logger.With(
		"component", "game_repository",
		"operation", "delete_state",
		"player_id", playerID,
	)

	if _, err := r.db.ExecContext(ctx, `DELETE FROM game_states WHERE player_id = $1`, playerID); err != nil {
		logger.Error("Failed to delete game state", "error", err)
		return fmt.Errorf("failed to delete game state: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.Del(ctx, cacheKey(playerID)).Err(); err != nil {
			logger.Warn("Failed to evict save-state cache entry", "error", err)
		}
	}

	logger.Info("Game state deleted")
	return nil
}
