package player

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Montyshaa/Sumeris/internal/shared/errors"
)

type Repository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRepository(db *sql.DB, logger *slog.Logger) *Repository {
	logger.Debug("Initializing player repository")

	return &Repository{
		db:     db,
		logger: logger,
	}
}

const playerColumns = "id, name, code, email, avatar_url, created_at, updated_at"

func scanPlayer(row *sql.Row) (*Player, error) {
	var p Player
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Code,
		&p.Email,
		&p.AvatarURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreatePlayer(ctx context.Context, name, code string, email, avatarURL *string) (*Player, error) {
	logger := r.logger.With(
		"component", "player_repository",
		"operation", "create",
		"name", name,
	)
	logger.Info("Creating new player")

	query := `
		INSERT INTO players (name, code, email, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + playerColumns

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, name, code, email, avatarURL))
	if err != nil {
		logger.Error("Failed to create player", "error", err)
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	logger.Info("Player created successfully", "player_id", p.ID, "code", p.Code)
	return p, nil
}

func (r *Repository) GetPlayerByID(ctx context.Context, id int) (*Player, error) {
	logger := r.logger.With(
		"component", "player_repository",
		"operation", "get_by_id",
		"player_id", id,
	)
	logger.Debug("Getting player by ID")

	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No player found with ID")
			return nil, errors.NotFoundf("player %d not found", id)
		}
		logger.Error("Database error getting player by ID", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	logger.Debug("Found player by ID", "name", p.Name)
	return p, nil
}

func (r *Repository) FindPlayerByCode(ctx context.Context, code string) (*Player, error) {
	logger := r.logger.With(
		"component", "player_repository",
		"operation", "find_by_code",
	)
	logger.Debug("Finding player by join code")

	query := `SELECT ` + playerColumns + ` FROM players WHERE code = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, code))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No player found with code")
			return nil, errors.NotFoundf("no player with that code")
		}
		logger.Error("Database error finding player by code", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	logger.Debug("Found player by code", "player_id", p.ID)
	return p, nil
}

func (r *Repository) FindPlayerByEmail(ctx context.Context, email string) (*Player, error) {
	logger := r.logger.With(
		"component", "player_repository",
		"operation", "find_by_email",
		"email", email,
	)
	logger.Debug("Finding player by email")

	query := `SELECT ` + playerColumns + ` FROM players WHERE email = $1`

	p, err := scanPlayer(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("No player found with email")
			return nil, errors.NotFoundf("no player with email %s", email)
		}
		logger.Error("Database error finding player by email", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	logger.Debug("Found player by email", "player_id", p.ID)
	return p, nil
}

func (r *Repository) DeletePlayer(ctx context.Context, id int) error {
	logger := r.logger.With(
		"component", "player_repository",
		"operation", "delete",
		"player_id", id,
	)
	logger.Info("Deleting player")

	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete player", "error", err)
		return fmt.Errorf("failed to delete player: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.Error("Failed to read delete result", "error", err)
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if affected == 0 {
		logger.Debug("No player found with ID")
		return errors.NotFoundf("player %d not found", id)
	}

	logger.Info("Player deleted successfully")
	return nil
}

func (r *Repository) GetPlayerCount(ctx context.Context) (int, error) {
	logger := r.logger.With("component", "player_repository", "operation", "get_count")
	logger.Debug("Getting total player count")

	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM players").Scan(&count)
	if err != nil {
		logger.Error("Failed to get player count", "error", err)
		return 0, fmt.Errorf("failed to get player count: %w", err)
	}

	logger.Debug("Player count retrieved", "count", count)
	return count, nil
}
