package player

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Montyshaa/Sumeris/internal/shared/errors"
)

// Alphabet for join codes. Skips 0/O and 1/I to keep codes readable when
// shared out loud.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	logger.Debug("Initializing player service")

	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetPlayerByID(ctx context.Context, id int) (*Player, error) {
	return s.repo.GetPlayerByID(ctx, id)
}

func (s *Service) FindPlayerByCode(ctx context.Context, code string) (*Player, error) {
	return s.repo.FindPlayerByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *Service) GetPlayerCount(ctx context.Context) (int, error) {
	return s.repo.GetPlayerCount(ctx)
}

func (s *Service) DeletePlayer(ctx context.Context, id int) error {
	return s.repo.DeletePlayer(ctx, id)
}

// CreatePlayer registers a new named player and mints a join code.
func (s *Service) CreatePlayer(ctx context.Context, name string) (*Player, error) {
	logger := s.logger.With(
		"component", "player_service",
		"operation", "create",
		"name", name,
	)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("player name is required")
	}
	if len(name) > 32 {
		return nil, errors.Validation("player name must be 32 characters or fewer")
	}

	code, err := generateCode()
	if err != nil {
		logger.Error("Failed to generate join code", "error", err)
		return nil, fmt.Errorf("failed to generate join code: %w", err)
	}

	p, err := s.repo.CreatePlayer(ctx, name, code, nil, nil)
	if err != nil {
		logger.Error("Failed to create player", "error", err)
		return nil, err
	}

	logger.Info("Player registered", "player_id", p.ID)
	return p, nil
}

// FindOrCreatePlayerByOAuth maps a verified OAuth identity to a player,
// creating one on first sign-in.
func (s *Service) FindOrCreatePlayerByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*Player, error) {
	logger := s.logger.With(
		"component", "player_service",
		"operation", "find_or_create_oauth",
		"provider", provider,
		"email", email,
	)
	logger.Debug("Finding or creating player by OAuth")

	p, err := s.repo.FindPlayerByEmail(ctx, email)
	if err != nil && errors.GetType(err) != errors.ErrorTypeNotFound {
		logger.Error("Database error checking for player by email", "error", err)
		return nil, fmt.Errorf("database error: %w", err)
	}

	if p != nil {
		logger.Info("Found existing player by email", "player_id", p.ID)
		return p, nil
	}

	name := displayName
	if name == "" {
		name = nameFromEmail(email)
	}

	code, err := generateCode()
	if err != nil {
		logger.Error("Failed to generate join code", "error", err)
		return nil, fmt.Errorf("failed to generate join code: %w", err)
	}

	p, err = s.repo.CreatePlayer(ctx, name, code, &email, avatarURL)
	if err != nil {
		logger.Error("Failed to create player", "error", err)
		return nil, err
	}

	logger.Info("Created new player via OAuth", "player_id", p.ID, "provider", provider)
	return p, nil
}

func generateCode() (string, error) {
	b := make([]byte, codeLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
	}
	return string(b), nil
}

func nameFromEmail(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return "player"
}
