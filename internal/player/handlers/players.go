package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/auth"
	"github.com/Montyshaa/Sumeris/internal/player"
	"github.com/Montyshaa/Sumeris/internal/shared/cookies"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

type createPlayerRequest struct {
	Name string `json:"name"`
}

// PlayersHandler registers a new player and immediately opens a session
// for them.
type PlayersHandler struct {
	playerService *player.Service
}

func NewPlayersHandler(playerService *player.Service) *PlayersHandler {
	return &PlayersHandler{playerService: playerService}
}

func (h *PlayersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "create_player")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid JSON in request body"))
		return
	}

	p, err := h.playerService.CreatePlayer(ctx, req.Name)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	token, err := auth.GenerateJWT(p.ID, p.Name)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to create session token", err))
		return
	}

	cookies.SetAuthCookie(w, token)

	logger.Info("Player created and session opened", "player_id", p.ID)
	response.Success(w, http.StatusCreated, p)
}
