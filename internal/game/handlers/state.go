package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

// StateHandler serves the full save-state snapshot, ticking the player's
// game to the present first.
type StateHandler struct {
	service *game.Service
}

func NewStateHandler(service *game.Service) *StateHandler {
	return &StateHandler{service: service}
}

func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "game_state")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view, err := h.service.GetState(ctx, playerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, view)
}
