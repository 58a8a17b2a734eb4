package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/middleware"
	"github.com/Montyshaa/Sumeris/internal/player"
	"github.com/Montyshaa/Sumeris/internal/shared/cookies"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

// MeHandler serves the authenticated player's own account: GET returns
// the profile, DELETE removes the account and its save.
type MeHandler struct {
	playerService *player.Service
	gameService   *game.Service
}

func NewMeHandler(playerService *player.Service, gameService *game.Service) *MeHandler {
	return &MeHandler{playerService: playerService, gameService: gameService}
}

func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodDelete:
		h.deleteAccount(w, r)
	default:
		logger := slog.With("handler", "me")
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
	}
}

func (h *MeHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "me")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	p, err := h.playerService.GetPlayerByID(ctx, claims.PlayerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, p)
}

func (h *MeHandler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "me", "operation", "delete_account")

	claims := middleware.GetUserFromContext(r)
	if claims == nil {
		response.Error(w, r, logger, errors.Unauthorized("authentication required"))
		return
	}

	// The save is removed first so the cached copy goes with it; the
	// database cascade only covers the row itself.
	if err := h.gameService.DeleteGame(ctx, claims.PlayerID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.playerService.DeletePlayer(ctx, claims.PlayerID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	cookies.ClearAuthCookie(w)
	logger.Info("Account deleted", "player_id", claims.PlayerID)
	response.Success(w, http.StatusOK, map[string]string{"status": "deleted"})
}
