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

type guestLoginRequest struct {
	Code string `json:"code"`
}

// GuestLoginHandler exchanges a join code for a session cookie.
type GuestLoginHandler struct {
	playerService *player.Service
}

func NewGuestLoginHandler(playerService *player.Service) *GuestLoginHandler {
	return &GuestLoginHandler{playerService: playerService}
}

func (h *GuestLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "guest_login")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	var req guestLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.Validation("invalid JSON in request body"))
		return
	}
	if req.Code == "" {
		response.Error(w, r, logger, errors.Validation("join code is required"))
		return
	}

	p, err := h.playerService.FindPlayerByCode(ctx, req.Code)
	if err != nil {
		if errors.GetType(err) == errors.ErrorTypeNotFound {
			response.Error(w, r, logger, errors.Unauthorized("unknown join code"))
			return
		}
		response.Error(w, r, logger, err)
		return
	}

	token, err := auth.GenerateJWT(p.ID, p.Name)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to create session token", err))
		return
	}

	cookies.SetAuthCookie(w, token)

	logger.Info("Guest login successful", "player_id", p.ID)
	response.Success(w, http.StatusOK, p)
}
