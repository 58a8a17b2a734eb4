package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/player"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

type GameStatusResponse struct {
	Game        string `json:"game"`
	TutorialLen int    `json:"tutorial_days"`
	Players     int    `json:"players"`
}

type GameStatusHandler struct {
	playerService *player.Service
	tutorialDays  int
}

func NewGameStatusHandler(playerService *player.Service, tutorialDays int) *GameStatusHandler {
	return &GameStatusHandler{
		playerService: playerService,
		tutorialDays:  tutorialDays,
	}
}

func (h *GameStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "game_status")

	playerCount, err := h.playerService.GetPlayerCount(ctx)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to get player count", err))
		return
	}

	resp := GameStatusResponse{
		Game:        "Sumeris",
		TutorialLen: h.tutorialDays,
		Players:     playerCount,
	}

	response.Success(w, http.StatusOK, resp)
}
