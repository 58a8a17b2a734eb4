package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

type MissionHandler struct {
	service *game.Service
}

func NewMissionHandler(service *game.Service) *MissionHandler {
	return &MissionHandler{service: service}
}

func (h *MissionHandler) GetMissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "get_missions")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	missions, err := h.service.Missions(ctx, playerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if missions == nil {
		missions = []game.MissionState{}
	}

	response.Success(w, http.StatusOK, missions)
}

func (h *MissionHandler) AdvanceDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "advance_day")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.AdvanceDay(ctx, playerID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	missions, err := h.service.Missions(ctx, playerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, missions)
}
