package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

type TerritoryHandler struct {
	service *game.Service
}

func NewTerritoryHandler(service *game.Service) *TerritoryHandler {
	return &TerritoryHandler{service: service}
}

func (h *TerritoryHandler) Explore(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "explore_territory", h.service.ExploreTerritory)
}

func (h *TerritoryHandler) Control(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "control_territory", h.service.ControlTerritory)
}

// Scout returns a read-only intelligence estimate; it never mutates the
// save beyond the tick.
func (h *TerritoryHandler) Scout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "scout_territory")

	if r.Method != http.MethodGet {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	territoryID := r.PathValue("id")
	if territoryID == "" {
		response.Error(w, r, logger, errors.Validation("territory id is required"))
		return
	}

	report, err := h.service.ScoutTerritory(ctx, playerID, territoryID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, report)
}

func (h *TerritoryHandler) apply(w http.ResponseWriter, r *http.Request, name string, fn cancelFunc) {
	ctx := r.Context()
	logger := slog.With("handler", name)

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	territoryID := r.PathValue("id")
	if territoryID == "" {
		response.Error(w, r, logger, errors.Validation("territory id is required"))
		return
	}

	if err := fn(ctx, playerID, territoryID); err != nil {
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
