package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

// QueueHandler serves the three build queues. Starting an order is a POST
// with a JSON body; cancelling is a DELETE with the order id in the path.
type QueueHandler struct {
	service *game.Service
}

func NewQueueHandler(service *game.Service) *QueueHandler {
	return &QueueHandler{service: service}
}

type startConstructionRequest struct {
	BuildingID string `json:"building_id"`
}

func (h *QueueHandler) StartConstruction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "start_construction")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	var req startConstructionRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if req.BuildingID == "" {
		response.Error(w, r, logger, errors.Validation("building_id is required"))
		return
	}

	if err := h.service.StartConstruction(ctx, playerID, req.BuildingID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view, err := h.service.GetState(ctx, playerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	response.Success(w, http.StatusCreated, view)
}

func (h *QueueHandler) CancelConstruction(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, "cancel_construction", h.service.CancelConstruction)
}

type startResearchRequest struct {
	ResearchID string `json:"research_id"`
}

func (h *QueueHandler) StartResearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "start_research")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	var req startResearchRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if req.ResearchID == "" {
		response.Error(w, r, logger, errors.Validation("research_id is required"))
		return
	}

	if err := h.service.StartResearch(ctx, playerID, req.ResearchID); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view, err := h.service.GetState(ctx, playerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	response.Success(w, http.StatusCreated, view)
}

func (h *QueueHandler) CancelResearch(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, "cancel_research", h.service.CancelResearch)
}

type startTrainingRequest struct {
	UnitID   string `json:"unit_id"`
	Quantity int    `json:"quantity"`
}

func (h *QueueHandler) StartTraining(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.With("handler", "start_training")

	if r.Method != http.MethodPost {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	var req startTrainingRequest
	if err := decodeBody(w, r, &req); err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if req.UnitID == "" {
		response.Error(w, r, logger, errors.Validation("unit_id is required"))
		return
	}

	if err := h.service.StartTraining(ctx, playerID, req.UnitID, req.Quantity); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view, err := h.service.GetState(ctx, playerID)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	response.Success(w, http.StatusCreated, view)
}

func (h *QueueHandler) CancelTraining(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, "cancel_training", h.service.CancelTraining)
}

type cancelFunc func(ctx context.Context, playerID int, orderID string) error

func (h *QueueHandler) cancel(w http.ResponseWriter, r *http.Request, name string, fn cancelFunc) {
	ctx := r.Context()
	logger := slog.With("handler", name)

	if r.Method != http.MethodDelete {
		response.Error(w, r, logger, errors.MethodNotAllowed(r.Method))
		return
	}

	playerID, err := sessionPlayerID(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	orderID := r.PathValue("id")
	if orderID == "" {
		response.Error(w, r, logger, errors.Validation("order id is required"))
		return
	}

	if err := fn(ctx, playerID, orderID); err != nil {
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

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Validation("invalid JSON in request body")
	}
	return nil
}
