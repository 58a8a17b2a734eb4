package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Montyshaa/Sumeris/internal/game"
	"github.com/Montyshaa/Sumeris/internal/shared/errors"
	"github.com/Montyshaa/Sumeris/internal/shared/response"
)

type PolicyHandler struct {
	service *game.Service
}

func NewPolicyHandler(service *game.Service) *PolicyHandler {
	return &PolicyHandler{service: service}
}

func (h *PolicyHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "activate_policy", h.service.ActivatePolicy)
}

func (h *PolicyHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "deactivate_policy", h.service.DeactivatePolicy)
}

func (h *PolicyHandler) apply(w http.ResponseWriter, r *http.Request, name string, fn cancelFunc) {
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

	policyID := r.PathValue("id")
	if policyID == "" {
		response.Error(w, r, logger, errors.Validation("policy id is required"))
		return
	}

	if err := fn(ctx, playerID, policyID); err != nil {
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
