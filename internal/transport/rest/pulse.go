package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/pulse"
)

type pulseService interface {
	Submit(ctx context.Context, input pulse.SubmitInput) (domain.PulseRecord, error)
	List(ctx context.Context) pulse.ListResult
}

// PulseHandler serves the weekly pulse endpoints.
type PulseHandler struct {
	svc pulseService
	log *slog.Logger
}

// NewPulseHandler creates a PulseHandler.
func NewPulseHandler(svc pulseService, logger *slog.Logger) *PulseHandler {
	return &PulseHandler{svc: svc, log: logger.With("handler", "pulse")}
}

// Submit handles POST /api/pulse.
func (h *PulseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in pulse.SubmitInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

// List handles GET /api/pulse.
func (h *PulseHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}
