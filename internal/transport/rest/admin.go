package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/admin"
)

// ConfirmHeader must carry ConfirmValue for DELETE /api/admin/data unless
// the request has ?confirm=true.
const (
	ConfirmHeader = "X-Confirm"
	ConfirmValue  = "clear-all-data"
)

type adminService interface {
	Stats(ctx context.Context) domain.Stats
	Export(ctx context.Context) domain.Snapshot
	SeedSampleData(ctx context.Context, mode admin.SeedMode) (admin.SampleData, error)
	ClearAll(ctx context.Context, confirmed bool) error
}

// AdminHandler serves the administrative endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats(r.Context()))
}

// Export handles GET /api/admin/export and sends the snapshot as a file
// download.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.Export(r.Context())
	data, err := admin.EncodeSnapshot(snap)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+admin.SnapshotFilename(snap.ExportDate)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type seedResponse struct {
	Mode     admin.SeedMode `json:"mode"`
	Feedback int            `json:"feedback"`
	Pulse    int            `json:"pulse"`
}

// Seed handles POST /api/admin/seed?mode=replace|append.
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	mode, err := admin.ParseSeedMode(r.URL.Query().Get("mode"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data, err := h.svc.SeedSampleData(r.Context(), mode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, seedResponse{
		Mode:     mode,
		Feedback: len(data.Feedback),
		Pulse:    len(data.Pulse),
	})
}

// Clear handles DELETE /api/admin/data. Without confirmation it answers 428.
func (h *AdminHandler) Clear(w http.ResponseWriter, r *http.Request) {
	confirmed := r.Header.Get(ConfirmHeader) == ConfirmValue || r.URL.Query().Get("confirm") == "true"

	if err := h.svc.ClearAll(r.Context(), confirmed); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
