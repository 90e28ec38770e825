package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fixure/fixure-backend/internal/domain"
	"github.com/fixure/fixure-backend/internal/service/feedback"
)

type feedbackService interface {
	Submit(ctx context.Context, input feedback.SubmitInput) (domain.FeedbackRecord, error)
	List(ctx context.Context, input feedback.ListInput) (feedback.ListResult, error)
	Dashboard(ctx context.Context, input feedback.ListInput) (feedback.DashboardResult, error)
	Get(ctx context.Context, id int64) (domain.FeedbackRecord, error)
	UpdateStatus(ctx context.Context, input feedback.UpdateStatusInput) (domain.FeedbackRecord, bool, error)
	AddSolution(ctx context.Context, input feedback.AddSolutionInput) (domain.FeedbackRecord, bool, error)
	Suggestions() []string
	Patterns(ctx context.Context) []domain.Pattern
}

// FeedbackHandler serves the feedback form, list and dashboard endpoints.
type FeedbackHandler struct {
	svc feedbackService
	log *slog.Logger
}

// NewFeedbackHandler creates a FeedbackHandler.
func NewFeedbackHandler(svc feedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{svc: svc, log: logger.With("handler", "feedback")}
}

// Submit handles POST /api/feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in feedback.SubmitInput
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

// List handles GET /api/feedback?category=&status=&scope=.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.List(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Dashboard handles GET /api/dashboard?category=&status=&scope=.
func (h *FeedbackHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Dashboard(r.Context(), listInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// Get handles GET /api/feedback/{id}.
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/feedback/{id}/status. An unknown id
// answers 204 and changes nothing.
func (h *FeedbackHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, found, err := h.svc.UpdateStatus(r.Context(), feedback.UpdateStatusInput{ID: id, Status: req.Status})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

type solutionRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// AddSolution handles POST /api/feedback/{id}/solutions. An unknown id
// answers 204 and changes nothing.
func (h *FeedbackHandler) AddSolution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	var req solutionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, found, err := h.svc.AddSolution(r.Context(), feedback.AddSolutionInput{
		ID:     id,
		Text:   req.Text,
		Author: req.Author,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Suggestions handles GET /api/feedback/suggestions.
func (h *FeedbackHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"suggestions": h.svc.Suggestions()})
}

// Patterns handles GET /api/patterns.
func (h *FeedbackHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.Pattern{"patterns": h.svc.Patterns(r.Context())})
}

func listInput(r *http.Request) feedback.ListInput {
	q := r.URL.Query()
	return feedback.ListInput{
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Scope:    q.Get("scope"),
	}
}
