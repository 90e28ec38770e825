package rest

import (
	"net/http"

	"github.com/fixure/fixure-backend/internal/transport/middleware"
	"github.com/fixure/fixure-backend/pkg/ctxutil"
)

// Routes bundles every handler the router mounts.
type Routes struct {
	Health   *HealthHandler
	Feedback *FeedbackHandler
	Pulse    *PulseHandler
	Admin    *AdminHandler

	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string

	// Submit wraps the submission endpoints, typically with a rate limiter.
	Submit middleware.Middleware
}

// NewRouter registers all endpoints on a new ServeMux.
func NewRouter(rt Routes) *http.ServeMux {
	mux := http.NewServeMux()
	submit := rt.Submit
	if submit == nil {
		submit = middleware.Chain()
	}

	handle(mux, "GET /live", http.HandlerFunc(rt.Health.Live))
	handle(mux, "GET /ready", http.HandlerFunc(rt.Health.Ready))
	handle(mux, "GET /health", http.HandlerFunc(rt.Health.Health))
	if rt.Metrics != nil {
		handle(mux, "GET "+rt.MetricsPath, rt.Metrics)
	}

	handle(mux, "POST /api/feedback", submit(http.HandlerFunc(rt.Feedback.Submit)))
	handle(mux, "GET /api/feedback", http.HandlerFunc(rt.Feedback.List))
	handle(mux, "GET /api/feedback/suggestions", http.HandlerFunc(rt.Feedback.Suggestions))
	handle(mux, "GET /api/feedback/{id}", http.HandlerFunc(rt.Feedback.Get))
	handle(mux, "PATCH /api/feedback/{id}/status", http.HandlerFunc(rt.Feedback.UpdateStatus))
	handle(mux, "POST /api/feedback/{id}/solutions", submit(http.HandlerFunc(rt.Feedback.AddSolution)))
	handle(mux, "GET /api/dashboard", http.HandlerFunc(rt.Feedback.Dashboard))
	handle(mux, "GET /api/patterns", http.HandlerFunc(rt.Feedback.Patterns))

	handle(mux, "POST /api/pulse", submit(http.HandlerFunc(rt.Pulse.Submit)))
	handle(mux, "GET /api/pulse", http.HandlerFunc(rt.Pulse.List))

	handle(mux, "GET /api/admin/stats", http.HandlerFunc(rt.Admin.Stats))
	handle(mux, "GET /api/admin/export", http.HandlerFunc(rt.Admin.Export))
	handle(mux, "POST /api/admin/seed", http.HandlerFunc(rt.Admin.Seed))
	handle(mux, "DELETE /api/admin/data", http.HandlerFunc(rt.Admin.Clear))

	return mux
}

// handle registers h and records pattern as the request's route label.
func handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.SetRoute(r.Context(), pattern)
		h.ServeHTTP(w, r)
	}))
}
