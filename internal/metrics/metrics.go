// Package metrics owns the Prometheus registry and every collector the
// service exports.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fixure"

// Metrics is a private registry plus the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	feedbackSubmitted *prometheus.CounterVec
	statusChanges     *prometheus.CounterVec
	solutionsAdded    prometheus.Counter
	pulseSubmitted    prometheus.Counter
	adminOps          *prometheus.CounterVec
	externalChanges   *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// New creates a registry with Go runtime and process collectors plus the
// fixure collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		feedbackSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_submitted_total",
			Help:      "Feedback submissions by category and priority.",
		}, []string{"category", "priority"}),
		statusChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_status_changes_total",
			Help:      "Feedback status updates by new status.",
		}, []string{"status"}),
		solutionsAdded: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feedback_solutions_added_total",
			Help:      "Solutions appended to feedback records.",
		}),
		pulseSubmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pulse_submitted_total",
			Help:      "Pulse check submissions.",
		}),
		adminOps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_operations_total",
			Help:      "Administrative operations by kind.",
		}, []string{"op"}),
		externalChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_external_changes_total",
			Help:      "Slot changes made by other processes.",
		}, []string{"slot"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) FeedbackSubmitted(category, priority string) {
	m.feedbackSubmitted.WithLabelValues(category, priority).Inc()
}

func (m *Metrics) StatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) SolutionAdded() { m.solutionsAdded.Inc() }

func (m *Metrics) PulseSubmitted() { m.pulseSubmitted.Inc() }

func (m *Metrics) AdminOperation(op string) {
	m.adminOps.WithLabelValues(op).Inc()
}

func (m *Metrics) ExternalChange(slot string) {
	m.externalChanges.WithLabelValues(slot).Inc()
}

// ObserveHTTP records one finished request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
