//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fixure/fixure-backend/internal/adapter/postgres/testhelper"
	"github.com/fixure/fixure-backend/internal/app"
	"github.com/fixure/fixure-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	App    *app.App
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer wires the whole application against a PostgreSQL
// container (shared via testhelper) and starts it on a local port.
// Both slots are emptied first; tests in this package do not run in
// parallel because they share the database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{ShutdownTimeout: 5 * time.Second},
		Storage: config.StorageConfig{
			Driver:       config.DriverPostgres,
			FeedbackSlot: "fixure_feedback",
			PulseSlot:    "fixure_pulse",
			PatternCache: true,
		},
		Database: config.DatabaseConfig{
			DSN:             testhelper.DSN(t),
			MaxConns:        4,
			MinConns:        1,
			MaxConnLifetime: time.Hour,
			MaxConnIdleTime: time.Minute,
			AutoMigrate:     true,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "http://localhost:3000",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id,X-Confirm",
			MaxAge:         600,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	require.NoError(t, cfg.Validate())

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx := context.Background()
	a, err := app.New(ctx, cfg, logger)
	require.NoError(t, err)
	require.NoError(t, a.Admin.ClearAll(ctx, true))

	srv := httptest.NewServer(a.Handler())
	t.Cleanup(func() {
		srv.Close()
		require.NoError(t, a.Close())
	})

	return &testServer{URL: srv.URL, Client: srv.Client(), App: a}
}

// do sends a JSON request and returns the response. body may be nil.
func (ts *testServer) do(t *testing.T, method, path string, body any, header ...string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// decode reads a JSON response body into a T.
func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}
