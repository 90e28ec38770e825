package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/fixure/fixure-backend/internal/config"
	"github.com/fixure/fixure-backend/internal/metrics"
	"github.com/fixure/fixure-backend/internal/service/admin"
	"github.com/fixure/fixure-backend/internal/service/feedback"
	"github.com/fixure/fixure-backend/internal/service/pattern"
	"github.com/fixure/fixure-backend/internal/service/pulse"
	"github.com/fixure/fixure-backend/internal/store"
	"github.com/fixure/fixure-backend/internal/transport/middleware"
	"github.com/fixure/fixure-backend/internal/transport/rest"
)

// App is the fully wired application: storage, services and HTTP handler.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Storage *Storage
	Metrics *metrics.Metrics

	Feedback *feedback.Service
	Pulse    *pulse.Service
	Admin    *admin.Service

	limiter *middleware.RateLimiter
	handler http.Handler
}

// New opens storage and wires every service and the HTTP handler.
// Call Close when done.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	st, err := OpenStorage(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	m := metrics.New()
	feedbackStore := store.NewFeedbackStore(st.Backend, cfg.Storage.FeedbackSlot, log)
	pulseStore := store.NewPulseStore(st.Backend, cfg.Storage.PulseSlot, log)

	a := &App{
		Config:  cfg,
		Log:     log,
		Storage: st,
		Metrics: m,
	}
	cachePatterns := cfg.Storage.PatternCache
	if cachePatterns && !st.SeesAllWrites() {
		log.Warn("pattern cache disabled: storage can change without notice",
			slog.String("storage", st.Driver))
		cachePatterns = false
	}

	a.Feedback = feedback.NewService(log, feedbackStore, pattern.NewCache(cachePatterns), m)
	a.Pulse = pulse.NewService(log, pulseStore, m)
	a.Admin = admin.NewService(log, feedbackStore, pulseStore,
		store.NewLockedTx(st.Tx, feedbackStore, pulseStore), m, a.Feedback.InvalidatePatterns)
	a.handler = a.buildHandler()

	return a, nil
}

func (a *App) buildHandler() http.Handler {
	rt := rest.Routes{
		Health:   rest.NewHealthHandler(a.Storage, a.Storage.Driver, BuildVersion()),
		Feedback: rest.NewFeedbackHandler(a.Feedback, a.Log),
		Pulse:    rest.NewPulseHandler(a.Pulse, a.Log),
		Admin:    rest.NewAdminHandler(a.Admin, a.Log),
	}
	if a.Config.Metrics.Enabled {
		rt.Metrics = a.Metrics.Handler()
		rt.MetricsPath = a.Config.Metrics.Path
	}
	if a.Config.RateLimit.Enabled() {
		a.limiter = middleware.NewRateLimiter(a.Config.RateLimit, a.Log)
		rt.Submit = a.limiter.Limit()
	}

	return middleware.Server(a.Log, a.Metrics, a.Config.CORS)(rest.NewRouter(rt))
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close stops background work and releases storage.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return a.Storage.Close()
}

// Serve runs the HTTP server, plus the storage watcher when configured,
// until ctx is cancelled, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.Config.Server.Host, strconv.Itoa(a.Config.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.Config.Server.ShutdownTimeout)
		defer cancel()
		a.Log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if w := a.Storage.Watcher; w != nil {
		g.Go(func() error {
			return w.Watch(gctx, a.onExternalChange)
		})
	}

	return g.Wait()
}

// onExternalChange reacts to another process rewriting a slot.
func (a *App) onExternalChange(slot string) {
	a.Metrics.ExternalChange(slot)
	if slot == a.Config.Storage.FeedbackSlot {
		a.Feedback.InvalidatePatterns()
	}
	a.Log.Info("slot changed externally", slog.String("slot", slot))
}

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close application", slog.String("error", err.Error()))
		}
	}()

	if err := a.Serve(ctx); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
