// Package server boots the storefront HTTP server: config, database, cache,
// queue, event listeners, middleware stack and routes.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/storefront/app/jobs"
	"github.com/shashiranjanraj/storefront/app/routes"
	"github.com/shashiranjanraj/storefront/config"
	"github.com/shashiranjanraj/storefront/pkg/cache"
	"github.com/shashiranjanraj/storefront/pkg/database"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/metrics"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/migration"
	"github.com/shashiranjanraj/storefront/pkg/queue"
	"github.com/shashiranjanraj/storefront/pkg/reqid"
	"github.com/shashiranjanraj/storefront/pkg/router"
	"github.com/shashiranjanraj/storefront/pkg/schedule"
)

// Start boots every subsystem and serves until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}
	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}
	queue.UseDB(database.DB)

	if err := cache.Connect(); err != nil {
		// The API works without Redis; single-product reads just skip the cache.
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}
	if cache.RDB != nil {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	if uri := config.LogMongoURI(); uri != "" {
		if mh, err := logger.NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoColl()); err != nil {
			logger.Warn("mongo log handler unavailable", "error", err)
		} else {
			logger.L = slog.New(logger.NewMultiHandler(logger.L.Handler(), mh))
			slog.SetDefault(logger.L)
			defer mh.Close()
		}
	}

	jobs.RegisterListeners()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// In-process workers drain the queue alongside the API; run
	// `storefront queue:work` separately to scale them out.
	queue.StartWorkers(ctx, 2)

	schedule.Daily().Name("prune-failed-jobs").WithoutOverlapping().Run(func() {
		n, err := queue.PruneFailed(30 * 24 * time.Hour)
		if err != nil {
			logger.Warn("failed-job prune error", "error", err)
			return
		}
		if n > 0 {
			logger.Info("pruned failed jobs", "count", n)
		}
	})
	schedule.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           buildHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("storefront stopped")
	return nil
}

// buildHandler assembles the middleware stack and mounts the API.
//
// Stack (outermost → innermost):
//  1. Prometheus metrics — outermost for accurate total latency
//  2. Recovery           — catches panics before they kill the goroutine
//  3. Request ID         — inject unique ID before anything logs
//  4. Logger             — logs request_id from context
//  5. CORS               — set CORS headers
//  6. Rate limiter       — reject abusers early
func buildHandler() http.Handler {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus endpoint stays outside /api/v1 and outside auth.
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, database.DB)

	return r.Handler()
}

// Handler builds the full HTTP handler without starting a listener.
// Exposed for httptest-based integration tests.
func Handler() http.Handler {
	return buildHandler()
}
