package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"librarycatalog/internal/config"
	apphttp "librarycatalog/internal/http"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/library"
	"librarycatalog/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.LogLevel)
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	catalog, closeStore, err := store.Open(ctx, store.Options{
		Driver:      cfg.StorageDriver,
		CatalogFile: cfg.CatalogFile,
		DatabaseDSN: cfg.DatabaseDSN,
	})
	if err != nil {
		return err
	}
	defer closeStore()

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		logger.Info("catalog storage ready", "driver", cfg.StorageDriver, "dsn", config.RedactDSN(cfg.DatabaseDSN))
	default:
		logger.Info("catalog storage ready", "driver", cfg.StorageDriver, "path", cfg.CatalogFile)
	}

	svc := library.NewService(catalog,
		library.WithBorrowLimit(cfg.MaxBorrowedBooks),
		library.WithLogger(logger),
	)

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newHandler(cfg, svc, logger, limiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newHandler registers the routes and wraps them in the middleware chain,
// outermost first.
func newHandler(cfg config.Config, svc *library.Service, logger *slog.Logger, limiter *httpx.RateLimitMiddleware) http.Handler {
	router := http.NewServeMux()
	apphttp.RegisterRoutes(router, svc, logger)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		limiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
