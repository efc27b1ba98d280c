package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/zarinpal-oauth/pkg/logger"
	"github.com/dmitrymomot/zarinpal-oauth/pkg/oauth"
	"github.com/dmitrymomot/zarinpal-oauth/pkg/zarinpal"
)

type config struct {
	Address         string        `env:"ADDRESS" envDefault:":3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	Sentry          logger.SentryConfig
	Zarinpal        zarinpal.Config
}

func main() {
	if err := run(); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	log := logger.NewWithSentry(cfg.Sentry, logger.RequestIDExtractor())
	defer logger.FlushSentry(2 * time.Second)

	strategy := zarinpal.New(cfg.Zarinpal, verifyMerchant,
		oauth.WithLogger(log),
		oauth.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		oauth.WithTrustProxy(),
	)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           newRouter(strategy, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func newRouter(strategy oauth.Strategy, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	h := &authHandler{strategy: strategy, logger: log}
	r.Get("/auth/zarinpal", h.authenticate)
	r.Get("/auth/zarinpal/callback", h.authenticate)
	return r
}
