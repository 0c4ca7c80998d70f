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

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/echuwok12/SplitPayment/internal/amqp"
	"github.com/echuwok12/SplitPayment/internal/auth"
	"github.com/echuwok12/SplitPayment/internal/config"
	"github.com/echuwok12/SplitPayment/internal/events"
	"github.com/echuwok12/SplitPayment/internal/ledger"
	"github.com/echuwok12/SplitPayment/internal/metrics"
	"github.com/echuwok12/SplitPayment/internal/models"
	"github.com/echuwok12/SplitPayment/internal/server"
	"github.com/echuwok12/SplitPayment/internal/storage/sqlite"
	"github.com/echuwok12/SplitPayment/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logging.Setup()
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logging.SetupWithLevel(level)

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if cfg.DemoUserID != "" {
		demo := &models.User{ID: cfg.DemoUserID, Email: cfg.DemoUserID + "@demo.local", DisplayName: cfg.DemoUserName}
		if err := store.EnsureUser(ctx, demo); err != nil {
			return err
		}
		slog.Info("Demo user ready", "user_id", cfg.DemoUserID)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret {
		slog.Warn("JWT_SECRET not set, using the development secret")
	}
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		p, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
		if err != nil {
			return err
		}
		defer func() {
			if err := p.Close(); err != nil {
				slog.Error("Failed to close AMQP publisher", "error", err)
			}
		}()
		publisher = p
		slog.Info("Publishing events", "exchange", cfg.AMQPExchange, "routing_key", cfg.AMQPRoutingKey)
	} else {
		slog.Info("Event publishing disabled - no AMQP_URL provided")
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	srv, err := server.New(server.Options{
		Ledger:        ledger.New(store, ledger.WithPublisher(publisher), ledger.WithMetrics(m)),
		Authenticator: auth.NewPasswordAuthenticator(store),
		JWTManager:    jwtManager,
		Health:        store,
		Metrics:       m,
		DemoUserID:    cfg.DemoUserID,
		StaticPath:    cfg.StaticPath,
	})
	if err != nil {
		return err
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(srv.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", httpServer.Addr, "url", "http://localhost"+httpServer.Addr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
