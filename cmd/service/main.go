// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-link-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-link-service/internal/app"
	"github.com/jsamuelsen/quote-link-service/internal/platform/config"
	"github.com/jsamuelsen/quote-link-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-link-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-link-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create the in-memory stores
	quoteStore := memory.NewQuoteStore()
	linkStore := memory.NewLinkStore(memory.WithCodeLength(cfg.Links.CodeLength))

	if err := memory.RegisterMetrics(prometheus.DefaultRegisterer, quoteStore, linkStore); err != nil {
		return err
	}

	// 6. Register the stores as health checkers
	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{quoteStore, linkStore} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	// 7. Create application services
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  quoteStore,
		Logger: logger,
	})
	quoteService.Seed(ctx, quoteSeeds(cfg.Quotes.Seed))

	linkService := app.NewLinkService(app.LinkServiceConfig{
		Store:  linkStore,
		Logger: logger,
	})

	// 8. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo, prometheus.DefaultGatherer)
	quoteHandler := handlers.NewQuoteHandler(quoteService)
	linkHandler := handlers.NewLinkHandler(linkService, cfg.Links.BaseURL,
		handlers.WithForwardedHeaders(cfg.Links.TrustForwardedHeaders))

	// 9. Create HTTP server (plaintext, plus HTTPS when a certificate exists)
	server, err := http.New(&cfg.Server, &cfg.TLS, logger)
	if err != nil {
		return fmt.Errorf("creating HTTP server: %w", err)
	}

	// 10. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		CORS:          cfg.CORS,
		Static:        cfg.Static,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
		LinkHandler:   linkHandler,
	})

	// 11. Start server (non-blocking)
	serverErr := server.Start()

	// 12. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

func quoteSeeds(seeds []config.QuoteSeed) []app.NewQuoteSeed {
	out := make([]app.NewQuoteSeed, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, app.NewQuoteSeed{Text: s.Text, Speaker: s.Speaker})
	}

	return out
}

// waitForShutdown blocks until a shutdown signal is received or a listener
// fails. It then performs graceful shutdown of every listener.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		logger.Warn("listeners stopped unexpectedly")

		return nil

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
