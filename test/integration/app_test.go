//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/quote-link-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-link-service/internal/app"
	"github.com/jsamuelsen/quote-link-service/internal/platform/config"
	"github.com/jsamuelsen/quote-link-service/internal/ports"
)

// newRouter wires the full service in-process, the way cmd/service does,
// with empty stores and a private metrics registry.
func newRouter(t *testing.T) http.Handler {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	quoteStore := memory.NewQuoteStore()
	linkStore := memory.NewLinkStore()

	registry := prometheus.NewRegistry()
	require.NoError(t, memory.RegisterMetrics(registry, quoteStore, linkStore))

	health := ports.NewHealthRegistry()
	require.NoError(t, health.Register(quoteStore))
	require.NoError(t, health.Register(linkStore))

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger:    logger,
		AppConfig: &config.AppConfig{Name: "quote-link-service", Version: "test", Environment: "test"},
		CORS:      config.CORSConfig{AllowCredentials: true},
		HealthHandler: handlers.NewHealthHandler(health,
			handlers.NewBuildInfo("test", "integration", "now"), registry),
		QuoteHandler: handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
			Store: quoteStore, Logger: logger,
		})),
		LinkHandler: handlers.NewLinkHandler(app.NewLinkService(app.LinkServiceConfig{
			Store: linkStore, Logger: logger,
		}), ""),
	})

	return engine
}
