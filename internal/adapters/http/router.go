package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-link-service/internal/platform/config"
	"github.com/jsamuelsen/quote-link-service/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// CORS controls credentials and preflight caching.
	CORS config.CORSConfig

	// Static configures the static file fallback.
	Static config.StaticConfig

	// HealthHandler handles operational endpoints under /-/.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the quote collection.
	QuoteHandler *handlers.QuoteHandler

	// LinkHandler handles the URL shortener.
	LinkHandler *handlers.LinkHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - request-scoped logger
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - propagate caller correlation
//  5. CORS - answer preflights before any other work
//  6. OpenTelemetry - tracing and metrics
//  7. Logging - request logging (skips /-/ endpoints)
//
// Route groups:
//   - /-/ (internal): health, build info, metrics
//   - / (public): quotes, links, greeting
//
// Anything unmatched falls back to static files, then a JSON 404.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	serviceName := "quote-link-service"
	if cfg.AppConfig != nil && cfg.AppConfig.Name != "" {
		serviceName = cfg.AppConfig.Name
	}

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.CORS(middleware.CORSConfig{
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAge,
		}),
		telemetry.TracingMiddleware(serviceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	setupAPIRoutes(&engine.RouterGroup, cfg)

	noRoute := []gin.HandlerFunc{notFound}
	if cfg.Static.Enabled && cfg.Static.Dir != "" {
		noRoute = append([]gin.HandlerFunc{staticFallback(cfg.Static.Dir)}, noRoute...)
	}

	engine.NoRoute(noRoute...)
}

// setupAPIRoutes registers the public endpoints.
func setupAPIRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(rg)
	}

	if cfg.LinkHandler != nil {
		cfg.LinkHandler.RegisterLinkRoutes(rg)
	}

	rg.GET("/greet/:name", handlers.Greet)
}

// staticFallback serves files under dir for GET and HEAD requests.
// Directories serve their index.html. Missing files fall through.
func staticFallback(dir string) gin.HandlerFunc {
	serve := static.Serve("/", static.LocalFile(dir, false))

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			serve(c)
		}
	}
}

func notFound(c *gin.Context) {
	dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "resource not found")
}
