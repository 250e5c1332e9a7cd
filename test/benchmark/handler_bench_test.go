package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httpadapter "github.com/jsamuelsen/quote-link-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-link-service/internal/adapters/memory"
	"github.com/jsamuelsen/quote-link-service/internal/app"
	"github.com/jsamuelsen/quote-link-service/internal/ports"
)

func init() {
	// Set Gin to release mode for accurate benchmarks
	gin.SetMode(gin.ReleaseMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createGinContext creates a Gin context for handler testing.
func createGinContext(w http.ResponseWriter, r *http.Request) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = r
	return c
}

// setupRouter wires the quote and link handlers behind the full middleware
// chain, with quotes pre-seeded.
func setupRouter(b *testing.B, seed int) (*gin.Engine, *memory.LinkStore) {
	b.Helper()

	quoteStore := memory.NewQuoteStore()
	for i := range seed {
		quoteStore.Add(context.Background(), "quote "+strconv.Itoa(i), "speaker")
	}

	linkStore := memory.NewLinkStore()
	logger := discardLogger()

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		Logger: logger,
		QuoteHandler: handlers.NewQuoteHandler(app.NewQuoteService(app.QuoteServiceConfig{
			Store: quoteStore, Logger: logger,
		})),
		LinkHandler: handlers.NewLinkHandler(app.NewLinkService(app.LinkServiceConfig{
			Store: linkStore, Logger: logger,
		}), ""),
	})

	return engine, linkStore
}

// BenchmarkListQuotes measures a full listing through the middleware chain.
func BenchmarkListQuotes(b *testing.B) {
	for _, size := range []int{10, 1000} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			router, _ := setupRouter(b, size)
			req := httptest.NewRequest(http.MethodGet, "/quotes", http.NoBody)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				router.ServeHTTP(httptest.NewRecorder(), req)
			}
		})
	}
}

// BenchmarkRandomQuote measures random selection under concurrent readers.
func BenchmarkRandomQuote(b *testing.B) {
	router, _ := setupRouter(b, 1000)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/quote", http.NoBody))
		}
	})
}

// BenchmarkAddQuote measures appends contending on the store lock.
func BenchmarkAddQuote(b *testing.B) {
	router, _ := setupRouter(b, 0)
	body := `{"text":"Bazinga, punk!","speaker":"Sheldon Cooper"}`

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(httptest.NewRecorder(), req)
		}
	})
}

// BenchmarkShortenAndResolve measures the shortener's write and redirect paths.
func BenchmarkShortenAndResolve(b *testing.B) {
	router, links := setupRouter(b, 0)
	code := links.Shorten(context.Background(), "https://example.com").Code

	b.Run("shorten", func(b *testing.B) {
		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{"url":"https://example.com"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(httptest.NewRecorder(), req)
		}
	})

	b.Run("resolve", func(b *testing.B) {
		req := httptest.NewRequest(http.MethodGet, "/path/"+code, http.NoBody)

		b.ReportAllocs()

		for i := 0; i < b.N; i++ {
			router.ServeHTTP(httptest.NewRecorder(), req)
		}
	})
}

// BenchmarkLivenessHandler measures the performance of the liveness endpoint.
// This is a critical path for Kubernetes probes and should be extremely fast.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := handlers.NewHealthHandler(ports.NewHealthRegistry(),
		handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z"), nil)
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithStores measures readiness with both stores registered.
func BenchmarkReadinessHandler_WithStores(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(memory.NewQuoteStore())
	_ = registry.Register(memory.NewLinkStore())

	handler := handlers.NewHealthHandler(registry,
		handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z"), nil)
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c := createGinContext(w, req)
		handler.Readiness(c)
	}
}
