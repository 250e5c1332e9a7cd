// Package http provides the HTTP adapter layer using Gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-link-service/internal/platform/config"
)

// Server runs one Gin engine behind a plaintext listener and, when a
// certificate is available, an HTTPS listener. Both share the engine and
// therefore the stores.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	tlsServer  *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger
}

// New creates the server. TLS is served only when tlsCfg is enabled and
// both the certificate and key files exist; otherwise the server runs
// plaintext only.
func New(cfg *config.ServerConfig, tlsCfg *config.TLSConfig, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(middleware.BodyLimit(cfg.MaxRequestSize))

	s := &Server{
		engine:     engine,
		httpServer: newHTTPServer(cfg, cfg.Port, engine),
		config:     cfg,
		logger:     logger,
	}

	tlsConfig, err := loadTLSConfig(tlsCfg)
	if err != nil {
		return nil, err
	}

	switch {
	case tlsConfig != nil:
		s.tlsServer = newHTTPServer(cfg, tlsCfg.Port, engine)
		s.tlsServer.TLSConfig = tlsConfig
	case tlsCfg != nil && tlsCfg.Enabled:
		logger.Warn("TLS certificate or key not found, serving plaintext only",
			slog.String("cert_file", tlsCfg.CertFile),
			slog.String("key_file", tlsCfg.KeyFile),
		)
	}

	return s, nil
}

func newHTTPServer(cfg *config.ServerConfig, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Engine returns the underlying Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the server configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// TLSEnabled reports whether the HTTPS listener will run.
func (s *Server) TLSEnabled() bool {
	return s.tlsServer != nil
}

// Start begins serving on every configured listener.
// Returns a channel that receives the first listener error and is closed
// once all listeners have stopped. This method is non-blocking.
//
// If one listener fails the others are closed, so the process never keeps
// running on half of its listeners.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	var g errgroup.Group

	g.Go(func() error {
		return s.serve(s.httpServer, "http", func() error { return s.httpServer.ListenAndServe() })
	})

	if s.tlsServer != nil {
		g.Go(func() error {
			return s.serve(s.tlsServer, "https", func() error { return s.tlsServer.ListenAndServeTLS("", "") })
		})
	}

	go func() {
		if err := g.Wait(); err != nil {
			errCh <- err
		}

		close(errCh)
	}()

	return errCh
}

func (s *Server) serve(srv *http.Server, scheme string, listen func() error) error {
	s.logger.Info("starting HTTP server",
		slog.String("scheme", scheme),
		slog.String("addr", srv.Addr),
		slog.Duration("read_timeout", s.config.ReadTimeout),
		slog.Duration("write_timeout", s.config.WriteTimeout),
	)

	err := listen()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	s.closeAll()

	return fmt.Errorf("%s server error: %w", scheme, err)
}

func (s *Server) servers() []*http.Server {
	if s.tlsServer == nil {
		return []*http.Server{s.httpServer}
	}

	return []*http.Server{s.httpServer, s.tlsServer}
}

func (s *Server) closeAll() {
	for _, srv := range s.servers() {
		_ = srv.Close()
	}
}

// Shutdown gracefully stops every listener, waiting for active connections
// to finish. The provided context controls the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")

	g, ctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers() {
		g.Go(func() error {
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("http server shutdown (%s): %w", srv.Addr, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// Addr returns the plaintext listener's address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// TLSAddr returns the HTTPS listener's address, or "" when TLS is off.
func (s *Server) TLSAddr() string {
	if s.tlsServer == nil {
		return ""
	}

	return s.tlsServer.Addr
}

