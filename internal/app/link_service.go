package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
	"github.com/jsamuelsen/quote-link-service/internal/ports"
)

// RedirectPathPrefix is the path under which short codes are resolved.
const RedirectPathPrefix = "/path/"

// DefaultQRSize is the edge length in pixels of generated QR codes.
const DefaultQRSize = 256

// LinkService orchestrates short link use cases on top of a LinkStore.
type LinkService struct {
	store  ports.LinkStore
	logger *slog.Logger
	inst   *instruments
}

// LinkServiceConfig contains configuration for the link service.
type LinkServiceConfig struct {
	Store  ports.LinkStore
	Logger *slog.Logger
}

// NewLinkService creates a link service. It panics if no store is given.
func NewLinkService(cfg LinkServiceConfig) *LinkService {
	if cfg.Store == nil {
		panic("app: LinkServiceConfig.Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &LinkService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.LinkService")),
		inst:   newInstruments("links"),
	}
}

// Shorten stores url under a newly generated short code.
func (s *LinkService) Shorten(ctx context.Context, url string) *domain.ShortLink {
	ctx, span := s.inst.start(ctx, "LinkService.Shorten")
	defer span.End()

	link := s.store.Shorten(ctx, url)
	span.SetAttributes(attribute.String("link.code", link.Code))
	s.inst.record(ctx, "shorten", nil)

	s.logger.InfoContext(ctx, "link shortened",
		slog.String("code", link.Code),
		slog.String("url", link.URL),
	)

	return &link
}

// Resolve returns the target URL for code.
func (s *LinkService) Resolve(ctx context.Context, code string) (string, error) {
	ctx, span := s.inst.start(ctx, "LinkService.Resolve",
		attribute.String("link.code", code),
	)
	defer span.End()

	url, err := s.store.Resolve(ctx, code)
	s.inst.record(ctx, "resolve", err)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.InfoContext(ctx, "short link not resolved", slog.String("code", code))

		return "", err
	}

	return url, nil
}

// Delete removes the mapping for code.
func (s *LinkService) Delete(ctx context.Context, code string) error {
	ctx, span := s.inst.start(ctx, "LinkService.Delete",
		attribute.String("link.code", code),
	)
	defer span.End()

	err := s.store.Delete(ctx, code)
	s.inst.record(ctx, "delete", err)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "short link deleted", slog.String("code", code))

	return nil
}

// QRCode renders a PNG QR code pointing at the redirect URL for code.
// base is the scheme and host the redirect is served from.
// Returns domain.ErrNotFound if the code is not mapped.
func (s *LinkService) QRCode(ctx context.Context, code, base string, size int) ([]byte, error) {
	ctx, span := s.inst.start(ctx, "LinkService.QRCode",
		attribute.String("link.code", code),
	)
	defer span.End()

	if _, err := s.store.Resolve(ctx, code); err != nil {
		s.inst.record(ctx, "qrcode", err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	if size <= 0 {
		size = DefaultQRSize
	}

	png, err := qrcode.Encode(RedirectURL(base, code), qrcode.Medium, size)
	s.inst.record(ctx, "qrcode", err)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("encoding qr code for %q: %w", code, err)
	}

	return png, nil
}

// RedirectURL joins base and the redirect path for code.
func RedirectURL(base, code string) string {
	return strings.TrimRight(base, "/") + RedirectPathPrefix + code
}
