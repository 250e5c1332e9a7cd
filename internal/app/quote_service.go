// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
	"github.com/jsamuelsen/quote-link-service/internal/ports"
)

// QuoteService orchestrates quote use cases on top of a QuoteStore.
type QuoteService struct {
	store  ports.QuoteStore
	logger *slog.Logger
	inst   *instruments
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Store  ports.QuoteStore
	Logger *slog.Logger
}

// NewQuoteSeed is a quote to load at startup.
type NewQuoteSeed struct {
	Text    string
	Speaker string
}

// NewQuoteService creates a quote service. It panics if no store is given.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		store:  cfg.Store,
		logger: logger.With(slog.String("component", "app.QuoteService")),
		inst:   newInstruments("quotes"),
	}
}

// Seed appends the given quotes in order. Intended for startup.
func (s *QuoteService) Seed(ctx context.Context, seeds []NewQuoteSeed) {
	for _, seed := range seeds {
		s.store.Add(ctx, seed.Text, seed.Speaker)
	}

	if len(seeds) > 0 {
		s.logger.InfoContext(ctx, "seeded quotes", slog.Int("count", len(seeds)))
	}
}

// ListQuotes returns every stored quote in insertion order.
func (s *QuoteService) ListQuotes(ctx context.Context) []domain.Quote {
	ctx, span := s.inst.start(ctx, "QuoteService.ListQuotes")
	defer span.End()

	quotes := s.store.List(ctx)
	span.SetAttributes(attribute.Int("quotes.count", len(quotes)))
	s.inst.record(ctx, "list", nil)

	s.logger.DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes
}

// GetRandomQuote returns a uniformly selected quote.
func (s *QuoteService) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	ctx, span := s.inst.start(ctx, "QuoteService.GetRandomQuote")
	defer span.End()

	quote, err := s.store.GetRandom(ctx)
	s.inst.record(ctx, "random", err)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.InfoContext(ctx, "no quote to pick", slog.Any("error", err))

		return nil, err
	}

	span.SetAttributes(attribute.String("quote.id", quote.ID))

	return &quote, nil
}

// GetQuoteByID retrieves a specific quote by its identifier.
func (s *QuoteService) GetQuoteByID(ctx context.Context, id string) (*domain.Quote, error) {
	ctx, span := s.inst.start(ctx, "QuoteService.GetQuoteByID",
		attribute.String("quote.id", id),
	)
	defer span.End()

	quote, err := s.store.GetByID(ctx, id)
	s.inst.record(ctx, "get", err)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.logger.InfoContext(ctx, "quote lookup failed",
			slog.String("quote_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &quote, nil
}

// AddQuote stores a new quote and returns it with its assigned identifier.
func (s *QuoteService) AddQuote(ctx context.Context, text, speaker string) *domain.Quote {
	ctx, span := s.inst.start(ctx, "QuoteService.AddQuote")
	defer span.End()

	quote := s.store.Add(ctx, text, speaker)
	span.SetAttributes(attribute.String("quote.id", quote.ID))
	s.inst.record(ctx, "add", nil)

	s.logger.InfoContext(ctx, "quote added",
		slog.String("quote_id", quote.ID),
		slog.String("speaker", quote.Speaker),
	)

	return &quote
}
