package memory

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
)

// QuoteStore is an append-only, insertion-ordered quote collection.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	newID  IDFunc
}

// QuoteStoreOption configures a QuoteStore.
type QuoteStoreOption func(*QuoteStore)

// WithQuoteIDFunc overrides identifier generation.
// The function must never return the same value twice.
func WithQuoteIDFunc(fn IDFunc) QuoteStoreOption {
	return func(s *QuoteStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewQuoteStore creates an empty quote store.
func NewQuoteStore(opts ...QuoteStoreOption) *QuoteStore {
	s := &QuoteStore{
		quotes: make([]domain.Quote, 0),
		newID:  NewQuoteID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// List returns a snapshot of all quotes in insertion order.
func (s *QuoteStore) List(_ context.Context) []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)

	return out
}

// GetRandom returns a quote chosen uniformly from the current collection.
func (s *QuoteStore) GetRandom(_ context.Context) (domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.quotes) == 0 {
		return domain.Quote{}, domain.NewEmptyCollectionError("quotes")
	}

	return s.quotes[rand.IntN(len(s.quotes))], nil
}

// GetByID returns the quote with the given identifier.
func (s *QuoteStore) GetByID(_ context.Context, id string) (domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.quotes {
		if q.ID == id {
			return q, nil
		}
	}

	return domain.Quote{}, domain.NewNotFoundError("quote", id)
}

// Add appends a new quote and returns it with its assigned identifier.
func (s *QuoteStore) Add(_ context.Context, text, speaker string) domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := domain.Quote{
		ID:      s.newID(),
		Text:    text,
		Speaker: speaker,
	}
	s.quotes = append(s.quotes, q)

	return q
}

// Len returns the number of stored quotes.
func (s *QuoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Name implements ports.HealthChecker.
func (s *QuoteStore) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker. The store has no external
// dependencies; it only fails when the caller has given up.
func (s *QuoteStore) Check(ctx context.Context) error {
	return ctx.Err()
}
