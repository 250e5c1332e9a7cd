// Package ports defines interfaces for the stores and health checks the
// application layer depends on. Adapters implement them; the app layer
// never sees a concrete collection or its lock.
//
// Port Design Principles:
//   - Context as first parameter for cancellation and tracing
//   - Return domain types, never adapter types
//   - Error returns use domain error types (ErrNotFound, ErrEmptyCollection)
package ports

import (
	"context"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
)

// QuoteStore owns the ordered quote collection.
//
// Implementations must make every method linearizable with respect to Add:
// concurrent callers observe a single total order of appends.
type QuoteStore interface {
	// List returns a copy of all quotes in insertion order.
	List(ctx context.Context) []domain.Quote

	// GetRandom returns a uniformly selected quote.
	// Returns domain.ErrEmptyCollection (which also matches ErrNotFound)
	// when the store is empty.
	GetRandom(ctx context.Context) (domain.Quote, error)

	// GetByID returns the quote with the given identifier.
	// Returns domain.ErrNotFound if no quote has that identifier.
	GetByID(ctx context.Context, id string) (domain.Quote, error)

	// Add appends a quote and returns it with its assigned identifier.
	Add(ctx context.Context, text, speaker string) domain.Quote

	// Len returns the number of stored quotes.
	Len() int
}

// LinkStore owns the short code to URL table.
type LinkStore interface {
	// Shorten generates a code for url, stores the mapping and returns it.
	// An existing mapping under the same code is overwritten.
	Shorten(ctx context.Context, url string) domain.ShortLink

	// Resolve returns the URL mapped to code.
	// Returns domain.ErrNotFound if the code is not mapped.
	Resolve(ctx context.Context, code string) (string, error)

	// Delete removes the mapping for code.
	// Returns domain.ErrNotFound if the code is not mapped.
	Delete(ctx context.Context, code string) error

	// Len returns the number of live mappings.
	Len() int
}
