// Package memory provides the in-process quote and link stores.
//
// Each store owns a single lock covering its whole collection. All access
// goes through the store's methods; callers never see the underlying slice
// or map, so the locking discipline cannot be bypassed.
package memory

import (
	"github.com/google/uuid"
)

// DefaultCodeLength is the number of characters in a generated short code.
const DefaultCodeLength = 5

// IDFunc produces identifiers for new records.
type IDFunc func() string

// NewQuoteID returns a random UUID v4 string.
func NewQuoteID() string {
	return uuid.NewString()
}

// ShortCodeFunc returns an IDFunc that yields the first n characters of a
// fresh UUID v4 string. Codes are not checked against existing entries.
// n is clamped to the 8-character leading hex group.
func ShortCodeFunc(n int) IDFunc {
	if n <= 0 || n > 8 {
		n = DefaultCodeLength
	}

	return func() string {
		return uuid.NewString()[:n]
	}
}
