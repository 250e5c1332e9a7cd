// Package domain contains core business entities and rules.
package domain

// Quote is a remark attributed to a speaker.
// Quotes are immutable once stored; the store assigns the ID.
type Quote struct {
	// ID is the store-assigned identifier. It is never reused.
	ID string

	// Text is what was said. An empty string is a valid value.
	Text string

	// Speaker is who said it.
	Speaker string
}
