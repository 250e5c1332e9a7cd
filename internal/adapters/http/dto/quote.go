package dto

import "github.com/jsamuelsen/quote-link-service/internal/domain"

// QuoteResponse is the JSON shape of a quote.
type QuoteResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
}

// CreateQuoteRequest is the body of POST /quotes. Both fields must be
// present; empty strings are accepted.
type CreateQuoteRequest struct {
	Text    *string `json:"text"    validate:"required"`
	Speaker *string `json:"speaker" validate:"required"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:      q.ID,
		Text:    q.Text,
		Speaker: q.Speaker,
	}
}

// NewQuoteListResponse converts a quote listing. An empty store yields an
// empty JSON array, never null.
func NewQuoteListResponse(quotes []domain.Quote) []QuoteResponse {
	resp := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		resp = append(resp, NewQuoteResponse(&quotes[i]))
	}

	return resp
}
