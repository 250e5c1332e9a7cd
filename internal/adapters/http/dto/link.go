package dto

import "github.com/jsamuelsen/quote-link-service/internal/domain"

// ShortenRequest is the body of POST /shorten. The URL is stored as given.
type ShortenRequest struct {
	URL *string `json:"url" validate:"required"`
}

// ShortenResponse is the JSON shape of a created short link.
type ShortenResponse struct {
	Short string `json:"short"`
	URL   string `json:"url"`
}

// NewShortenResponse converts a domain short link.
func NewShortenResponse(l *domain.ShortLink) ShortenResponse {
	return ShortenResponse{
		Short: l.Code,
		URL:   l.URL,
	}
}

// QRCodeQuery holds the optional query parameters of the QR endpoint.
type QRCodeQuery struct {
	Size int `form:"size" json:"size" validate:"omitempty,min=64,max=1024"`
}
