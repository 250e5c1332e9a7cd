package domain

// ShortLink associates a generated short code with a target URL.
type ShortLink struct {
	// Code is the fixed-length key into the link table.
	Code string

	// URL is the redirect target. It is stored as given, without validation.
	URL string
}
