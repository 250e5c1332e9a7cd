package memory

import (
	"context"
	"sync"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
)

// LinkStore maps short codes to target URLs.
type LinkStore struct {
	mu      sync.RWMutex
	links   map[string]string
	newCode IDFunc
}

// LinkStoreOption configures a LinkStore.
type LinkStoreOption func(*LinkStore)

// WithCodeFunc overrides short code generation.
func WithCodeFunc(fn IDFunc) LinkStoreOption {
	return func(s *LinkStore) {
		if fn != nil {
			s.newCode = fn
		}
	}
}

// WithCodeLength sets the length of generated codes.
func WithCodeLength(n int) LinkStoreOption {
	return func(s *LinkStore) {
		s.newCode = ShortCodeFunc(n)
	}
}

// NewLinkStore creates an empty link store.
func NewLinkStore(opts ...LinkStoreOption) *LinkStore {
	s := &LinkStore{
		links:   make(map[string]string),
		newCode: ShortCodeFunc(DefaultCodeLength),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Shorten stores url under a freshly generated code.
// A code that collides with a live entry replaces it.
func (s *LinkStore) Shorten(_ context.Context, url string) domain.ShortLink {
	code := s.newCode()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.links[code] = url

	return domain.ShortLink{Code: code, URL: url}
}

// Resolve returns the URL stored under code.
func (s *LinkStore) Resolve(_ context.Context, code string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	url, ok := s.links[code]
	if !ok {
		return "", domain.NewNotFoundError("short link", code)
	}

	return url, nil
}

// Delete removes the mapping for code.
func (s *LinkStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.links[code]; !ok {
		return domain.NewNotFoundError("short link", code)
	}

	delete(s.links, code)

	return nil
}

// Len returns the number of live mappings.
func (s *LinkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.links)
}

// Name implements ports.HealthChecker.
func (s *LinkStore) Name() string {
	return "link-store"
}

// Check implements ports.HealthChecker.
func (s *LinkStore) Check(ctx context.Context) error {
	return ctx.Err()
}
