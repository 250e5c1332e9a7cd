package http

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jsamuelsen/quote-link-service/internal/platform/config"
)

// loadTLSConfig returns the listener TLS configuration, or nil when TLS is
// disabled or either PEM file is absent. A present but unreadable pair is
// an error.
func loadTLSConfig(cfg *config.TLSConfig) (*tls.Config, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil //nolint:nilnil // nil config means plaintext only
	}

	ok, err := filesExist(cfg.CertFile, cfg.KeyFile)
	if err != nil || !ok {
		return nil, err
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertFile, cfg.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("loading TLS key pair: %w", err)
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// filesExist reports whether every path names a regular file.
func filesExist(paths ...string) (bool, error) {
	for _, p := range paths {
		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("checking %s: %w", p, err)
		}

		if info.IsDir() {
			return false, nil
		}
	}

	return true, nil
}
