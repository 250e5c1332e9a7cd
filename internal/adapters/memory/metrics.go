package memory

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// RegisterMetrics exposes store sizes as Prometheus gauges on reg.
// Sizes are read under each store's lock at scrape time.
func RegisterMetrics(reg prometheus.Registerer, quotes *QuoteStore, links *LinkStore) error {
	collectors := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "quotelink",
			Subsystem: "quotes",
			Name:      "stored",
			Help:      "Number of quotes currently held in memory.",
		}, func() float64 { return float64(quotes.Len()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "quotelink",
			Subsystem: "links",
			Name:      "stored",
			Help:      "Number of live short links currently held in memory.",
		}, func() float64 { return float64(links.Len()) }),
	}

	var errs []error

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registering store metrics: %w", errors.Join(errs...))
	}

	return nil
}
