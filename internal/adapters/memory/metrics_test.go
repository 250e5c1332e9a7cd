package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	quotes := NewQuoteStore()
	links := NewLinkStore()
	ctx := context.Background()

	require.NoError(t, RegisterMetrics(reg, quotes, links))

	quotes.Add(ctx, "a", "b")
	quotes.Add(ctx, "c", "d")
	links.Shorten(ctx, "https://example.com")

	expected := `
# HELP quotelink_links_stored Number of live short links currently held in memory.
# TYPE quotelink_links_stored gauge
quotelink_links_stored 1
# HELP quotelink_quotes_stored Number of quotes currently held in memory.
# TYPE quotelink_quotes_stored gauge
quotelink_quotes_stored 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"quotelink_quotes_stored", "quotelink_links_stored")
	assert.NoError(t, err)
}

func TestRegisterMetrics_Twice(t *testing.T) {
	reg := prometheus.NewRegistry()
	quotes := NewQuoteStore()
	links := NewLinkStore()

	require.NoError(t, RegisterMetrics(reg, quotes, links))

	err := RegisterMetrics(reg, quotes, links)
	assert.Error(t, err)
}
