package obs_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/cartprice/internal/obs"
)

func TestPricingMetricsReuseRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := obs.NewPricingMetrics("cartprice", registry)
	first.QuotesTotal.Inc()

	second := obs.NewPricingMetrics("cartprice", registry)
	second.QuotesTotal.Inc()

	require.Equal(t, 2.0, testutil.ToFloat64(first.QuotesTotal))
	second.CampaignsTotal.WithLabelValues("Books", "applied").Inc()
	require.Equal(t, 1.0, testutil.ToFloat64(first.CampaignsTotal.WithLabelValues("Books", "applied")))
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := obs.NewLoggerTo(&buf, "json", "debug")
	logger.Debug().Str("cart_id", "abc").Msg("pricing_quote")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "pricing_quote", entry["message"])
	require.Equal(t, "abc", entry["cart_id"])
	require.Equal(t, "debug", entry["level"])
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := obs.NewLoggerTo(&buf, "json", "nonsense")
	logger.Debug().Msg("hidden")
	require.Zero(t, buf.Len())
	logger.Info().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}
