package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stayease/navbar/web/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.PageViews.WithLabelValues("/", "200").Inc()
	a.ActiveSessions.Inc()

	assert.InDelta(t, 1, testutil.ToFloat64(a.PageViews.WithLabelValues("/", "200")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.PageViews.WithLabelValues("/", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(a.ActiveSessions), 0)
}

func TestMetricsHandler(t *testing.T) {
	m := metrics.New()
	m.LiveEvents.WithLabelValues("scroll").Add(3)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `stayease_live_events_total{type="scroll"} 3`)
}
