package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveComposition(t *testing.T) {
	m := NewMetric()
	m.ObserveComposition("edge_based", []string{"green", "quiet"}, []string{"unknown"})
	m.ObserveComposition("node_based", []string{"green"}, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.compositions.WithLabelValues("edge_based")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compositions.WithLabelValues("node_based")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.appliedModifiers.WithLabelValues("green")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appliedModifiers.WithLabelValues("quiet")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.skippedModifiers.WithLabelValues("unknown")))
}

func TestHandler(t *testing.T) {
	m := NewMetric()
	m.ObserveRequest("/api/computeRoutes", http.StatusOK, 20*time.Millisecond)
	m.IncConfigurationError()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `navigatorx_http_requests_total{code="200",route="/api/computeRoutes"} 1`)
	assert.Contains(t, string(body), "navigatorx_weighting_configuration_errors_total 1")
}
