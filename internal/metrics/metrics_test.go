package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.MarketsSettled.Inc()
	m.Sweeps.WithLabelValues("ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MarketsSettled))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "stockvote_markets_settled_total 1")
	assert.Contains(t, string(body), `stockvote_settlement_sweeps_total{result="ok"} 1`)
}

func TestNewRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.SettlementsDeferred.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.SettlementsDeferred))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SettlementsDeferred))
}
