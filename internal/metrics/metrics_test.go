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

func TestCounters(t *testing.T) {
	m := New()
	m.PageViews.WithLabelValues("ika").Inc()
	m.PageViews.WithLabelValues("ika").Inc()
	m.ContactResults.WithLabelValues("ok").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageViews.WithLabelValues("ika")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactResults.WithLabelValues("ok")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ActiveStreams.WithLabelValues("typing").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `portfolio_active_streams{stream="typing"} 1`)
}

func TestIndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
