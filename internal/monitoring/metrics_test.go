package monitoring

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_Independent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.FramesDropped.Inc()
	a.FramesDropped.Inc()
	a.StaleResults.WithLabelValues("decode").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(a.FramesDropped))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.FramesDropped))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.StaleResults.WithLabelValues("decode")))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics()
	m.FramesDecoded.Add(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "trackcore_frames_decoded_total 3"))
}
