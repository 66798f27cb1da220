package tactile

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func Test_MetricsExposed(t *testing.T) {
	var reg = prometheus.NewRegistry()
	var metrics = NewMetrics(reg)

	metrics.Frames.Add(128)
	metrics.Headroom.Set(3.5)

	var rec = httptest.NewRecorder()
	metricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tactile_mux_headroom 3.5")
	assert.Contains(t, rec.Body.String(), "tactile_mux_frames_total 128")
}
