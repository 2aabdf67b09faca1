package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New()

	m.IncidentsIngested.WithLabelValues(ResultSuccess, "").Inc()
	m.IncidentsIngested.WithLabelValues(ResultFailure, "district_unresolved").Inc()
	m.HeatmapGenerations.WithLabelValues(ResultSuccess).Inc()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "urban_incidents_incidents_ingested_total")
	assert.Contains(t, w.Body.String(), `urban_incidents_incidents_ingested_total{reason="district_unresolved",result="failure"} 1`)
	assert.Contains(t, w.Body.String(), `urban_incidents_heatmap_generations_total{result="success"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
