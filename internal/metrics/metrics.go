// Package metrics содержит prometheus-метрики конвейера инцидентов и тепловых карт.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "urban_incidents"

// Исходы операций для меток result
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type Metrics struct {
	registry prometheus.Gatherer

	IncidentsIngested  *prometheus.CounterVec
	DetectionAttempts  prometheus.Histogram
	DetectionDuration  prometheus.Histogram
	HeatmapGenerations *prometheus.CounterVec
	HeatmapPoints      prometheus.Histogram
	PhotoUploads       *prometheus.CounterVec
}

// New создает и регистрирует метрики в собственном реестре
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		IncidentsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_ingested_total",
			Help:      "Incident ingestion attempts by outcome",
		}, []string{"result", "reason"}),
		DetectionAttempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detection_poll_attempts",
			Help:      "Result fetches needed per detection job",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		}),
		DetectionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "detection_duration_seconds",
			Help:      "Time from detection submit to usable result",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 8),
		}),
		HeatmapGenerations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "heatmap_generations_total",
			Help:      "Heatmap generation runs by outcome",
		}, []string{"result"}),
		HeatmapPoints: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "heatmap_points",
			Help:      "Occupied grid cells per completed heatmap",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		PhotoUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "photo_uploads_total",
			Help:      "Photo uploads by outcome",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.IncidentsIngested,
		m.DetectionAttempts,
		m.DetectionDuration,
		m.HeatmapGenerations,
		m.HeatmapPoints,
		m.PhotoUploads,
	)
	return m
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
