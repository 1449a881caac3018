package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	rowsGenerated *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	pdScaler      *prometheus.GaugeVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		rowsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditforge_rows_generated_total",
				Help: "Total number of synthetic account rows generated",
			},
			[]string{"kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "creditforge_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		pdScaler: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "creditforge_pd_scaler",
				Help: "Current calibrated PD scaler per segment",
			},
			[]string{"segment"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "creditforge_operation_duration_seconds",
				Help:    "Duration of model operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordRowsGenerated records rows produced by a generator operation.
func (r *Recorder) RecordRowsGenerated(kind string, rows int) {
	r.rowsGenerated.WithLabelValues(kind).Add(float64(rows))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordScaler records the current PD scaler for a segment.
func (r *Recorder) RecordScaler(segment string, scaler float64) {
	r.pdScaler.WithLabelValues(segment).Set(scaler)
}

// ObserveDuration records the duration of a model operation.
func (r *Recorder) ObserveDuration(operation string, d time.Duration) {
	r.latency.WithLabelValues(operation).Observe(d.Seconds())
}
