package repository

import "time"

// Metrics records operational counters for the model service.
type Metrics interface {
	RecordRowsGenerated(kind string, rows int)
	RecordError(kind string)
	RecordScaler(segment string, scaler float64)
	ObserveDuration(operation string, d time.Duration)
}

// NopMetrics discards all measurements. Useful in tests.
type NopMetrics struct{}

func (NopMetrics) RecordRowsGenerated(string, int)       {}
func (NopMetrics) RecordError(string)                    {}
func (NopMetrics) RecordScaler(string, float64)          {}
func (NopMetrics) ObserveDuration(string, time.Duration) {}
