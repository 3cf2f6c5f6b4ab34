package metrics

import (
	"sync"
	"time"
)

// Observer is the process-wide metrics sink.
var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	Observer.prometheus.register()
}

// Metrics wraps the prometheus collectors behind a small facade.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrementForecasts counts one forecast request for the ticker and model.
func (m *Metrics) IncrementForecasts(ticker, model, outcome string) {
	m.prometheus.Forecasts.WithLabelValues(ticker, model, outcome).Inc()
}

// ObserveDuration records the wall time of a forecast request.
func (m *Metrics) ObserveDuration(model string, d time.Duration) {
	m.prometheus.Duration.WithLabelValues(model).Observe(d.Seconds())
}

// IncrementCacheHits counts one cache hit or miss.
func (m *Metrics) IncrementCacheHits(outcome string) {
	m.prometheus.CacheHits.WithLabelValues(outcome).Inc()
}
