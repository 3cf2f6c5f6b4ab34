package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus holds the raw collectors.
type Prometheus struct {
	Forecasts *prometheus.CounterVec
	Duration  *prometheus.HistogramVec
	CacheHits *prometheus.CounterVec
}

// NewPrometheusMetrics creates the collectors under the marketlens namespace.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Forecasts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "marketlens",
				Name:      "forecasts",
			}, []string{"ticker", "model", "outcome"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "marketlens",
				Name:      "forecast_duration_seconds",
				Buckets:   prometheus.DefBuckets,
			}, []string{"model"}),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "marketlens",
				Name:      "cache_hits",
			}, []string{"outcome"}),
	}
}

func (p Prometheus) register() {
	prometheus.MustRegister(p.Forecasts, p.Duration, p.CacheHits)
}
