package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK           = "ok"
	outcomeAuthRequired = "auth_required"
	outcomeNetwork      = "network_error"
	outcomeAPI          = "api_error"
)

// Metrics - счетчики запросов к API
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics регистрирует метрики клиента в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campus_client",
			Name:      "requests_total",
			Help:      "API requests by path and outcome",
		}, []string{"path", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campus_client",
			Name:      "request_duration_seconds",
			Help:      "API request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *Metrics) observe(path, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, outcome).Inc()
	if outcome != outcomeAuthRequired {
		m.duration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
