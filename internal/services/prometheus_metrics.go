package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rateLookups          *prometheus.CounterVec
	rateSuggestions      prometheus.Counter
	chatAnswers          *prometheus.CounterVec
	aiCompletionDuration *prometheus.HistogramVec
	circuitBreakerState  *prometheus.GaugeVec
	leadsCaptured        prometheus.Counter
	leadCaptureFailures  prometheus.Counter
}

// NewPrometheusMetrics registers the service metrics on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		rateLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_lookups_total",
				Help: "Total number of business category rate lookups by resolution method",
			},
			[]string{"method"},
		),
		rateSuggestions: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rate_suggestions_total",
				Help: "Total number of autocomplete suggestion requests",
			},
		),
		chatAnswers: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chat_answers_total",
				Help: "Total number of chat answers by source",
			},
			[]string{"source"},
		),
		aiCompletionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ai_completion_duration_seconds",
				Help:    "AI completion call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		leadsCaptured: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "leads_captured_total",
				Help: "Total number of demo requests stored",
			},
		),
		leadCaptureFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "lead_capture_failures_total",
				Help: "Total number of demo requests that could not be stored",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "rate_lookup":
		if method := tags["method"]; method != "" {
			m.rateLookups.WithLabelValues(method).Inc()
		}
	case "rate_suggestions":
		m.rateSuggestions.Inc()
	case "chat_answer":
		if source := tags["source"]; source != "" {
			m.chatAnswers.WithLabelValues(source).Inc()
		}
	case "lead_captured":
		m.leadsCaptured.Inc()
	case "lead_capture_failed":
		m.leadCaptureFailures.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ai_completion_success":
		m.aiCompletionDuration.WithLabelValues("success").Observe(duration.Seconds())
	case "ai_completion_failed":
		m.aiCompletionDuration.WithLabelValues("failed").Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
