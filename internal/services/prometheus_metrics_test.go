package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())

	metrics.IncrementCounter("rate_lookup", map[string]string{"method": "fuzzy"})
	metrics.IncrementCounter("rate_lookup", map[string]string{"method": "fuzzy"})
	metrics.IncrementCounter("rate_lookup", map[string]string{})
	metrics.IncrementCounter("rate_suggestions", nil)
	metrics.IncrementCounter("chat_answer", map[string]string{"source": "local"})
	metrics.IncrementCounter("lead_captured", nil)
	metrics.IncrementCounter("unknown_metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.rateLookups.WithLabelValues("fuzzy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.rateSuggestions))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.chatAnswers.WithLabelValues("local")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.leadsCaptured))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.leadCaptureFailures))
}

func TestPrometheusMetrics_GaugeAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)

	metrics.RecordGauge("circuit_breaker_state", float64(StateOpen), map[string]string{"service": "ai"})
	metrics.RecordProcessingTime("ai_completion_success", 150*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("ai")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.aiCompletionDuration))
}
