// Package metrics provides Prometheus metrics for observability.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"ai-intro-scoring-service/internal/models"
)

const namespace = "ai_intro_scoring"

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// Scoring metrics
	ScoringTotal     prometheus.Counter
	ScoringDuration  prometheus.Histogram
	EmptyTranscripts prometheus.Counter
	InputErrors      prometheus.Counter
	TotalScore       prometheus.Histogram
	CategoryScore    *prometheus.HistogramVec

	// Capability metrics
	CapabilityLatency   *prometheus.HistogramVec
	CapabilityErrors    *prometheus.CounterVec
	CapabilityFallbacks *prometheus.CounterVec

	// Kafka publish metrics
	KafkaPublishTotal   *prometheus.CounterVec
	KafkaPublishErrors  *prometheus.CounterVec
	KafkaPublishLatency *prometheus.HistogramVec
}

// DefaultMetrics is the global metrics instance.
var DefaultMetrics = NewMetrics()

// NewMetrics creates and registers all Prometheus metrics. Call once per
// process; DefaultMetrics covers normal use.
func NewMetrics() *Metrics {
	return &Metrics{
		ScoringTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scorings_total",
			Help:      "Total number of scoring calls completed",
		}),
		ScoringDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      "Duration of scoring calls in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		}),
		EmptyTranscripts: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "empty_transcripts_total",
			Help:      "Total number of empty transcripts scored",
		}),
		InputErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_errors_total",
			Help:      "Total number of scoring calls rejected for invalid input",
		}),
		TotalScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "total_score",
			Help:      "Distribution of final scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		CategoryScore: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "category_score",
			Help:      "Distribution of per-category awarded points",
			Buckets:   []float64{2, 5, 10, 15, 20, 25, 30, 35, 40},
		}, []string{"category"}),

		CapabilityLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "capability_latency_seconds",
			Help:      "External capability call latency in seconds",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"capability"}),
		CapabilityErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_errors_total",
			Help:      "Total number of external capability call failures",
		}, []string{"capability"}),
		CapabilityFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capability_fallbacks_total",
			Help:      "Total number of times a degraded fallback value was substituted",
		}, []string{"capability"}),

		KafkaPublishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_total",
			Help:      "Total number of Kafka messages published",
		}, []string{"topic"}),
		KafkaPublishErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_publish_errors_total",
			Help:      "Total number of Kafka publish errors",
		}, []string{"topic"}),
		KafkaPublishLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kafka_publish_latency_seconds",
			Help:      "Kafka publish latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"topic"}),
	}
}

// RecordScoring records a completed scoring call and its score distribution.
func (m *Metrics) RecordScoring(report *models.Report, durationSeconds float64) {
	m.ScoringTotal.Inc()
	m.ScoringDuration.Observe(durationSeconds)
	m.TotalScore.Observe(report.TotalScore)
	for _, c := range report.Categories {
		m.CategoryScore.WithLabelValues(c.Name).Observe(c.Awarded)
	}
}

// RecordEmptyTranscript records an empty transcript being scored.
func (m *Metrics) RecordEmptyTranscript() {
	m.EmptyTranscripts.Inc()
}

// RecordInputError records a rejected scoring call.
func (m *Metrics) RecordInputError() {
	m.InputErrors.Inc()
}

// RecordCapabilityCall records an external capability call.
func (m *Metrics) RecordCapabilityCall(capability string, err error, latencySeconds float64) {
	m.CapabilityLatency.WithLabelValues(capability).Observe(latencySeconds)
	if err != nil {
		m.CapabilityErrors.WithLabelValues(capability).Inc()
	}
}

// RecordCapabilityFallback records a fallback value being substituted.
func (m *Metrics) RecordCapabilityFallback(capability string) {
	m.CapabilityFallbacks.WithLabelValues(capability).Inc()
}

// RecordKafkaPublish records a Kafka publish attempt.
func (m *Metrics) RecordKafkaPublish(topic string, err error, latencySeconds float64) {
	m.KafkaPublishTotal.WithLabelValues(topic).Inc()
	m.KafkaPublishLatency.WithLabelValues(topic).Observe(latencySeconds)
	if err != nil {
		m.KafkaPublishErrors.WithLabelValues(topic).Inc()
	}
}
