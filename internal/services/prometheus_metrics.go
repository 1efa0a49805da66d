package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ingestProcessed     *prometheus.CounterVec
	ingestDuration      prometheus.Histogram
	oracleRequests      *prometheus.CounterVec
	oracleFallbacks     *prometheus.CounterVec
	alertsRaised        *prometheus.CounterVec
	budgetIncrements    prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	readinessChecks     *prometheus.CounterVec
	profileRebuilds     *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		ingestProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_ingest_total",
				Help: "Total number of transaction ingestions",
			},
			[]string{"status", "cat_method"},
		),
		ingestDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_ingest_duration_milliseconds",
				Help:    "Transaction ingest duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		oracleRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoring_oracle_requests_total",
				Help: "Total number of scoring oracle requests",
			},
			[]string{"endpoint", "outcome"},
		),
		oracleFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scoring_oracle_fallbacks_total",
				Help: "Total number of ingestions that fell back to defaults",
			},
			[]string{"endpoint"},
		),
		alertsRaised: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alerts_raised_total",
				Help: "Total number of alerts raised by the pipeline",
			},
			[]string{"alert_type", "severity"},
		),
		budgetIncrements: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_increments_total",
				Help: "Total number of budget spend increments",
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		readinessChecks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investment_readiness_checks_total",
				Help: "Total number of investment readiness evaluations",
			},
			[]string{"verdict"},
		),
		profileRebuilds: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_profile_rebuilds_total",
				Help: "Total number of budget profile rebuilds",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ingest.processed.success":
		m.ingestProcessed.WithLabelValues("success", tags["cat_method"]).Inc()
	case "ingest.processed.failed":
		m.ingestProcessed.WithLabelValues("failed", tags["cat_method"]).Inc()
	case "oracle.request":
		m.oracleRequests.WithLabelValues(tags["endpoint"], tags["outcome"]).Inc()
	case "oracle.fallback":
		m.oracleFallbacks.WithLabelValues(tags["endpoint"]).Inc()
	case "alert.raised":
		m.alertsRaised.WithLabelValues(tags["alert_type"], tags["severity"]).Inc()
	case "budget.incremented":
		m.budgetIncrements.Inc()
	case "readiness.checked":
		m.readinessChecks.WithLabelValues(tags["verdict"]).Inc()
	case "profile.rebuilt":
		m.profileRebuilds.WithLabelValues(tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ingest.processing":
		m.ingestDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker.state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
