package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded    *prometheus.CounterVec
	transactionsRejected    *prometheus.CounterVec
	transactionsDeleted     prometheus.Counter
	transactionMutationTime prometheus.Histogram
	budgetsCreated          prometheus.Counter
	budgetsUpdated          prometheus.Counter
	budgetsDeleted          prometheus.Counter
	budgetsTracked          prometheus.Gauge
	sampleSeedsTotal        prometheus.Counter
	summaryRequestsTotal    prometheus.Counter
	summaryBuildTime        prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"kind"},
		),
		transactionsRejected: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_rejected_total",
				Help: "Total number of transaction mutations rejected by validation",
			},
			[]string{"operation"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		transactionMutationTime: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transaction_mutation_duration_milliseconds",
				Help:    "Transaction mutation duration in milliseconds, including budget refresh",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_budgets_created_total",
				Help: "Total number of budgets created",
			},
		),
		budgetsUpdated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_budgets_updated_total",
				Help: "Total number of budgets updated",
			},
		),
		budgetsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_budgets_deleted_total",
				Help: "Total number of budgets deleted",
			},
		),
		budgetsTracked: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_budgets_tracked",
				Help: "Current number of budgets under tracking",
			},
		),
		sampleSeedsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_sample_seeds_total",
				Help: "Total number of development sample data seeds",
			},
		),
		summaryRequestsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_summary_requests_total",
				Help: "Total number of dashboard summary requests",
			},
		),
		summaryBuildTime: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_summary_build_duration_milliseconds",
				Help:    "Dashboard summary build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction_recorded":
		kind := tags["kind"]
		if kind == "" {
			kind = "unknown"
		}
		m.transactionsRecorded.WithLabelValues(kind).Inc()
	case "transaction_rejected":
		operation := tags["operation"]
		if operation == "" {
			operation = "unknown"
		}
		m.transactionsRejected.WithLabelValues(operation).Inc()
	case "transaction_deleted":
		m.transactionsDeleted.Inc()
	case "budget_created":
		m.budgetsCreated.Inc()
	case "budget_updated":
		m.budgetsUpdated.Inc()
	case "budget_deleted":
		m.budgetsDeleted.Inc()
	case "sample_seed":
		m.sampleSeedsTotal.Inc()
	case "summary_request":
		m.summaryRequestsTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction_mutation":
		m.transactionMutationTime.Observe(float64(duration.Milliseconds()))
	case "summary_build":
		m.summaryBuildTime.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "budgets_tracked":
		m.budgetsTracked.Set(value)
	}
}
