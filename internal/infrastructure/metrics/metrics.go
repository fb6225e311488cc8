package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Operation metrics
	OperationsCreated *prometheus.CounterVec
	OperationErrors   *prometheus.CounterVec
	OperationDuration prometheus.Histogram
	OperationAmount   prometheus.Histogram

	// Balance metrics
	BalanceQueries    prometheus.Counter
	BalanceCacheHits  prometheus.Counter
	BalanceFoldLength prometheus.Histogram

	// Directory metrics
	UsersCreated prometheus.Counter
}

// OperationCreated implements usecase.MetricsRecorder.
func (m *Metrics) OperationCreated(kind string, amount float64, duration time.Duration) {
	m.OperationsCreated.WithLabelValues(kind).Inc()
	m.OperationAmount.Observe(amount)
	m.OperationDuration.Observe(duration.Seconds())
}

// OperationRejected implements usecase.MetricsRecorder.
func (m *Metrics) OperationRejected(reason string) {
	m.OperationErrors.WithLabelValues(reason).Inc()
}

// BalanceQueried implements usecase.MetricsRecorder.
func (m *Metrics) BalanceQueried(cacheHit bool, foldLength int) {
	m.BalanceQueries.Inc()
	if cacheHit {
		m.BalanceCacheHits.Inc()
		return
	}
	m.BalanceFoldLength.Observe(float64(foldLength))
}

// UserCreated implements usecase.MetricsRecorder.
func (m *Metrics) UserCreated() {
	m.UsersCreated.Inc()
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		OperationsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finvault_operations_created_total",
				Help: "Total number of ledger operations created by kind",
			},
			[]string{"kind"},
		),
		OperationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finvault_operation_errors_total",
				Help: "Total number of rejected operations by reason",
			},
			[]string{"reason"},
		),
		OperationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finvault_operation_duration_seconds",
			Help:    "Duration of operation creation including balance check",
			Buckets: prometheus.DefBuckets,
		}),
		OperationAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finvault_operation_amount",
			Help:    "Operation amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		BalanceQueries: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finvault_balance_queries_total",
			Help: "Total number of balance queries",
		}),
		BalanceCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finvault_balance_cache_hits_total",
			Help: "Total number of balance queries served from cache",
		}),
		BalanceFoldLength: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "finvault_balance_fold_operations",
			Help:    "Number of statement records folded per balance derivation",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
		}),

		UsersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "finvault_users_created_total",
			Help: "Total number of directory entries created",
		}),
	}
}
