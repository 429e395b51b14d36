package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/josh-kwaku/transfer-ledger/internal/domain"
)

const OutcomeOK = "ok"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "route"})

	OperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Ledger operations by outcome",
	}, []string{"operation", "outcome"})
)

// Outcome is the label recorded for err: "ok" on success, the domain error
// kind when there is one, "error" otherwise.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if kind := domain.KindOf(err); kind != "" {
		return string(kind)
	}
	return "error"
}

func RecordOperation(operation string, err error) {
	OperationsTotal.WithLabelValues(operation, Outcome(err)).Inc()
}
