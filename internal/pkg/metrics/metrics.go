package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_ledger_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "session_ledger_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_ledger_bookings_total",
			Help: "Booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	CancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_ledger_cancellations_total",
			Help: "Cancellations by classification",
		},
		[]string{"type"},
	)

	CreditsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_ledger_credits_issued_total",
			Help: "Credit units issued by source kind",
		},
		[]string{"source"},
	)

	DuplicatePurchasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_ledger_duplicate_purchase_deliveries_total",
			Help: "Purchase-completed deliveries that were already processed",
		},
	)

	LedgerInconsistenciesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "session_ledger_inconsistencies_total",
			Help: "Compensation failures that need manual reconciliation",
		},
	)

	CollaboratorFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_ledger_collaborator_failures_total",
			Help: "Suppressed failures of external collaborators",
		},
		[]string{"collaborator"},
	)

	PanicsRecoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_ledger_panics_recovered_total",
			Help: "Handler panics turned into 500 responses",
		},
		[]string{"path"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordCancellation(cancellationType string) {
	CancellationsTotal.WithLabelValues(cancellationType).Inc()
}

func RecordCreditsIssued(source string, units int) {
	CreditsIssuedTotal.WithLabelValues(source).Add(float64(units))
}

func RecordDuplicatePurchase() {
	DuplicatePurchasesTotal.Inc()
}

func RecordLedgerInconsistency() {
	LedgerInconsistenciesTotal.Inc()
}

func RecordCollaboratorFailure(collaborator string) {
	CollaboratorFailuresTotal.WithLabelValues(collaborator).Inc()
}

func RecordPanic(path string) {
	if path == "" {
		path = "unmatched"
	}
	PanicsRecoveredTotal.WithLabelValues(path).Inc()
}
