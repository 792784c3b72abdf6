//go:build unit

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("POST", "/api/bookings", "201", 0.2)
	RecordHTTPRequest("POST", "/api/bookings", "201", 0.1)
	RecordHTTPRequest("POST", "/api/bookings", "409", 0.05)

	assert.Equal(t, float64(2), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "201")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/api/bookings", "409")))
}

func TestRecordCancellation(t *testing.T) {
	CancellationsTotal.Reset()

	RecordCancellation("late")
	RecordCancellation("late")
	RecordCancellation("grace")

	assert.Equal(t, float64(2), testutil.ToFloat64(CancellationsTotal.WithLabelValues("late")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CancellationsTotal.WithLabelValues("grace")))
}

func TestRecordCreditsIssued(t *testing.T) {
	CreditsIssuedTotal.Reset()

	RecordCreditsIssued("purchase", 10)
	RecordCreditsIssued("cancellation_return", 1)

	assert.Equal(t, float64(10), testutil.ToFloat64(CreditsIssuedTotal.WithLabelValues("purchase")))
	assert.Equal(t, float64(1), testutil.ToFloat64(CreditsIssuedTotal.WithLabelValues("cancellation_return")))
}

func TestRecordLedgerInconsistency(t *testing.T) {
	before := testutil.ToFloat64(LedgerInconsistenciesTotal)
	RecordLedgerInconsistency()
	assert.Equal(t, before+1, testutil.ToFloat64(LedgerInconsistenciesTotal))
}

func TestRecordPanic(t *testing.T) {
	PanicsRecoveredTotal.Reset()

	RecordPanic("/api/bookings/:id/cancel")
	RecordPanic("")

	assert.Equal(t, float64(1), testutil.ToFloat64(PanicsRecoveredTotal.WithLabelValues("/api/bookings/:id/cancel")))
	assert.Equal(t, float64(1), testutil.ToFloat64(PanicsRecoveredTotal.WithLabelValues("unmatched")))
}
