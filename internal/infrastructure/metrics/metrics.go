package metrics

import (
	"time"

	"flat-allocation/internal/domain/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_operations_total",
			Help: "Allocation operations by name and outcome kind",
		},
		[]string{"operation", "outcome"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "allocation_operation_duration_seconds",
			Help: "Duration of allocation operations in seconds",
		},
		[]string{"operation"},
	)

	UnitsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "allocation_units_booked_total",
			Help: "Flat units booked per project and flat type",
		},
		[]string{"project", "flat_type"},
	)
)

// Observe records one finished operation.
func Observe(op string, start time.Time, err error) {
	OperationsTotal.WithLabelValues(op, errs.Kind(err)).Inc()
	OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
