package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the guest-experience API
type Metrics struct {
	BookingsSubmitted    prometheus.Counter
	PaymentsDeclined     prometheus.Counter
	PreCheckInsCompleted prometheus.Counter
	RequestDuration      *prometheus.HistogramVec
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		BookingsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_submitted_total",
			Help:      "The total number of successfully submitted bookings",
		}),
		PaymentsDeclined: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_declined_total",
			Help:      "The total number of declined payment attempts",
		}),
		PreCheckInsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "precheckins_completed_total",
			Help:      "The total number of completed pre-check-in wizards",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
