package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once       sync.Once
	collectors []prometheus.Collector
)

func init() {
	register(
		PaymentInitiateRequests,
		PaymentVerifyRequests,
		GatewayDuration,
	)
}

var (
	// result: ok|fail
	// reason (fail only): bad_json|missing_fields|method_not_allowed|gateway_http|no_reference|transport
	PaymentInitiateRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_initiate_requests_total",
			Help: "Count of /api/initiate-payment calls by result and reason.",
		},
		[]string{"result", "reason"},
	)

	// status: PENDING|COMPLETED|FAILED, or rejected for 4xx answers.
	// reason: ok|gateway_http|transport|missing_reference|method_not_allowed
	PaymentVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_verify_requests_total",
			Help: "Count of /api/verify-payment calls by normalized status and reason.",
		},
		[]string{"status", "reason"},
	)

	GatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_gateway_duration_seconds",
			Help:    "Latency of outbound SwiftWallet calls in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation"},
	)
)

func register(cs ...prometheus.Collector) {
	collectors = append(collectors, cs...)
}

// MustRegister registers all collectors with the default registry exactly once.
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(collectors...)
	})
}
