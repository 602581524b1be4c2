package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PaymentAttempts counts individual provider attempts by outcome.
	PaymentAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_provider_attempts_total",
		Help: "Payment attempts per provider and status",
	}, []string{"provider", "status"})

	// RoutingOutcomes counts whole routing calls: success, all_failed or
	// no_methods.
	RoutingOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_routing_total",
		Help: "Smart routing calls by final outcome",
	}, []string{"outcome"})

	// OrdersProcessed counts process-order calls by resulting order status.
	OrdersProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_orders_processed_total",
		Help: "Processed payment orders by final status",
	}, []string{"status"})

	// OrderAmounts observes created order amounts in minor currency units.
	OrderAmounts = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_order_amount",
		Help:    "Created payment order amounts",
		Buckets: prometheus.ExponentialBuckets(100, 10, 7),
	}, []string{"country"})
)
