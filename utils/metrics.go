package utils

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the instruments for supplier API traffic.
type Metrics struct {
	SupplierRequests *prometheus.CounterVec
	SupplierFailures *prometheus.CounterVec
	SupplierLatency  *prometheus.HistogramVec
}

// NewMetrics registers supplier call instruments on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SupplierRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "octo_supplier_requests_total",
			Help: "Total requests issued to the supplier API.",
		}, []string{"operation"}),
		SupplierFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "octo_supplier_failures_total",
			Help: "Supplier API requests that ended in a transport or API error.",
		}, []string{"operation"}),
		SupplierLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "octo_supplier_request_duration_seconds",
			Help:    "Latency of supplier API requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(m.SupplierRequests, m.SupplierFailures, m.SupplierLatency)
	return m
}

// ObserveSupplierCall records one supplier call outcome.
func (m *Metrics) ObserveSupplierCall(operation string, seconds float64, failed bool) {
	if m == nil {
		return
	}
	m.SupplierRequests.WithLabelValues(operation).Inc()
	m.SupplierLatency.WithLabelValues(operation).Observe(seconds)
	if failed {
		m.SupplierFailures.WithLabelValues(operation).Inc()
	}
}
