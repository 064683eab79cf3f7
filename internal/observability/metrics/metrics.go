package metrics

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics exposes counters/histograms for the booking flow.
type BookingMetrics struct {
	createdTotal     *prometheus.CounterVec
	rejectedTotal    *prometheus.CounterVec
	availabilityHist *prometheus.HistogramVec
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		createdTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medibook",
			Subsystem: "bookings",
			Name:      "created_total",
			Help:      "Total bookings accepted",
		}, []string{"service_type"}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medibook",
			Subsystem: "bookings",
			Name:      "rejected_total",
			Help:      "Total booking submissions rejected",
		}, []string{"reason"}),
		availabilityHist: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medibook",
			Subsystem: "availability",
			Name:      "check_latency_seconds",
			Help:      "Latency of availability checks",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.rejectedTotal, m.availabilityHist)
	return m
}

func (m *BookingMetrics) ObserveCreated(serviceType string) {
	if m == nil {
		return
	}
	m.createdTotal.WithLabelValues(serviceType).Inc()
}

func (m *BookingMetrics) ObserveRejected(reason string) {
	if m == nil {
		return
	}
	m.rejectedTotal.WithLabelValues(reason).Inc()
}

func (m *BookingMetrics) ObserveAvailabilityCheck(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.availabilityHist.WithLabelValues(outcome).Observe(seconds)
}
