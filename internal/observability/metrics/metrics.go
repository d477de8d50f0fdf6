package metrics

import "github.com/prometheus/client_golang/prometheus"

// AdvisorMetrics exposes counters/histograms for advisor request flows.
type AdvisorMetrics struct {
	requestsTotal    *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	searchDuration   prometheus.Histogram
}

func NewAdvisorMetrics(reg prometheus.Registerer) *AdvisorMetrics {
	m := &AdvisorMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: "advisor",
			Name:      "requests_total",
			Help:      "Total advisor requests by resolved intent",
		}, []string{"intent"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beauty",
			Subsystem: "advisor",
			Name:      "provider_failures_total",
			Help:      "Optional provider calls that failed or timed out",
		}, []string{"provider"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beauty",
			Subsystem: "advisor",
			Name:      "search_duration_seconds",
			Help:      "Latency of clinic searches run for advisor replies",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.providerFailures, m.searchDuration)
	return m
}

// ObserveRequest counts one advisor request with its resolved intent
// (command, search, llm, fallback, cached).
func (m *AdvisorMetrics) ObserveRequest(intent string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(intent).Inc()
}

// ObserveProviderFailure counts one failed optional-provider call.
func (m *AdvisorMetrics) ObserveProviderFailure(provider string) {
	if m == nil {
		return
	}
	m.providerFailures.WithLabelValues(provider).Inc()
}

// ObserveSearchDuration records the latency of one clinic search.
func (m *AdvisorMetrics) ObserveSearchDuration(seconds float64) {
	if m == nil {
		return
	}
	m.searchDuration.Observe(seconds)
}
