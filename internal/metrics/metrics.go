package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ProviderRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wordwizards_provider_requests_total",
		Help: "Total word provider requests",
	}, []string{"endpoint", "outcome"})
	CacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordwizards_cache_hits_total",
		Help: "Total word-of-day cache hits",
	})
	CacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wordwizards_cache_misses_total",
		Help: "Total word-of-day cache misses",
	})
)

func init() {
	prometheus.MustRegister(ProviderRequests, CacheHits, CacheMisses)
}

// IncProviderRequest records one provider call and its outcome ("ok",
// "empty", "unavailable" or "error").
func IncProviderRequest(endpoint, outcome string) {
	ProviderRequests.WithLabelValues(endpoint, outcome).Inc()
}
