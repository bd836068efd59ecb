package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and recommendation Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lookbook",
			Name:      "search_requests_total",
			Help:      "Total number of search requests by scoring mode",
		},
		[]string{"mode"}, // "category" / "composite" / "vector_only"
	)

	SearchResultsRetained = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lookbook",
			Name:      "search_results_retained",
			Help:      "Number of candidates surviving the retention threshold",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
		[]string{"mode"},
	)

	RecommendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lookbook",
			Name:      "recommend_requests_total",
			Help:      "Total number of recommendation requests by flow",
		},
		[]string{"flow"}, // "by_product" / "by_text" / "by_image" / browse flows
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultsRetained)
	prometheus.MustRegister(RecommendRequestsTotal)
	searchMetricsRegistered = true
}
