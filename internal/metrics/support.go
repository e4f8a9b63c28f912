package metrics

import "github.com/prometheus/client_golang/prometheus"

// Support agent Prometheus metrics.
var (
	SupportQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqdesk",
			Name:      "support_queries_total",
			Help:      "Total number of answered support questions",
		},
		[]string{"outcome"}, // "matched" / "fallback"
	)

	SupportMatches = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "faqdesk",
			Name:      "support_matches",
			Help:      "Number of FAQ records quoted per answer",
			Buckets:   []float64{0, 1, 2, 3},
		},
	)

	SupportRejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqdesk",
			Name:      "support_rejected_total",
			Help:      "Support questions rejected by validation",
		},
		[]string{"reason"},
	)

	AnswerCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "faqdesk",
			Name:      "answer_cache_total",
			Help:      "Answer cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	KnowledgeBaseFAQs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "faqdesk",
			Name:      "knowledge_base_faqs",
			Help:      "Number of FAQ records loaded",
		},
	)
)

var supportMetricsRegistered bool

// RegisterSupportMetrics registers the support metrics. Must be called once from main.
func RegisterSupportMetrics() {
	if supportMetricsRegistered {
		return
	}
	prometheus.MustRegister(SupportQueriesTotal)
	prometheus.MustRegister(SupportMatches)
	prometheus.MustRegister(SupportRejectedTotal)
	prometheus.MustRegister(AnswerCacheTotal)
	prometheus.MustRegister(KnowledgeBaseFAQs)
	supportMetricsRegistered = true
}
