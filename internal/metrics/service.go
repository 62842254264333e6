package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ReviewsScrapedTotal counts scrape outcomes by status (success|error).
	ReviewsScrapedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ai_rating",
			Name:      "reviews_scraped_total",
			Help:      "Total number of scrape attempts by outcome",
		},
		[]string{"status"},
	)

	// ChatStreamChunksTotal counts completion chunks forwarded to clients.
	ChatStreamChunksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ai_rating",
			Name:      "chat_stream_chunks_total",
			Help:      "Total number of completion chunks forwarded downstream",
		},
	)

	// ChatStreamsTotal counts chat streams by terminal state (completed|aborted).
	ChatStreamsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ai_rating",
			Name:      "chat_streams_total",
			Help:      "Total number of chat streams by terminal state",
		},
		[]string{"state"},
	)
)

// RegisterServiceMetrics registers scrape and chat metrics explicitly (no init()).
func RegisterServiceMetrics() {
	prometheus.MustRegister(ReviewsScrapedTotal)
	prometheus.MustRegister(ChatStreamChunksTotal)
	prometheus.MustRegister(ChatStreamsTotal)
}
