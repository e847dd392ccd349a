package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinedesk",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dinedesk",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	// Classified user intents
	IntentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinedesk",
			Subsystem: "assistant",
			Name:      "intents_total",
			Help:      "User messages by classified intent",
		},
		[]string{"intent"},
	)

	RepliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinedesk",
			Subsystem: "assistant",
			Name:      "replies_total",
			Help:      "Bot replies by message type",
		},
		[]string{"message_type"},
	)

	RejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinedesk",
			Subsystem: "assistant",
			Name:      "location_rejections_total",
			Help:      "Replies rejected because the user asked for an unserved city",
		},
		[]string{"city"},
	)

	PhraserFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dinedesk",
			Subsystem: "assistant",
			Name:      "phraser_failures_total",
			Help:      "LLM phrasing calls that failed and fell back to composed text",
		},
	)

	EventPublishFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinedesk",
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Chat events that could not be published",
		},
		[]string{"type"},
	)
)

func Handler() http.Handler {
	return promhttp.Handler()
}
