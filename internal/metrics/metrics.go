// Package metrics implements Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Message results.
const (
	ResultIgnored     = "ignored"
	ResultGated       = "gated"
	ResultDecodeError = "decode_error"
	ResultUnresolved  = "unresolved"
	ResultShown       = "shown"
	ResultPanic       = "panic"
	ResultDismissed   = "dismissed"
)

var (
	// MessagesTotal counts intercepted messages by request kind and what became of them
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encounter_messages_total",
			Help: "Total number of intercepted messages handled by the router",
		},
		[]string{"kind", "result"},
	)

	// MessageHandleSeconds measures time from delivery to sink call
	MessageHandleSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "encounter_message_handle_seconds",
			Help:    "Latency of decoding and assembling an encounter notification in seconds",
			Buckets: prometheus.ExponentialBuckets(0.000001, 2, 20), // 1µs to ~1s
		},
		[]string{"kind"},
	)

	// OutcomesTotal counts capture outcome events
	OutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encounter_outcomes_total",
			Help: "Total number of capture outcome events handled by the dismiss coordinator",
		},
		[]string{"status", "result"},
	)

	// EventBusPublishedTotal counts events accepted by the bus
	EventBusPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encounter_eventbus_published_total",
			Help: "Total number of events accepted by the event bus",
		},
		[]string{"topic"},
	)

	// EventBusDroppedTotal counts events rejected because a partition queue was full
	EventBusDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encounter_eventbus_dropped_total",
			Help: "Total number of events dropped by the event bus",
		},
		[]string{"topic"},
	)

	// IngestFramesTotal counts frames read from the ingest socket and Kafka
	IngestFramesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "encounter_ingest_frames_total",
			Help: "Total number of ingest frames by type and result",
		},
		[]string{"type", "result"},
	)

	// NotificationsThrottledTotal counts notifications dropped by the rate limit
	NotificationsThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "encounter_notifications_throttled_total",
			Help: "Total number of notifications dropped by the sink rate limit",
		},
	)

	// FeatureRunning is 1 while the feature holds its subscriptions
	FeatureRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "encounter_feature_running",
			Help: "Whether the encounter feature is running (0=stopped, 1=running)",
		},
	)
)
