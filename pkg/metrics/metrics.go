// Package metrics defines Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsPublished counts durable events appended to intent logs.
	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openintent_events_published_total",
		Help: "Durable events appended to intent event logs.",
	})

	// StreamSubscribers tracks currently attached stream subscribers.
	StreamSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "openintent_stream_subscribers",
		Help: "Currently attached event stream subscribers.",
	})

	// StreamEventsDropped counts live events evicted or skipped under backpressure.
	StreamEventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "openintent_stream_events_dropped_total",
		Help: "Live events evicted or skipped under subscriber backpressure.",
	}, []string{"policy"})

	// ToolInvocations counts tool broker invocations by outcome.
	ToolInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "openintent_tool_invocations_total",
		Help: "Tool broker invocations by result status.",
	}, []string{"status"})

	// LeasesExpired counts leases expired by the sweeper.
	LeasesExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openintent_leases_expired_total",
		Help: "Leases marked expired by the background sweeper.",
	})

	// VersionConflicts counts optimistic concurrency rejections.
	VersionConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "openintent_version_conflicts_total",
		Help: "Mutations rejected due to expected_version mismatch.",
	})
)
