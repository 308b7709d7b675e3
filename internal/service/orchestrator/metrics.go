package orchestrator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BulkRidersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bulk_riders_total",
			Help: "Riders processed by bulk workflow operations by result",
		},
		[]string{"workflow", "operation", "result"},
	)

	BulkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bulk_operation_duration_seconds",
			Help:    "Duration of bulk workflow operations",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"workflow", "operation"},
	)

	NotificationFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vendor_notification_failures_total",
			Help: "Vendor notifications that could not be published after commit",
		},
	)
)
