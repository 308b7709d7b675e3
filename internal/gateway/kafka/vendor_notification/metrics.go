package vendor_notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublishedMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_notification_messages_total",
			Help: "Total number of vendor notification messages by publish result",
		},
		[]string{"result"},
	)

	PublishRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vendor_notification_publish_retries_total",
			Help: "Total number of vendor notification publish calls that needed a retry",
		},
	)

	PublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vendor_notification_publish_duration_seconds",
			Help:    "Duration of vendor notification publishing including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
	)
)
