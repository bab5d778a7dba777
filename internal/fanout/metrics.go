package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fanout_queue_depth",
		Help: "Jobs waiting in the fanout backlog.",
	})
	jobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fanout_jobs_enqueued_total",
		Help: "Fanout jobs accepted onto the queue.",
	})
	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fanout_jobs_processed_total",
		Help: "Fanout jobs fully processed by workers.",
	})
	deliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fanout_delivery_failures_total",
		Help: "Per-follower feed writes that failed during fanout.",
	})
	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fanout_job_duration_seconds",
		Help:    "Wall time spent processing one fanout job.",
		Buckets: prometheus.DefBuckets,
	})
)
