package shipping

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	carrierRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "barfer",
		Subsystem: "shipping",
		Name:      "carrier_requests_total",
		Help:      "Total number of carrier rate requests by outcome.",
	}, []string{"carrier", "outcome"})

	carrierRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "barfer",
		Subsystem: "shipping",
		Name:      "carrier_request_duration_seconds",
		Help:      "Carrier rate request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"carrier"})

	fallbackServedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "barfer",
		Subsystem: "shipping",
		Name:      "fallback_served_total",
		Help:      "Total number of checkout rate lookups answered with static fallback rates.",
	})

	rateCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "barfer",
		Subsystem: "shipping",
		Name:      "rate_cache_hits_total",
		Help:      "Total number of checkout rate lookups served from cache.",
	})
)
