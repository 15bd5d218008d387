package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "kafka_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of successfully processed orders",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order processing attempts",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "barfer",
			Subsystem: "kafka_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "barfer",
			Subsystem: "kafka_consumer",
			Name:      "orders_in_progress",
			Help:      "Number of orders currently being processed",
		},
	)
)

var (
	orderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "order_requests_total",
			Help:      "Total number of requests to get order by ID",
		},
		[]string{"status"},
	)

	orderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "order_request_duration_seconds",
			Help:      "Histogram of request durations for get order by ID",
			Buckets:   prometheus.DefBuckets,
		},
	)

	orderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "barfer",
			Subsystem: "http",
			Name:      "order_requests_in_progress",
			Help:      "Number of in-progress requests to get order by ID",
		},
	)
)

var (
	checkoutQuotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "checkout",
			Name:      "rate_quotes_total",
			Help:      "Checkout rate responses by source (live carrier quote or static fallback)",
		},
		[]string{"source"},
	)

	checkoutOptionsOffered = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "barfer",
			Subsystem: "checkout",
			Name:      "options_offered",
			Help:      "Number of shipping options offered per checkout quote",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 12},
		},
	)

	ordersCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "checkout",
			Name:      "orders_created_total",
			Help:      "Checkout order creation attempts by result",
		},
		[]string{"result"},
	)
)

var (
	balanceReportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "reports",
			Name:      "balance_requests_total",
			Help:      "Monthly balance report requests by result",
		},
		[]string{"result"},
	)

	balanceReportMonths = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "barfer",
			Subsystem: "reports",
			Name:      "balance_months",
			Help:      "Number of monthly rows returned per balance report",
			Buckets:   prometheus.LinearBuckets(0, 6, 7),
		},
	)

	salidaWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "ledger",
			Name:      "salida_writes_total",
			Help:      "Salida create, update and delete calls by result",
		},
		[]string{"op", "result"},
	)

	salidaAmountRecorded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "barfer",
			Subsystem: "ledger",
			Name:      "salida_amount_recorded_total",
			Help:      "Sum of amounts of newly recorded salidas by expense type",
		},
		[]string{"tipo"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersProcessed,
		ordersFailed,
		ordersDLQ,
		commitErrors,
		orderProcessingDuration,
		ordersInProgress,

		orderRequestTotal,
		orderRequestDuration,
		orderRequestsInProgress,

		checkoutQuotesTotal,
		checkoutOptionsOffered,
		ordersCreatedTotal,

		balanceReportsTotal,
		balanceReportMonths,
		salidaWritesTotal,
		salidaAmountRecorded,
	)
}
