package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsSubmitted,
			Help: HelpTextItemsSubmitted,
		},
	)

	ItemsApproved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsApproved,
			Help: HelpTextItemsApproved,
		},
	)

	ItemsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRejected,
			Help: HelpTextItemsRejected,
		},
	)

	BorrowRequestsOpened = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBorrowRequestsOpened,
			Help: HelpTextBorrowRequestsOpened,
		},
	)

	BorrowRequestsClosed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBorrowRequestsClosed,
			Help: HelpTextBorrowRequestsClosed,
		},
		[]string{LabelOutcome},
	)

	BorrowRequestsOverdue = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBorrowRequestsOverdue,
			Help: HelpTextBorrowRequestsOverdue,
		},
	)

	PointsCreditedEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsCreditedEntries,
			Help: HelpTextPointsCreditedEntries,
		},
		[]string{LabelAction},
	)

	PointsCreditedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsCreditedTotal,
			Help: HelpTextPointsCreditedTotal,
		},
	)
)
