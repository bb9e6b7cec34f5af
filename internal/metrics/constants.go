package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsSubmitted        = "items_submitted_total"
	MetricNameItemsApproved         = "items_approved_total"
	MetricNameItemsRejected         = "items_rejected_total"
	MetricNameBorrowRequestsOpened  = "borrow_requests_opened_total"
	MetricNameBorrowRequestsClosed  = "borrow_requests_closed_total"
	MetricNameBorrowRequestsOverdue = "borrow_requests_overdue_total"
	MetricNamePointsCreditedEntries = "points_credited_entries_total"
	MetricNamePointsCreditedTotal   = "points_credited_points_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsSubmitted        = "Total number of items submitted for verification"
	HelpTextItemsApproved         = "Total number of items approved"
	HelpTextItemsRejected         = "Total number of items rejected"
	HelpTextBorrowRequestsOpened  = "Total number of borrow requests opened"
	HelpTextBorrowRequestsClosed  = "Total number of borrow requests resolved, by outcome"
	HelpTextBorrowRequestsOverdue = "Total number of loans flagged overdue by the sweep"
	HelpTextPointsCreditedEntries = "Total number of reward ledger entries written"
	HelpTextPointsCreditedTotal   = "Total reward points credited (positive entries only)"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelAction  = "action"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
