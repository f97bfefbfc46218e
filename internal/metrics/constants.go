package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameEventsIngested     = "listening_events_ingested_total"
	MetricNameIngestFailures     = "listening_events_rejected_total"
	MetricNameNotifyDuration     = "notify_fanout_duration_seconds"
	MetricNameRecomputeDuration  = "statistics_recompute_duration_seconds"
	MetricNameRecomputeFailures  = "statistics_recompute_failures_total"
	MetricNameAggregatesUpserted = "aggregates_upserted_total"
)

// Metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsIngested     = "Total number of listening events ingested"
	HelpTextIngestFailures     = "Total number of listening events rejected by validation"
	HelpTextNotifyDuration     = "Notification bus fan-out latency in seconds"
	HelpTextRecomputeDuration  = "Day-statistics recomputation latency in seconds"
	HelpTextRecomputeFailures  = "Total number of failed day-statistics recomputations"
	HelpTextAggregatesUpserted = "Total number of aggregate rows created or overwritten"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelDevice = "device"
)
