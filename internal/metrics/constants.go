package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "scribble_http_requests_total"
	MetricNameHTTPRequestDuration  = "scribble_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "scribble_http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsAdded          = "scribble_items_added_total"
	MetricNameItemsMerged         = "scribble_items_merged_total"
	MetricNameItemsRemoved        = "scribble_items_removed_total"
	MetricNameKeyItemRejections   = "scribble_key_item_rejections_total"
	MetricNameEnemiesLogged       = "scribble_enemies_logged_total"
	MetricNameStatsAdjusted       = "scribble_stats_adjusted_total"
	MetricNameDiceRolled          = "scribble_dice_rolled_total"
	MetricNameCriticalRolls       = "scribble_critical_rolls_total"
	MetricNameSearchesPerformed   = "scribble_searches_performed_total"
	MetricNameStoreDecodeFailures = "scribble_store_decode_failures_total"
	MetricNameValidationFailures  = "scribble_validation_failures_total"
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

// Business metric help text
const (
	HelpTextItemsAdded          = "Total number of new inventory records created"
	HelpTextItemsMerged         = "Total number of add requests merged into an existing record"
	HelpTextItemsRemoved        = "Total number of inventory records deleted"
	HelpTextKeyItemRejections   = "Total number of rejected attempts to delete a key item"
	HelpTextEnemiesLogged       = "Total number of enemies logged"
	HelpTextStatsAdjusted       = "Total number of character stat changes"
	HelpTextDiceRolled          = "Total number of dice rolled, by die size"
	HelpTextCriticalRolls       = "Total number of critical d20 rolls"
	HelpTextSearchesPerformed   = "Total number of name searches, by collection"
	HelpTextStoreDecodeFailures = "Total number of collection files discarded as unreadable"
	HelpTextValidationFailures  = "Total number of requests rejected by validation, by operation"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelCollection = "collection"
	LabelSides      = "sides"
	LabelOperation  = "operation"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
