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
	MetricNameHuntsConfigured    = "hunts_configured_total"
	MetricNameHuntsActivated     = "hunts_activated_total"
	MetricNameHuntsClaimed       = "hunts_claimed_total"
	MetricNameHuntsStopped       = "hunts_stopped_total"
	MetricNameHuntForceResets    = "hunt_force_resets_total"
	MetricNameRewardClamps       = "hunt_reward_clamps_total"
	MetricNameHuntExpGranted     = "hunt_exp_granted_total"
	MetricNameHuntGoldGranted    = "hunt_gold_granted_total"
	MetricNameHuntKills          = "hunt_kills_total"
	MetricNameHuntClaimedSeconds = "hunt_claimed_seconds"
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
	HelpTextHuntsConfigured    = "Total number of idle hunts configured"
	HelpTextHuntsActivated     = "Total number of idle hunts activated on logout"
	HelpTextHuntsClaimed       = "Total number of idle hunt claims"
	HelpTextHuntsStopped       = "Total number of idle hunts stopped without claiming"
	HelpTextHuntForceResets    = "Total number of hunt states force reset after consistency errors"
	HelpTextRewardClamps       = "Total number of claims where a reward sanity ceiling fired"
	HelpTextHuntExpGranted     = "Total experience granted by idle hunt claims"
	HelpTextHuntGoldGranted    = "Total gold granted by idle hunt claims"
	HelpTextHuntKills          = "Total simulated kills across idle hunt claims"
	HelpTextHuntClaimedSeconds = "Distribution of simulated seconds per claim"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelTargetKind = "target_kind"
)

// ============================================================================
// Event Payload Field Names
// ============================================================================

// Field names used when extracting values from event payloads
const (
	PayloadFieldTargetKind     = "target_kind"
	PayloadFieldKills          = "kills"
	PayloadFieldExp            = "exp"
	PayloadFieldGold           = "gold"
	PayloadFieldElapsedSeconds = "elapsed_seconds"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ClaimSecondsBuckets spans a claim window from minutes up to the 24h cap
var ClaimSecondsBuckets = []float64{60, 300, 900, 1800, 3600, 7200, 14400, 28800, 43200, 86400}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadNotMap = "Event payload is not a map"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
