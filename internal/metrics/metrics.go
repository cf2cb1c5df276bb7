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
	HuntsConfigured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHuntsConfigured,
			Help: HelpTextHuntsConfigured,
		},
		[]string{LabelTargetKind},
	)

	HuntsActivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHuntsActivated,
			Help: HelpTextHuntsActivated,
		},
	)

	HuntsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHuntsClaimed,
			Help: HelpTextHuntsClaimed,
		},
		[]string{LabelTargetKind},
	)

	HuntsStopped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHuntsStopped,
			Help: HelpTextHuntsStopped,
		},
	)

	HuntForceResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHuntForceResets,
			Help: HelpTextHuntForceResets,
		},
	)

	RewardClamps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRewardClamps,
			Help: HelpTextRewardClamps,
		},
	)

	HuntExpGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHuntExpGranted,
			Help: HelpTextHuntExpGranted,
		},
	)

	HuntGoldGranted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHuntGoldGranted,
			Help: HelpTextHuntGoldGranted,
		},
	)

	HuntKills = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHuntKills,
			Help: HelpTextHuntKills,
		},
	)

	HuntClaimedSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHuntClaimedSeconds,
			Help:    HelpTextHuntClaimedSeconds,
			Buckets: ClaimSecondsBuckets,
		},
	)
)
