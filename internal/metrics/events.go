package metrics

import (
	"context"

	"github.com/osse101/IdleHunt_Go/internal/event"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all hunt event types
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.HuntConfigured,
		event.HuntActivated,
		event.HuntReady,
		event.HuntClaimed,
		event.HuntStopped,
		event.HuntRewardClamped,
		event.HuntForceReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadNotMap, "type", evt.Type)
		return nil
	}

	targetKind, _ := payload[PayloadFieldTargetKind].(string)

	switch evt.Type {
	case event.HuntConfigured:
		HuntsConfigured.WithLabelValues(targetKind).Inc()

	case event.HuntActivated:
		HuntsActivated.Inc()

	case event.HuntClaimed:
		HuntsClaimed.WithLabelValues(targetKind).Inc()
		if kills, ok := payload[PayloadFieldKills].(float64); ok {
			HuntKills.Add(kills)
		}
		if exp, ok := payload[PayloadFieldExp].(float64); ok {
			HuntExpGranted.Add(exp)
		}
		if gold, ok := payload[PayloadFieldGold].(float64); ok {
			HuntGoldGranted.Add(gold)
		}
		if elapsed, ok := payload[PayloadFieldElapsedSeconds].(float64); ok {
			HuntClaimedSeconds.Observe(elapsed)
		}

	case event.HuntStopped:
		HuntsStopped.Inc()

	case event.HuntRewardClamped:
		RewardClamps.Inc()

	case event.HuntForceReset:
		HuntForceResets.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
