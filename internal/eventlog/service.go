package eventlog

import (
	"context"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/event"
	"github.com/osse101/IdleHunt_Go/internal/logger"
	"github.com/osse101/IdleHunt_Go/internal/repository"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all hunt events
	Subscribe(bus event.Bus) error

	// GetPlayerHistory retrieves the most recent logged events for a player
	GetPlayerHistory(ctx context.Context, playerID int64, limit int) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all hunt event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.HuntConfigured,
		event.HuntActivated,
		event.HuntReady,
		event.HuntClaimed,
		event.HuntStopped,
		event.HuntGoldGranted,
		event.HuntItemsGranted,
		event.HuntRewardClamped,
		event.HuntForceReset,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Typed payloads round-trip through a map for the JSONB column
	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadNotDecodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	var playerID *int64
	if pid, ok := payload[PayloadKeyPlayerID].(float64); ok {
		id := int64(pid)
		playerID = &id
	}

	metadata, _ := evt.Metadata.(map[string]interface{})

	if err := s.repo.LogEvent(ctx, string(evt.Type), playerID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldPlayerID, playerID)
	return nil
}

// GetPlayerHistory retrieves the most recent logged events for a player
func (s *service) GetPlayerHistory(ctx context.Context, playerID int64, limit int) ([]repository.EventLogEntry, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = DefaultHistoryLimit
	}
	entries, err := s.repo.GetEventsByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, domain.ErrSystemError
	}
	return entries, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
