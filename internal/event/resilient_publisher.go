package event

import (
	"context"
	"time"

	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter // optional; nil drops exhausted events after logging
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead-letter
// queuing. Subscribers that fail transiently get retried in the background so
// publishers never block on a flaky handler.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelaySeconds * time.Second
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. On failure it initiates a background
// retry loop and returns nil immediately; the caller is decoupled from the
// retry mechanism.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)
	log.Warn("event_publish_failed_retrying",
		"event_type", event.Type,
		"error", err,
		"max_retries", p.config.MaxRetries)

	// Detached from the request context: the caller's request may complete or
	// be cancelled before the retries do.
	go p.retryLoop(event)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	var lastErr error
	for i := 1; i <= p.config.MaxRetries; i++ {
		// Linear backoff
		time.Sleep(p.config.RetryDelay * time.Duration(i))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info("event_published_after_retry",
				"event_type", event.Type,
				"attempt", i)
			return
		}

		log.Warn("event_retry_failed",
			"event_type", event.Type,
			"attempt", i,
			"error", lastErr)
	}

	if p.config.DeadLetter == nil {
		log.Error("event_dropped_no_dead_letter",
			"event_type", event.Type,
			"error", lastErr)
		return
	}
	if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		log.Error("event_dead_letter_write_failed",
			"event_type", event.Type,
			"error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
