package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata interface{} `json:"metadata,omitempty"`
}

// Hunt event types
const (
	HuntConfigured    Type = domain.EventTypeHuntConfigured
	HuntActivated     Type = domain.EventTypeHuntActivated
	HuntReady         Type = domain.EventTypeHuntReady
	HuntClaimed       Type = domain.EventTypeHuntClaimed
	HuntStopped       Type = domain.EventTypeHuntStopped
	HuntGoldGranted   Type = domain.EventTypeHuntGoldGranted
	HuntItemsGranted  Type = domain.EventTypeHuntItemsGranted
	HuntRewardClamped Type = domain.EventTypeHuntRewardClamped
	HuntForceReset    Type = domain.EventTypeHuntForceReset
)

// Typed event payloads for type safety

// HuntConfiguredPayloadV1 is the typed payload for hunt configuration events
type HuntConfiguredPayloadV1 struct {
	PlayerID   int64  `json:"player_id"`
	TargetKind string `json:"target_kind"`
	TargetID   int64  `json:"target_id"`
	MinLevel   int    `json:"min_level"`
	Timestamp  int64  `json:"timestamp"`
}

// HuntPhasePayloadV1 is the typed payload for activate/ready/force-reset events
type HuntPhasePayloadV1 struct {
	PlayerID   int64  `json:"player_id"`
	TargetKind string `json:"target_kind"`
	TargetID   int64  `json:"target_id"`
	Phase      string `json:"phase"`
	Timestamp  int64  `json:"timestamp"`
}

// HuntClaimedPayloadV1 is the typed payload for claim events
type HuntClaimedPayloadV1 struct {
	PlayerID       int64  `json:"player_id"`
	TargetKind     string `json:"target_kind"`
	TargetID       int64  `json:"target_id"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
	Kills          int    `json:"kills"`
	Exp            int64  `json:"exp"`
	Gold           int64  `json:"gold"`
	ItemStacks     int    `json:"item_stacks"`
	Timestamp      int64  `json:"timestamp"`
}

// HuntStoppedPayloadV1 is the typed payload for stop events, carrying the
// forfeited configuration for audit
type HuntStoppedPayloadV1 struct {
	PlayerID      int64  `json:"player_id"`
	TargetKind    string `json:"target_kind"`
	TargetID      int64  `json:"target_id"`
	PriorPhase    string `json:"prior_phase"`
	TimeUsedToday int64  `json:"time_used_today"`
	Timestamp     int64  `json:"timestamp"`
}

// HuntGoldGrantedPayloadV1 is the audit payload for a successful gold grant
type HuntGoldGrantedPayloadV1 struct {
	PlayerID  int64 `json:"player_id"`
	Amount    int64 `json:"amount"`
	Timestamp int64 `json:"timestamp"`
}

// HuntItemsGrantedPayloadV1 is the audit payload for the item stacks that
// actually reached the player's inventory
type HuntItemsGrantedPayloadV1 struct {
	PlayerID  int64              `json:"player_id"`
	Stacks    []domain.ItemStack `json:"stacks"`
	Timestamp int64              `json:"timestamp"`
}

// HuntRewardClampedPayloadV1 carries raw pre-clamp values for anti-abuse review
type HuntRewardClampedPayloadV1 struct {
	PlayerID  int64 `json:"player_id"`
	RawKills  int64 `json:"raw_kills,omitempty"`
	RawExp    int64 `json:"raw_exp,omitempty"`
	RawGold   int64 `json:"raw_gold,omitempty"`
	Timestamp int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewHuntConfiguredEvent creates a new hunt configured event
func NewHuntConfiguredEvent(playerID int64, target domain.HuntTarget, minLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HuntConfigured,
		Payload: HuntConfiguredPayloadV1{
			PlayerID:   playerID,
			TargetKind: string(target.Kind),
			TargetID:   target.ID,
			MinLevel:   minLevel,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewHuntPhaseEvent creates an event for a phase transition (activated, ready, force reset)
func NewHuntPhaseEvent(eventType Type, playerID int64, target domain.HuntTarget, phase domain.HuntPhase) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: HuntPhasePayloadV1{
			PlayerID:   playerID,
			TargetKind: string(target.Kind),
			TargetID:   target.ID,
			Phase:      string(phase),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewHuntClaimedEvent creates a new hunt claimed event
func NewHuntClaimedEvent(playerID int64, target domain.HuntTarget, result *domain.ClaimResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HuntClaimed,
		Payload: HuntClaimedPayloadV1{
			PlayerID:       playerID,
			TargetKind:     string(target.Kind),
			TargetID:       target.ID,
			ElapsedSeconds: result.ElapsedSeconds,
			Kills:          result.Rewards.Kills,
			Exp:            result.Rewards.Exp,
			Gold:           result.Rewards.Gold,
			ItemStacks:     len(result.ItemsGranted),
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewHuntStoppedEvent creates a new hunt stopped event
func NewHuntStoppedEvent(playerID int64, target domain.HuntTarget, priorPhase domain.HuntPhase, timeUsedToday int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HuntStopped,
		Payload: HuntStoppedPayloadV1{
			PlayerID:      playerID,
			TargetKind:    string(target.Kind),
			TargetID:      target.ID,
			PriorPhase:    string(priorPhase),
			TimeUsedToday: timeUsedToday,
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewHuntGoldGrantedEvent creates the audit event for a gold grant
func NewHuntGoldGrantedEvent(playerID, amount int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HuntGoldGranted,
		Payload: HuntGoldGrantedPayloadV1{
			PlayerID:  playerID,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewHuntItemsGrantedEvent creates the audit event for granted item stacks
func NewHuntItemsGrantedEvent(playerID int64, stacks []domain.ItemStack) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HuntItemsGranted,
		Payload: HuntItemsGrantedPayloadV1{
			PlayerID:  playerID,
			Stacks:    stacks,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewHuntRewardClampedEvent creates a new reward clamp audit event
func NewHuntRewardClampedEvent(playerID int64, rawKills, rawExp, rawGold int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    HuntRewardClamped,
		Payload: HuntRewardClampedPayloadV1{
			PlayerID:  playerID,
			RawKills:  rawKills,
			RawExp:    rawExp,
			RawGold:   rawGold,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously on the publishing goroutine
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
