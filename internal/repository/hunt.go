package repository

import (
	"context"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// Hunt handles idle hunt state persistence. The in-memory state is
// authoritative while a player session is loaded; writes are best-effort
// snapshots so a crash loses at most the window since the last trigger.
type Hunt interface {
	// GetHuntState retrieves the hunt state for a player, or
	// domain.ErrPlayerNotFound when no row exists
	GetHuntState(ctx context.Context, playerID int64) (*domain.HuntState, error)

	// SaveHuntState upserts the full hunt state snapshot
	SaveHuntState(ctx context.Context, state *domain.HuntState) error

	// DeleteHuntState removes the persisted state for a player
	DeleteHuntState(ctx context.Context, playerID int64) error
}
