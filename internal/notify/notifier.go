package notify

import (
	"context"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// Notifier delivers player-facing hunt notifications. Implementations must be
// best-effort: a failed notification never fails the triggering operation.
type Notifier interface {
	// HuntReady tells a player their offline rewards are waiting
	HuntReady(ctx context.Context, playerID int64, target domain.HuntTarget)

	// RewardsClaimed reports a completed claim
	RewardsClaimed(ctx context.Context, playerID int64, result *domain.ClaimResult)
}

// LogNotifier writes notifications to the structured log. It is the default
// when no external channel is configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// HuntReady logs that a player's rewards are ready
func (n *LogNotifier) HuntReady(ctx context.Context, playerID int64, target domain.HuntTarget) {
	logger.FromContext(ctx).Info("hunt_rewards_ready",
		"player_id", playerID,
		"target_kind", target.Kind,
		"target_id", target.ID)
}

// RewardsClaimed logs a completed claim
func (n *LogNotifier) RewardsClaimed(ctx context.Context, playerID int64, result *domain.ClaimResult) {
	logger.FromContext(ctx).Info("hunt_rewards_claimed",
		"player_id", playerID,
		"kills", result.Rewards.Kills,
		"exp", result.Rewards.Exp,
		"gold", result.Rewards.Gold,
		"item_stacks", len(result.ItemsGranted))
}
