package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/logger"
	"github.com/osse101/IdleHunt_Go/internal/repository"
)

// Service exposes player attribute reads and reward grants to the hunt system
type Service interface {
	// GetCombatSnapshot returns the immutable combat view used by reward
	// simulation
	GetCombatSnapshot(ctx context.Context, playerID int64) (domain.CombatSnapshot, error)

	// GrantExperience credits experience earned offline
	GrantExperience(ctx context.Context, playerID int64, amount int64) error

	// GrantGold credits gold earned offline
	GrantGold(ctx context.Context, playerID int64, amount int64) error

	// GrantItem adds an item stack to the player's inventory, returning
	// domain.ErrInventoryFull when there is no room
	GrantItem(ctx context.Context, playerID int64, stack domain.ItemStack) error
}

type service struct {
	repo  repository.Player
	cache *snapshotCache
}

// NewService creates a player service over the persistence layer
func NewService(repo repository.Player) Service {
	return &service{
		repo:  repo,
		cache: newSnapshotCache(SnapshotCacheSize, SnapshotCacheTTL),
	}
}

// GetCombatSnapshot returns the combat view for a player. Snapshots are cached
// briefly; a hunt claim tolerates stats that are seconds stale.
func (s *service) GetCombatSnapshot(ctx context.Context, playerID int64) (domain.CombatSnapshot, error) {
	if snapshot, ok := s.cache.Get(playerID); ok {
		return snapshot, nil
	}

	record, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return domain.CombatSnapshot{}, err
	}

	snapshot := domain.CombatSnapshot{
		PlayerID:        record.ID,
		Level:           record.Level,
		AttackGrade:     record.AttackGrade,
		AttackSpeed:     record.AttackSpeed,
		WeaponDamageMin: record.WeaponDamageMin,
		WeaponDamageMax: record.WeaponDamageMax,
		Premium:         record.Premium,
	}
	s.cache.Set(playerID, snapshot)
	return snapshot, nil
}

// GrantExperience credits experience earned offline
func (s *service) GrantExperience(ctx context.Context, playerID int64, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := s.repo.AddExperience(ctx, playerID, amount); err != nil {
		return fmt.Errorf("failed to grant experience: %w", err)
	}
	// Experience can change level, which feeds the simulation
	s.cache.Invalidate(playerID)
	logger.FromContext(ctx).Debug("experience_granted", "player_id", playerID, "amount", amount)
	return nil
}

// GrantGold credits gold earned offline
func (s *service) GrantGold(ctx context.Context, playerID int64, amount int64) error {
	if amount <= 0 {
		return nil
	}
	if err := s.repo.AddGold(ctx, playerID, amount); err != nil {
		return fmt.Errorf("failed to grant gold: %w", err)
	}
	logger.FromContext(ctx).Debug("gold_granted", "player_id", playerID, "amount", amount)
	return nil
}

// GrantItem adds an item stack to the player's inventory
func (s *service) GrantItem(ctx context.Context, playerID int64, stack domain.ItemStack) error {
	if stack.Count <= 0 {
		return nil
	}
	return s.repo.AddItem(ctx, playerID, stack)
}

// Cache tuning
const (
	SnapshotCacheSize = 4096
	SnapshotCacheTTL  = 30 * time.Second
)
