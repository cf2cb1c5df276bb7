package repository

import (
	"context"

	"github.com/osse101/IdleHunt_Go/internal/domain"
)

// PlayerRecord is the persisted shape of a player's hunt-relevant attributes
type PlayerRecord struct {
	ID              int64
	Name            string
	Level           int
	AttackGrade     int
	AttackSpeed     int
	WeaponDamageMin int
	WeaponDamageMax int
	Premium         bool
	Exp             int64
	Gold            int64
}

// Player handles player attribute and reward persistence
type Player interface {
	// GetPlayer retrieves a player record, or domain.ErrPlayerNotFound
	GetPlayer(ctx context.Context, playerID int64) (*PlayerRecord, error)

	// AddExperience credits experience to a player
	AddExperience(ctx context.Context, playerID int64, amount int64) error

	// AddGold credits gold to a player
	AddGold(ctx context.Context, playerID int64, amount int64) error

	// AddItem adds count of an item to the player's inventory, returning
	// domain.ErrInventoryFull when no slot can take it
	AddItem(ctx context.Context, playerID int64, stack domain.ItemStack) error
}
