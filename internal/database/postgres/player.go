package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/repository"
)

type playerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PostgreSQL player repository
func NewPlayerRepository(db *pgxpool.Pool) repository.Player {
	return &playerRepository{db: db}
}

// GetPlayer retrieves a player record
func (r *playerRepository) GetPlayer(ctx context.Context, playerID int64) (*repository.PlayerRecord, error) {
	query := `
		SELECT player_id, name, level, attack_grade, attack_speed,
		       weapon_damage_min, weapon_damage_max, premium, exp, gold
		FROM players
		WHERE player_id = $1
	`

	var p repository.PlayerRecord
	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&p.ID,
		&p.Name,
		&p.Level,
		&p.AttackGrade,
		&p.AttackSpeed,
		&p.WeaponDamageMin,
		&p.WeaponDamageMax,
		&p.Premium,
		&p.Exp,
		&p.Gold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}
	return &p, nil
}

// AddExperience credits experience to a player
func (r *playerRepository) AddExperience(ctx context.Context, playerID int64, amount int64) error {
	query := `UPDATE players SET exp = exp + $2, updated_at = NOW() WHERE player_id = $1`

	result, err := r.db.Exec(ctx, query, playerID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddExperience, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// AddGold credits gold to a player
func (r *playerRepository) AddGold(ctx context.Context, playerID int64, amount int64) error {
	query := `UPDATE players SET gold = gold + $2, updated_at = NOW() WHERE player_id = $1`

	result, err := r.db.Exec(ctx, query, playerID, amount)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddGold, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// AddItem adds count of an item to the player's inventory. Existing stacks are
// topped up first; a new slot is only opened when the inventory has room,
// otherwise domain.ErrInventoryFull is returned.
func (r *playerRepository) AddItem(ctx context.Context, playerID int64, stack domain.ItemStack) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	updateQuery := `
		UPDATE player_items
		SET count = count + $3, updated_at = NOW()
		WHERE player_id = $1 AND item_id = $2
	`
	result, err := tx.Exec(ctx, updateQuery, playerID, stack.ItemID, stack.Count)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItemSlot, err)
	}

	if result.RowsAffected() == 0 {
		var slots int
		countQuery := `SELECT COUNT(*) FROM player_items WHERE player_id = $1`
		if err := tx.QueryRow(ctx, countQuery, playerID).Scan(&slots); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToGetItemSlots, err)
		}
		if slots >= MaxInventorySlots {
			return domain.ErrInventoryFull
		}

		insertQuery := `
			INSERT INTO player_items (player_id, item_id, count)
			VALUES ($1, $2, $3)
		`
		if _, err := tx.Exec(ctx, insertQuery, playerID, stack.ItemID, stack.Count); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertItemSlot, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
