package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/repository"
)

type huntRepository struct {
	db *pgxpool.Pool
}

// NewHuntRepository creates a new PostgreSQL hunt state repository
func NewHuntRepository(db *pgxpool.Pool) repository.Hunt {
	return &huntRepository{db: db}
}

// GetHuntState retrieves the hunt state for a player
func (r *huntRepository) GetHuntState(ctx context.Context, playerID int64) (*domain.HuntState, error) {
	query := `
		SELECT player_id, target_kind, target_id, phase,
		       start_time, end_time, last_claim_time,
		       total_time_today, last_reset_date, max_daily_seconds
		FROM idle_hunt_state
		WHERE player_id = $1
	`

	var (
		state         domain.HuntState
		targetKind    string
		startTime     pgtype.Timestamptz
		endTime       pgtype.Timestamptz
		lastClaimTime pgtype.Timestamptz
		lastResetDate pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, playerID).Scan(
		&state.PlayerID,
		&targetKind,
		&state.Target.ID,
		&state.Phase,
		&startTime,
		&endTime,
		&lastClaimTime,
		&state.TotalTimeToday,
		&lastResetDate,
		&state.MaxDailySeconds,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetHuntState, err)
	}

	state.Target.Kind = domain.TargetKind(targetKind)
	state.StartTime = timestamptzToTime(startTime)
	state.EndTime = timestamptzToTime(endTime)
	state.LastClaimTime = timestamptzToTime(lastClaimTime)
	state.LastResetDate = timestamptzToTime(lastResetDate)

	return &state, nil
}

// SaveHuntState upserts the full hunt state snapshot
func (r *huntRepository) SaveHuntState(ctx context.Context, state *domain.HuntState) error {
	query := `
		INSERT INTO idle_hunt_state (
			player_id, target_kind, target_id, phase,
			start_time, end_time, last_claim_time,
			total_time_today, last_reset_date, max_daily_seconds,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (player_id) DO UPDATE SET
			target_kind       = EXCLUDED.target_kind,
			target_id         = EXCLUDED.target_id,
			phase             = EXCLUDED.phase,
			start_time        = EXCLUDED.start_time,
			end_time          = EXCLUDED.end_time,
			last_claim_time   = EXCLUDED.last_claim_time,
			total_time_today  = EXCLUDED.total_time_today,
			last_reset_date   = EXCLUDED.last_reset_date,
			max_daily_seconds = EXCLUDED.max_daily_seconds,
			updated_at        = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		state.PlayerID,
		string(state.Target.Kind),
		state.Target.ID,
		string(state.Phase),
		timeToTimestamptz(state.StartTime),
		timeToTimestamptz(state.EndTime),
		timeToTimestamptz(state.LastClaimTime),
		state.TotalTimeToday,
		timeToTimestamptz(state.LastResetDate),
		state.MaxDailySeconds,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveHuntState, err)
	}
	return nil
}

// DeleteHuntState removes the persisted state for a player
func (r *huntRepository) DeleteHuntState(ctx context.Context, playerID int64) error {
	query := `DELETE FROM idle_hunt_state WHERE player_id = $1`

	if _, err := r.db.Exec(ctx, query, playerID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteHuntState, err)
	}
	return nil
}
