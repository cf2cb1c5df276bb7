package domain

import "time"

// HuntPhase represents the position of a hunt in its state machine
type HuntPhase string

const (
	// HuntPhaseIdle means no hunt is configured
	HuntPhaseIdle HuntPhase = "idle"
	// HuntPhasePending means a hunt is configured while online, not yet running
	HuntPhasePending HuntPhase = "pending"
	// HuntPhaseActive means the player is offline and the clock is running
	HuntPhaseActive HuntPhase = "active"
	// HuntPhaseReadyToClaim means the elapsed interval is frozen, awaiting claim
	HuntPhaseReadyToClaim HuntPhase = "ready_to_claim"
)

// TargetKind discriminates the two hunt target namespaces
type TargetKind string

const (
	// TargetKindNone is the zero target (no hunt configured)
	TargetKindNone TargetKind = ""
	// TargetKindGroup targets a hunting group from the group catalog
	TargetKindGroup TargetKind = "group"
	// TargetKindMonster targets a single monster from the monster catalog
	TargetKindMonster TargetKind = "monster"
)

// HuntTarget identifies what a hunt is configured against.
// The zero value means no target.
type HuntTarget struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

// IsZero reports whether no target is configured
func (t HuntTarget) IsZero() bool {
	return t.Kind == TargetKindNone || t.ID == 0
}

// DefaultMaxDailySeconds is the system daily quota (8 hours) applied when a
// player record carries no override.
const DefaultMaxDailySeconds = 28800

// HuntState is the per-player persistent idle hunt record. The persisted row
// is the sole source of truth across login sessions.
type HuntState struct {
	PlayerID        int64      `json:"player_id"`
	Target          HuntTarget `json:"target"`
	Phase           HuntPhase  `json:"phase"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         time.Time  `json:"end_time"`
	LastClaimTime   time.Time  `json:"last_claim_time"`
	TotalTimeToday  int64      `json:"total_time_today"` // seconds consumed against the daily quota
	LastResetDate   time.Time  `json:"last_reset_date"`  // calendar date, server-local
	MaxDailySeconds int64      `json:"max_daily_seconds"`
}

// NewHuntState returns the lazily-created all-zero record for a player
func NewHuntState(playerID int64) *HuntState {
	return &HuntState{
		PlayerID:        playerID,
		Phase:           HuntPhaseIdle,
		MaxDailySeconds: DefaultMaxDailySeconds,
	}
}

// RemainingDailySeconds returns how much of today's quota is unspent
func (s *HuntState) RemainingDailySeconds() int64 {
	remaining := s.MaxDailySeconds - s.TotalTimeToday
	if remaining < 0 {
		return 0
	}
	return remaining
}

// HuntStatus is the read-only view returned by the status operation
type HuntStatus struct {
	Active    bool       `json:"active"`
	Phase     HuntPhase  `json:"phase"`
	Target    HuntTarget `json:"target"`
	TimeLeft  int64      `json:"time_left"` // remaining daily quota in seconds
	MaxTime   int64      `json:"max_time"`
	StartTime time.Time  `json:"start_time"`
}

// ItemStack is an aggregated item grant (per item id, post-aggregation)
type ItemStack struct {
	ItemID int64 `json:"item_id"`
	Count  int   `json:"count"`
}

// MonsterKills is the per-monster simulation breakdown kept for audit
type MonsterKills struct {
	MonsterID    int64   `json:"monster_id"`
	Seconds      int64   `json:"seconds"`
	KillsPerHour float64 `json:"kills_per_hour"`
	Kills        float64 `json:"kills"`
}

// RewardSummary is the aggregated output of one reward simulation.
// RawKills/RawExp/RawGold carry pre-clamp values when a sanity clamp fired;
// they are logged for audit but never granted.
type RewardSummary struct {
	Kills      int            `json:"kills"`
	Exp        int64          `json:"exp"`
	Gold       int64          `json:"gold"`
	Drops      []ItemStack    `json:"drops"`
	PerMonster []MonsterKills `json:"per_monster"`

	Clamped  bool  `json:"clamped"`
	RawKills int64 `json:"-"`
	RawExp   int64 `json:"-"`
	RawGold  int64 `json:"-"`
}

// ClaimResult is returned by a successful claim
type ClaimResult struct {
	Target         HuntTarget    `json:"target"`
	ElapsedSeconds int64         `json:"elapsed_seconds"`
	Rewards        RewardSummary `json:"rewards"`
	ItemsGranted   []ItemStack   `json:"items_granted"`
	InventoryFull  bool          `json:"inventory_full"`
	TimeLeftToday  int64         `json:"time_left_today"`
	Summary        []string      `json:"summary"`
}

// CombatSnapshot is the player combat view consumed by the simulation engine.
// Treated as immutable for the duration of one simulation call.
type CombatSnapshot struct {
	PlayerID        int64 `json:"player_id"`
	Level           int   `json:"level"`
	AttackGrade     int   `json:"attack_grade"`
	AttackSpeed     int   `json:"attack_speed"`
	WeaponDamageMin int   `json:"weapon_damage_min"`
	WeaponDamageMax int   `json:"weapon_damage_max"`
	Premium         bool  `json:"premium"`
}
