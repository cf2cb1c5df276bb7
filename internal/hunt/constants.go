package hunt

import "time"

// Tunables for the offline reward simulation. These mirror the live combat
// balance constants; changing them changes reward throughput for every claim.
const (
	// MaxOfflineSeconds is the hard sanity bound on one offline interval (24h),
	// applied before the elapsed time is clipped to the remaining daily quota.
	MaxOfflineSeconds = 86400

	// BaseSecondsPerHit is the attack interval at 100 attack speed
	BaseSecondsPerHit = 2.0

	// MinAttackSpeedFactor floors the speed factor so an unusually slow weapon
	// cannot produce absurd per-hit times
	MinAttackSpeedFactor = 0.5

	// PerKillOverheadSeconds covers movement and targeting downtime per kill
	PerKillOverheadSeconds = 4.0

	// Kills-per-hour band. The simulation is bounded regardless of stat extremes.
	MinKillsPerHour = 10.0
	MaxKillsPerHour = 500.0

	// Post-aggregation sanity ceilings. A triggered ceiling is a signal of
	// corrupted state or clock tampering and is logged with the raw value.
	MaxKillsPerClaim = 10000
	MaxExpPerClaim   = 2_000_000_000
	MaxGoldPerClaim  = 2_000_000_000

	// Global rate modifiers applied on top of group multipliers
	ExpRateModifier  = 1.0
	YangRateModifier = 1.0

	// IdleGoldDropChance is the percent chance of a gold drop per whole kill.
	// Half the live-hunting 60% baseline.
	IdleGoldDropChance = 30

	// Item materialization limits per claim
	MaxItemStack      = 200
	MaxStacksPerClaim = 100
)

// Session cache tuning. Sessions are rebuilt from the repository on a miss,
// so eviction only costs a read.
const (
	SessionCacheSize = 8192
	SessionCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgHuntConfigured = "hunt configured"
	LogMsgHuntActivated  = "hunt activated on logout"
	LogMsgHuntReady      = "hunt ready to claim"
	LogMsgHuntClaimed    = "hunt rewards claimed"
	LogMsgHuntStopped    = "hunt stopped"
	LogMsgDailyLimitSet  = "hunt daily limit set"
	LogMsgPlayerReset    = "hunt record reset by operator"
	LogMsgStateCorrupt   = "hunt state corrupt, forcing reset"
	LogMsgTargetVanished = "hunt target no longer in catalog"
	LogMsgRewardClamped  = "hunt rewards clamped"
	LogMsgPersistFailed  = "failed to persist hunt state"
	LogMsgPublishFailed  = "failed to publish hunt event"
	LogMsgGrantFailed    = "failed to grant hunt reward"
	LogMsgInventoryFull  = "inventory full, remaining drops forfeited"
)

// Exp rate tiers accelerating low-level players
const (
	lowLevelTier1Max        = 10
	lowLevelTier1Multiplier = 5.0
	lowLevelTier2Max        = 30
	lowLevelTier2Multiplier = 3.0
	lowLevelTier3Max        = 50
	lowLevelTier3Multiplier = 2.0
)

// killEfficiency returns the throughput multiplier for the level gap between
// player and monster. Large gaps in either direction penalize kill rate.
// The steps are a tuned table, not a formula.
func killEfficiency(levelDiff int) float64 {
	switch {
	case levelDiff > 10:
		return 0.1
	case levelDiff > 5:
		return 0.5
	case levelDiff < -10:
		return 0.2
	case levelDiff < -5:
		return 0.4
	default:
		return 1.0
	}
}

// levelExpMultiplier returns the new-player exp acceleration for a level
func levelExpMultiplier(playerLevel int) float64 {
	switch {
	case playerLevel <= lowLevelTier1Max:
		return lowLevelTier1Multiplier
	case playerLevel <= lowLevelTier2Max:
		return lowLevelTier2Multiplier
	case playerLevel <= lowLevelTier3Max:
		return lowLevelTier3Multiplier
	default:
		return 1.0
	}
}
