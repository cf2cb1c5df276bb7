package domain

// Event type constants used across the application for event bus subscriptions
const (
	EventTypeHuntConfigured    = "hunt.configured"
	EventTypeHuntActivated     = "hunt.activated"
	EventTypeHuntReady         = "hunt.ready"
	EventTypeHuntClaimed       = "hunt.claimed"
	EventTypeHuntStopped       = "hunt.stopped"
	EventTypeHuntGoldGranted   = "hunt.gold_granted"
	EventTypeHuntItemsGranted  = "hunt.items_granted"
	EventTypeHuntRewardClamped = "hunt.reward_clamped"
	EventTypeHuntForceReset    = "hunt.force_reset"
)
