package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors (reported to the caller, no state mutated)
	ErrMsgInvalidTarget     = "invalid hunt target"
	ErrMsgLevelTooLow       = "player level too low"
	ErrMsgPremiumRequired   = "premium account required"
	ErrMsgAlreadyConfigured = "hunt already configured"
	ErrMsgDailyLimitReached = "daily hunt limit reached"
	ErrMsgNothingToClaim    = "nothing to claim"

	// Consistency errors (force reset to idle, never leave a player stuck)
	ErrMsgHuntStateCorrupt = "hunt state corrupt"
	ErrMsgTargetVanished   = "hunt target no longer exists"

	// Collaborator errors
	ErrMsgInventoryFull  = "inventory is full"
	ErrMsgPlayerNotFound = "player not found"

	// System errors
	ErrMsgSystemError = "system error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidTarget     = errors.New(ErrMsgInvalidTarget)
	ErrLevelTooLow       = errors.New(ErrMsgLevelTooLow)
	ErrPremiumRequired   = errors.New(ErrMsgPremiumRequired)
	ErrAlreadyConfigured = errors.New(ErrMsgAlreadyConfigured)
	ErrDailyLimitReached = errors.New(ErrMsgDailyLimitReached)
	ErrNothingToClaim    = errors.New(ErrMsgNothingToClaim)

	// Consistency errors
	ErrHuntStateCorrupt = errors.New(ErrMsgHuntStateCorrupt)
	ErrTargetVanished   = errors.New(ErrMsgTargetVanished)

	// Collaborator errors
	ErrInventoryFull  = errors.New(ErrMsgInventoryFull)
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// System errors
	ErrSystemError = errors.New(ErrMsgSystemError)
)

// ReasonCode maps a domain error to the machine-readable reason code carried
// in command results. Unknown errors map to "system_error".
func ReasonCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidTarget):
		return "invalid_target"
	case errors.Is(err, ErrLevelTooLow):
		return "level_too_low"
	case errors.Is(err, ErrPremiumRequired):
		return "premium_required"
	case errors.Is(err, ErrAlreadyConfigured):
		return "already_configured"
	case errors.Is(err, ErrDailyLimitReached):
		return "daily_limit_reached"
	case errors.Is(err, ErrNothingToClaim):
		return "nothing_to_claim"
	case errors.Is(err, ErrTargetVanished):
		return "invalid_target"
	case errors.Is(err, ErrPlayerNotFound):
		return "player_not_found"
	default:
		return "system_error"
	}
}
