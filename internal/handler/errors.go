package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPlayerID   = "Invalid player_id"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgHuntConfiguredSuccess = "Hunt configured. Rewards accumulate while you are offline."
	MsgHuntStoppedSuccess    = "Hunt stopped"
	MsgNothingToStop         = "No hunt to stop"
	MsgSignalAccepted        = "Signal accepted"
	MsgDailyLimitSetSuccess  = "Daily hunting limit updated"
	MsgPlayerResetSuccess    = "Hunt record reset"
	MsgCatalogReloadSuccess  = "Hunting catalogs reloaded successfully"
)
