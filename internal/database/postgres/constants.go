package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Hunt State Operations
const (
	ErrMsgFailedToGetHuntState    = "failed to get hunt state"
	ErrMsgFailedToSaveHuntState   = "failed to save hunt state"
	ErrMsgFailedToDeleteHuntState = "failed to delete hunt state"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToGetPlayer      = "failed to get player"
	ErrMsgFailedToAddExperience  = "failed to add experience"
	ErrMsgFailedToAddGold        = "failed to add gold"
	ErrMsgFailedToGetItemSlots   = "failed to get item slots"
	ErrMsgFailedToUpsertItemSlot = "failed to upsert item slot"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Inventory Constants
const (
	// MaxInventorySlots is the slot capacity of a player's item inventory
	MaxInventorySlots = 45
)
