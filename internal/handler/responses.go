package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response with a machine-readable reason code
func respondError(w http.ResponseWriter, status int, message, reason string) {
	respondJSON(w, status, ErrorResponse{Error: message, Reason: reason})
}

// respondServiceError logs a failed service call and maps the error to an
// HTTP response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error("Operation failed", "operation", opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message, domain.ReasonCode(err))
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInvalidTargetError    = "That hunting target does not exist"
	ErrMsgLevelTooLowError      = "Your level is too low for that hunting ground"
	ErrMsgPremiumRequiredError  = "That hunting ground requires premium status"
	ErrMsgAlreadyConfiguredMsg  = "You already have a hunt set up. Stop it first."
	ErrMsgDailyLimitError       = "You have used up today's hunting time"
	ErrMsgNothingToClaimError   = "No hunt rewards are waiting"
	ErrMsgHuntStateCorruptError = "Your hunt could not be resolved and was reset"
	ErrMsgTargetVanishedError   = "Your hunting ground is no longer available; the hunt was reset"
	ErrMsgInventoryFullError    = "Inventory is full"
	ErrMsgPlayerNotFoundError   = "Player not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// status codes and messages.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidTarget):
		return http.StatusBadRequest, ErrMsgInvalidTargetError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusForbidden, ErrMsgLevelTooLowError
	case errors.Is(err, domain.ErrPremiumRequired):
		return http.StatusForbidden, ErrMsgPremiumRequiredError
	case errors.Is(err, domain.ErrAlreadyConfigured):
		return http.StatusConflict, ErrMsgAlreadyConfiguredMsg
	case errors.Is(err, domain.ErrDailyLimitReached):
		return http.StatusBadRequest, ErrMsgDailyLimitError
	case errors.Is(err, domain.ErrNothingToClaim):
		return http.StatusBadRequest, ErrMsgNothingToClaimError
	case errors.Is(err, domain.ErrHuntStateCorrupt):
		return http.StatusConflict, ErrMsgHuntStateCorruptError
	case errors.Is(err, domain.ErrTargetVanished):
		return http.StatusConflict, ErrMsgTargetVanishedError
	case errors.Is(err, domain.ErrInventoryFull):
		return http.StatusBadRequest, ErrMsgInventoryFullError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
