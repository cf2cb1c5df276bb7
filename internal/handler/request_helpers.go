package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// returns appropriate errors. If this function returns an error, the HTTP
// response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetPlayerIDParam retrieves and parses the required player_id query
// parameter. If ok is false, the HTTP response has already been written and
// the handler should return.
func GetPlayerIDParam(r *http.Request, w http.ResponseWriter) (int64, bool) {
	log := logger.FromContext(r.Context())

	raw := r.URL.Query().Get("player_id")
	if raw == "" {
		log.Warn("Missing player_id query parameter")
		http.Error(w, fmt.Sprintf(ErrMsgMissingQueryParam, "player_id"), http.StatusBadRequest)
		return 0, false
	}

	playerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || playerID <= 0 {
		log.Warn("Invalid player_id query parameter", "player_id", raw)
		http.Error(w, ErrMsgInvalidPlayerID, http.StatusBadRequest)
		return 0, false
	}
	return playerID, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when the parameter is missing.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
