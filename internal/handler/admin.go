package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/IdleHunt_Go/internal/eventlog"
	"github.com/osse101/IdleHunt_Go/internal/hunt"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// Reloader is anything that can atomically reload its configuration
type Reloader interface {
	Reload() error
}

// AdminHandler serves operator endpoints for the hunt system
type AdminHandler struct {
	huntService hunt.Service
	history     eventlog.Service
	catalogs    []Reloader
}

// NewAdminHandler creates the admin handler. catalogs are reloaded together
// by the reload endpoint.
func NewAdminHandler(huntService hunt.Service, history eventlog.Service, catalogs ...Reloader) *AdminHandler {
	return &AdminHandler{
		huntService: huntService,
		history:     history,
		catalogs:    catalogs,
	}
}

// SetDailyLimitRequest is the body for overriding a player's daily quota
type SetDailyLimitRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
	Seconds  int64 `json:"seconds" validate:"required,gt=0"`
}

// HandleReloadCatalogs reloads the hunting catalogs from disk
// @Summary Reload hunting catalogs
// @Description Atomically reloads group and monster configuration; a bad file keeps the previous catalog
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/hunt/reload [post]
func (h *AdminHandler) HandleReloadCatalogs(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	for _, catalog := range h.catalogs {
		if err := catalog.Reload(); err != nil {
			log.Error("Catalog reload failed", "error", err)
			respondError(w, http.StatusInternalServerError, err.Error(), "")
			return
		}
	}

	log.Info("Hunting catalogs reloaded")
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCatalogReloadSuccess})
}

// HandleSetDailyLimit overrides a player's daily hunting quota
// @Summary Set a player's daily hunting limit
// @Description Overrides the default daily quota in seconds for one player
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetDailyLimitRequest true "Limit override"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/hunt/daily-limit [post]
func (h *AdminHandler) HandleSetDailyLimit(w http.ResponseWriter, r *http.Request) {
	var req SetDailyLimitRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set daily hunt limit"); err != nil {
		return
	}

	if err := h.huntService.SetDailyLimit(r.Context(), req.PlayerID, req.Seconds); err != nil {
		respondServiceError(w, r, "Set daily hunt limit", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgDailyLimitSetSuccess})
}

// ResetPlayerRequest is the body for wiping a player's hunt record
type ResetPlayerRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

// HandleResetPlayer wipes a player's hunt record
// @Summary Reset a player's hunt record
// @Description Deletes the persisted hunt state including daily quota accounting; the player starts fresh
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ResetPlayerRequest true "Player to reset"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/hunt/reset-player [post]
func (h *AdminHandler) HandleResetPlayer(w http.ResponseWriter, r *http.Request) {
	var req ResetPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Reset hunt record"); err != nil {
		return
	}

	if err := h.huntService.ResetPlayer(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Reset hunt record", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayerResetSuccess})
}

// HandleGetHistory returns a player's recent hunt event history
// @Summary Get hunt event history
// @Description Returns the most recent hunt lifecycle events recorded for a player
// @Tags admin
// @Produce json
// @Param player_id query int true "Player ID"
// @Param limit query int false "Maximum number of events (default 20, max 100)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/hunt/history [get]
func (h *AdminHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", "0"))
	if err != nil {
		http.Error(w, ErrMsgInvalidLimit, http.StatusBadRequest)
		return
	}

	entries, err := h.history.GetPlayerHistory(r.Context(), playerID, limit)
	if err != nil {
		respondServiceError(w, r, "Get hunt history", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: entries})
}
