package handler

import (
	"net/http"

	"github.com/osse101/IdleHunt_Go/internal/domain"
	"github.com/osse101/IdleHunt_Go/internal/hunt"
	"github.com/osse101/IdleHunt_Go/internal/logger"
)

// HuntHandler serves the idle hunt API
type HuntHandler struct {
	service hunt.Service
}

// NewHuntHandler creates the idle hunt handler
func NewHuntHandler(service hunt.Service) *HuntHandler {
	return &HuntHandler{service: service}
}

// ConfigureHuntRequest is the body for setting up a hunt
type ConfigureHuntRequest struct {
	PlayerID   int64  `json:"player_id" validate:"required,gt=0"`
	TargetKind string `json:"target_kind" validate:"required,targetkind"`
	TargetID   int64  `json:"target_id" validate:"required,gt=0"`
}

// PlayerSignalRequest is the body for lifecycle signals keyed by player only
type PlayerSignalRequest struct {
	PlayerID int64 `json:"player_id" validate:"required,gt=0"`
}

// StopHuntResponse reports whether a hunt was actually stopped
type StopHuntResponse struct {
	Message string `json:"message"`
	Stopped bool   `json:"stopped"`
}

// HandleGetTargets lists the hunting grounds available to a player
// @Summary List available hunting targets
// @Description Returns the hunting groups the player can configure, filtered by level and premium status
// @Tags hunt
// @Produce json
// @Param player_id query int true "Player ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /hunt/targets [get]
func (h *HuntHandler) HandleGetTargets(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	targets, err := h.service.GetAvailableTargets(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get hunt targets", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: targets})
}

// HandleConfigure sets up an idle hunt while the player is online
// @Summary Configure an idle hunt
// @Description Sets the hunt target; the hunt activates on the player's next logout
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body ConfigureHuntRequest true "Hunt configuration"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /hunt/configure [post]
func (h *HuntHandler) HandleConfigure(w http.ResponseWriter, r *http.Request) {
	var req ConfigureHuntRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Configure hunt"); err != nil {
		return
	}

	target := domain.HuntTarget{Kind: domain.TargetKind(req.TargetKind), ID: req.TargetID}
	status, err := h.service.Configure(r.Context(), req.PlayerID, target)
	if err != nil {
		respondServiceError(w, r, "Configure hunt", err)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{
		Message: MsgHuntConfiguredSuccess,
		Data:    status,
	})
}

// HandleLogout receives the game server's logout signal
// @Summary Player logout signal
// @Description Activates a pending hunt; safe to call for every logout
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body PlayerSignalRequest true "Player"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /hunt/logout [post]
func (h *HuntHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req PlayerSignalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hunt logout signal"); err != nil {
		return
	}

	if err := h.service.OnLogout(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Hunt logout signal", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSignalAccepted})
}

// HandleLogin receives the game server's login signal
// @Summary Player login signal
// @Description Freezes an active hunt for claiming; safe to call for every login
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body PlayerSignalRequest true "Player"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /hunt/login [post]
func (h *HuntHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req PlayerSignalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hunt login signal"); err != nil {
		return
	}

	if err := h.service.OnLogin(r.Context(), req.PlayerID); err != nil {
		respondServiceError(w, r, "Hunt login signal", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSignalAccepted})
}

// HandleClaim simulates the frozen offline interval and grants the rewards
// @Summary Claim idle hunt rewards
// @Description Runs the offline reward simulation and credits exp, gold, and items
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body PlayerSignalRequest true "Player"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /hunt/claim [post]
func (h *HuntHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	var req PlayerSignalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Claim hunt rewards"); err != nil {
		return
	}

	result, err := h.service.Claim(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Claim hunt rewards", err)
		return
	}

	logger.FromContext(r.Context()).Info("Hunt rewards claimed via API",
		"player_id", req.PlayerID,
		"kills", result.Rewards.Kills)

	respondJSON(w, http.StatusOK, DataResponse{Data: result})
}

// HandleStop cancels any configured, running, or unclaimed hunt
// @Summary Stop the current hunt
// @Description Resets the hunt without granting rewards; unclaimed rewards are forfeited
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body PlayerSignalRequest true "Player"
// @Success 200 {object} StopHuntResponse
// @Failure 400 {object} ErrorResponse
// @Router /hunt/stop [post]
func (h *HuntHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	var req PlayerSignalRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Stop hunt"); err != nil {
		return
	}

	stopped, err := h.service.Stop(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Stop hunt", err)
		return
	}

	message := MsgHuntStoppedSuccess
	if !stopped {
		message = MsgNothingToStop
	}
	respondJSON(w, http.StatusOK, StopHuntResponse{Message: message, Stopped: stopped})
}

// HandleStatus returns the player's current hunt view
// @Summary Get hunt status
// @Description Returns phase, target, and remaining daily hunting time
// @Tags hunt
// @Produce json
// @Param player_id query int true "Player ID"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /hunt/status [get]
func (h *HuntHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetPlayerIDParam(r, w)
	if !ok {
		return
	}

	status, err := h.service.GetStatus(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get hunt status", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: status})
}
