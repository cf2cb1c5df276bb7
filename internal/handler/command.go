package handler

import (
	"net/http"

	"github.com/osse101/IdleHunt_Go/internal/script"
)

// CommandHandler routes game chat lines through the Lua command bridge
type CommandHandler struct {
	dispatcher *script.Dispatcher
}

// NewCommandHandler creates the chat command handler
func NewCommandHandler(dispatcher *script.Dispatcher) *CommandHandler {
	return &CommandHandler{dispatcher: dispatcher}
}

// ChatCommandRequest is a chat line forwarded by the game server
type ChatCommandRequest struct {
	PlayerID int64  `json:"player_id" validate:"required,gt=0"`
	Text     string `json:"text" validate:"required,max=256"`
}

// ChatCommandResponse carries the reply lines for the player. Handled is
// false when the text was not a hunt command and should pass through as chat.
type ChatCommandResponse struct {
	Handled bool     `json:"handled"`
	Lines   []string `json:"lines,omitempty"`
}

// HandleChatCommand parses and executes one chat line
// @Summary Execute a hunt chat command
// @Description Runs a forwarded chat line through the command parser; non-commands are reported as unhandled
// @Tags hunt
// @Accept json
// @Produce json
// @Param request body ChatCommandRequest true "Chat line"
// @Success 200 {object} ChatCommandResponse
// @Failure 400 {object} ErrorResponse
// @Router /hunt/command [post]
func (h *CommandHandler) HandleChatCommand(w http.ResponseWriter, r *http.Request) {
	var req ChatCommandRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hunt chat command"); err != nil {
		return
	}

	lines, handled, err := h.dispatcher.HandleChat(r.Context(), req.PlayerID, req.Text)
	if err != nil && handled {
		respondServiceError(w, r, "Hunt chat command", err)
		return
	}
	if err != nil {
		// Parser failures degrade to pass-through chat
		respondJSON(w, http.StatusOK, ChatCommandResponse{Handled: false})
		return
	}

	respondJSON(w, http.StatusOK, ChatCommandResponse{Handled: handled, Lines: lines})
}
