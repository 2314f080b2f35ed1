package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/service"
)

// MessageHandler handles the member side of the admin inbox.
type MessageHandler struct {
	messageSvc *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageSvc *service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// Send handles POST /messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var input service.SendInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondBadBody(w)
		return
	}

	message, err := h.messageSvc.Send(r.Context(), callerID, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, message)
}
