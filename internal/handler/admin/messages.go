package admin

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/handler"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MessageAdminHandler handles the admin side of the inbox.
type MessageAdminHandler struct {
	messageSvc *service.MessageService
}

// NewMessageAdminHandler creates a new MessageAdminHandler.
func NewMessageAdminHandler(messageSvc *service.MessageService) *MessageAdminHandler {
	return &MessageAdminHandler{messageSvc: messageSvc}
}

// List handles GET /admin/messages.
func (h *MessageAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	messages, err := h.messageSvc.List(r.Context(), callerID)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, messages)
}

// UnreadCount handles GET /admin/messages/unread-count.
func (h *MessageAdminHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	n, err := h.messageSvc.UnreadCount(r.Context(), callerID)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]int{"unread": n})
}

// MarkRead handles POST /admin/messages/{id}/read.
func (h *MessageAdminHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid message id"))
		return
	}

	if err := h.messageSvc.MarkRead(r.Context(), callerID, id); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]bool{"read": true})
}

// Respond handles POST /admin/messages/{id}/respond.
func (h *MessageAdminHandler) Respond(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid message id"))
		return
	}

	var input struct {
		Response string `json:"response"`
	}
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondBadBody(w)
		return
	}

	message, err := h.messageSvc.Respond(r.Context(), callerID, id, input.Response)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, message)
}
