package admin

import (
	"net/http"

	"github.com/bgc/platform/internal/handler"
	"github.com/bgc/platform/internal/service"
)

// UserAdminHandler handles admin promotion.
type UserAdminHandler struct {
	profileSvc *service.ProfileService
}

// NewUserAdminHandler creates a new UserAdminHandler.
func NewUserAdminHandler(profileSvc *service.ProfileService) *UserAdminHandler {
	return &UserAdminHandler{profileSvc: profileSvc}
}

// MakeAdmin handles POST /me/make-admin. Any authenticated user may call it;
// the shared setup password is the gate.
func (h *UserAdminHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	var input struct {
		Password string `json:"password"`
	}
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondBadBody(w)
		return
	}

	if err := h.profileSvc.MakeAdmin(r.Context(), callerID, input.Password); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]bool{"admin": true})
}
