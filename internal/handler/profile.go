package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/service"
)

// ProfileHandler handles the caller's own account endpoints.
type ProfileHandler struct {
	profileSvc *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileSvc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Me handles GET /me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	user, err := h.profileSvc.Me(r.Context(), callerID)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, user)
}

// CompleteProfile handles POST /me/profile.
func (h *ProfileHandler) CompleteProfile(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var input service.CompleteProfileInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondBadBody(w)
		return
	}

	user, err := h.profileSvc.CompleteProfile(r.Context(), callerID, input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, user)
}

// VerifyPhone handles POST /me/verify-phone.
func (h *ProfileHandler) VerifyPhone(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var input struct {
		OTP string `json:"otp"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		RespondBadBody(w)
		return
	}

	if err := h.profileSvc.VerifyPhone(r.Context(), callerID, input.OTP); err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]bool{"verified": true})
}
