package admin

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/handler"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TeamAdminHandler handles admin team management.
type TeamAdminHandler struct {
	registrationSvc *service.RegistrationService
}

// NewTeamAdminHandler creates a new TeamAdminHandler.
func NewTeamAdminHandler(registrationSvc *service.RegistrationService) *TeamAdminHandler {
	return &TeamAdminHandler{registrationSvc: registrationSvc}
}

// UpdatePaymentStatus handles PATCH /admin/teams/{id}/payment-status.
func (h *TeamAdminHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid team id"))
		return
	}

	var input struct {
		PaymentStatus domain.PaymentStatus `json:"payment_status"`
	}
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondBadBody(w)
		return
	}

	if err := h.registrationSvc.UpdatePaymentStatus(r.Context(), callerID, id, input.PaymentStatus); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"payment_status": string(input.PaymentStatus)})
}
