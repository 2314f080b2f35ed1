package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TeamHandler handles team registration and listing endpoints.
type TeamHandler struct {
	registrationSvc *service.RegistrationService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(registrationSvc *service.RegistrationService) *TeamHandler {
	return &TeamHandler{registrationSvc: registrationSvc}
}

// Register handles POST /teams.
func (h *TeamHandler) Register(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var input service.RegisterTeamInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondBadBody(w)
		return
	}

	team, err := h.registrationSvc.RegisterTeam(r.Context(), callerID, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, team)
}

// Mine handles GET /teams/mine.
func (h *TeamHandler) Mine(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	teams, err := h.registrationSvc.ListMyTeams(r.Context(), callerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, teams)
}

// Get handles GET /teams/{id}.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid team id"))
		return
	}

	team, err := h.registrationSvc.GetTeam(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, team)
}
