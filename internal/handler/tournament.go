package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TournamentHandler handles public tournament endpoints.
type TournamentHandler struct {
	tournamentSvc   *service.TournamentService
	registrationSvc *service.RegistrationService
	matchSvc        *service.MatchService
}

// NewTournamentHandler creates a new TournamentHandler.
func NewTournamentHandler(
	tournamentSvc *service.TournamentService,
	registrationSvc *service.RegistrationService,
	matchSvc *service.MatchService,
) *TournamentHandler {
	return &TournamentHandler{
		tournamentSvc:   tournamentSvc,
		registrationSvc: registrationSvc,
		matchSvc:        matchSvc,
	}
}

// List handles GET /tournaments?status=upcoming.
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.TournamentStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.TournamentUpcoming
	}

	tournaments, err := h.tournamentSvc.ListByStatus(r.Context(), status)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, tournaments)
}

// Get handles GET /tournaments/{id}.
func (h *TournamentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid tournament id"))
		return
	}

	tournament, err := h.tournamentSvc.Get(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, tournament)
}

// Teams handles GET /tournaments/{id}/teams.
func (h *TournamentHandler) Teams(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid tournament id"))
		return
	}

	teams, err := h.registrationSvc.ListTournamentTeams(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, teams)
}

// Matches handles GET /tournaments/{id}/matches.
func (h *TournamentHandler) Matches(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid tournament id"))
		return
	}

	matches, err := h.matchSvc.ListByTournament(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, matches)
}
