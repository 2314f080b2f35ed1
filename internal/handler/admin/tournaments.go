// Package admin holds the admin-only HTTP handlers. Routes sit behind the
// role-claim middleware as a fast path; the services re-check the users row,
// which stays authoritative.
package admin

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/handler"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TournamentAdminHandler handles admin tournament management.
type TournamentAdminHandler struct {
	tournamentSvc *service.TournamentService
}

// NewTournamentAdminHandler creates a new TournamentAdminHandler.
func NewTournamentAdminHandler(tournamentSvc *service.TournamentService) *TournamentAdminHandler {
	return &TournamentAdminHandler{tournamentSvc: tournamentSvc}
}

// Create handles POST /admin/tournaments.
func (h *TournamentAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	var input service.TournamentInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondBadBody(w)
		return
	}

	tournament, err := h.tournamentSvc.Create(r.Context(), callerID, input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, tournament)
}

// Mine handles GET /admin/tournaments/mine.
func (h *TournamentAdminHandler) Mine(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	tournaments, err := h.tournamentSvc.ListMine(r.Context(), callerID)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, tournaments)
}

// UpdateStatus handles PATCH /admin/tournaments/{id}/status.
func (h *TournamentAdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid tournament id"))
		return
	}

	var input struct {
		Status domain.TournamentStatus `json:"status"`
	}
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondBadBody(w)
		return
	}

	if err := h.tournamentSvc.UpdateStatus(r.Context(), callerID, id, input.Status); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": string(input.Status)})
}
