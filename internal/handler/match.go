package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MatchHandler handles public match endpoints.
type MatchHandler struct {
	matchSvc *service.MatchService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(matchSvc *service.MatchService) *MatchHandler {
	return &MatchHandler{matchSvc: matchSvc}
}

// List handles GET /matches?status=live.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.MatchStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.MatchLive
	}

	matches, err := h.matchSvc.ListByStatus(r.Context(), status)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, matches)
}

// Get handles GET /matches/{id}.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid match id"))
		return
	}

	match, err := h.matchSvc.Get(r.Context(), id)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, match)
}
