package admin

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/handler"
	"github.com/bgc/platform/internal/policy"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MatchAdminHandler handles admin match scheduling and scoring.
type MatchAdminHandler struct {
	matchSvc *service.MatchService
}

// NewMatchAdminHandler creates a new MatchAdminHandler.
func NewMatchAdminHandler(matchSvc *service.MatchService) *MatchAdminHandler {
	return &MatchAdminHandler{matchSvc: matchSvc}
}

// Create handles POST /admin/matches.
func (h *MatchAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	var input service.CreateMatchInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondBadBody(w)
		return
	}

	match, err := h.matchSvc.Create(r.Context(), callerID, input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, match)
}

// UpdateScore handles PATCH /admin/matches/{id}/score.
func (h *MatchAdminHandler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	callerID, err := handler.CallerID(r)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid match id"))
		return
	}

	var patch policy.ScorePatch
	if err := handler.DecodeJSON(r, &patch); err != nil {
		handler.RespondBadBody(w)
		return
	}

	match, err := h.matchSvc.UpdateScore(r.Context(), callerID, id, patch)
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, match)
}
