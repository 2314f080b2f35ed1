package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PlayerHandler handles cricket profile endpoints.
type PlayerHandler struct {
	playerSvc *service.PlayerService
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(playerSvc *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerSvc: playerSvc}
}

// List handles GET /players (the public roster).
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerSvc.ListActive(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, players)
}

// Mine handles GET /players/me.
func (h *PlayerHandler) Mine(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	player, err := h.playerSvc.Mine(r.Context(), callerID)
	if err != nil {
		RespondError(w, err)
		return
	}
	if player == nil {
		RespondError(w, domain.ErrNotFound("player profile", callerID.String()))
		return
	}
	RespondJSON(w, http.StatusOK, player)
}

// Create handles POST /players.
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	var input service.PlayerInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondBadBody(w)
		return
	}

	player, err := h.playerSvc.Create(r.Context(), callerID, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusCreated, player)
}

// Update handles PUT /players/{id}.
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := CallerID(r)
	if err != nil {
		RespondError(w, err)
		return
	}

	playerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid player id"))
		return
	}

	var input service.PlayerInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondBadBody(w)
		return
	}

	player, err := h.playerSvc.Update(r.Context(), callerID, playerID, input)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, player)
}
