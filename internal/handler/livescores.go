package handler

import (
	"net/http"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/provider"
)

// LiveScoresHandler proxies the professional cricket live-scores feed.
type LiveScoresHandler struct {
	cricapi *provider.CricAPIClient
}

// NewLiveScoresHandler creates a new LiveScoresHandler.
func NewLiveScoresHandler(cricapi *provider.CricAPIClient) *LiveScoresHandler {
	return &LiveScoresHandler{cricapi: cricapi}
}

// List handles GET /live-scores.
func (h *LiveScoresHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.cricapi.Enabled() {
		RespondJSON(w, http.StatusOK, []provider.LiveScore{})
		return
	}

	scores, err := h.cricapi.CurrentMatches(r.Context())
	if err != nil {
		RespondError(w, domain.ErrInternal("fetch live scores", err))
		return
	}
	RespondJSON(w, http.StatusOK, scores)
}
