package policy

import "github.com/bgc/platform/internal/domain"

// ScorePatch is a partial update of the match scoreboard. Nil fields are left
// untouched; the update is a patch, not a full transition function. Scores
// and overs are free text; winner is free text and not checked against the
// two team names.
type ScorePatch struct {
	Team1Score     *string             `json:"team1_score,omitempty"`
	Team2Score     *string             `json:"team2_score,omitempty"`
	Team1Overs     *string             `json:"team1_overs,omitempty"`
	Team2Overs     *string             `json:"team2_overs,omitempty"`
	CurrentBatting *domain.BattingSide `json:"current_batting,omitempty"`
	Status         *domain.MatchStatus `json:"status,omitempty"`
	Winner         *string             `json:"winner,omitempty"`
}

// IsEmpty reports whether the patch carries no fields.
func (p ScorePatch) IsEmpty() bool {
	return p.Team1Score == nil && p.Team2Score == nil &&
		p.Team1Overs == nil && p.Team2Overs == nil &&
		p.CurrentBatting == nil && p.Status == nil && p.Winner == nil
}

// Validate checks the enumerable fields when present. Status may move in any
// direction; there is no forbidden-transition table. Applying the patch is
// the repository's job (dynamic SET clauses per present field).
func (p ScorePatch) Validate() *domain.AppError {
	if p.IsEmpty() {
		return domain.ErrValidation("score update carries no fields")
	}
	if p.Status != nil && !domain.ValidMatchStatus(*p.Status) {
		return domain.ErrValidation("invalid match status: " + string(*p.Status))
	}
	if p.CurrentBatting != nil && !domain.ValidBattingSide(*p.CurrentBatting) {
		return domain.ErrValidation("invalid batting side: " + string(*p.CurrentBatting))
	}
	return nil
}
