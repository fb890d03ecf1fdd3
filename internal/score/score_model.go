package score

import (
	"github.com/propline/proppool/internal/pool"
	"github.com/propline/proppool/internal/prop"
)

// --- Request/Response DTOs ---

// ResolveRequest settles a prop. Overwrite must be set to re-resolve a prop
// that already has a correct option; a bare resolve of one is rejected.
type ResolveRequest struct {
	CorrectOptionIndex *int `json:"correct_option_index" binding:"required,gte=0"`
	Overwrite          bool `json:"overwrite"`
}

// ParticipantResult is one participant's outcome on the resolved prop.
type ParticipantResult struct {
	ParticipantID       uint   `json:"participant_id"`
	Name                string `json:"name"`
	SelectedOptionIndex int    `json:"selected_option_index"`
	PointsEarned        int    `json:"points_earned"`
}

type ResolveResponse struct {
	Prop       *prop.Prop          `json:"prop"`
	PoolStatus pool.Status         `json:"pool_status"`
	Results    []ParticipantResult `json:"results"`
}
