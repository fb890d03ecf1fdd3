package pick

import "time"

// Pick is one participant's answer to one prop. The (participant, prop) pair
// is unique: submitting again overwrites. Picks are never soft-deleted, so
// the model carries its own timestamps instead of gorm.Model.
type Pick struct {
	ID                  uint      `json:"id" gorm:"primarykey"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	ParticipantID       uint      `json:"participant_id" gorm:"not null;uniqueIndex:idx_picks_participant_prop"`
	PropID              uint      `json:"prop_id" gorm:"not null;uniqueIndex:idx_picks_participant_prop;index"`
	PoolID              uint      `json:"pool_id" gorm:"not null;index"`
	SelectedOptionIndex int       `json:"selected_option_index" gorm:"not null"`
	PointsEarned        *int      `json:"points_earned"`
}

// --- Request/Response DTOs ---

// SubmitPickRequest uses a pointer for the index so option 0 survives
// required-field validation.
type SubmitPickRequest struct {
	PropID              uint `json:"prop_id" binding:"required"`
	SelectedOptionIndex *int `json:"selected_option_index" binding:"required,gte=0"`
}

type MyPicksResponse struct {
	Picks []Pick `json:"picks"`
}
