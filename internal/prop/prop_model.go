package prop

import (
	"time"

	"gorm.io/gorm"

	"github.com/propline/proppool/internal/models"
)

// Prop is one multiple-choice question in a pool. Options are stored as a
// JSON-encoded list; CorrectOptionIndex stays null until the captain
// resolves the prop.
type Prop struct {
	gorm.Model
	PoolID             uint              `json:"pool_id" gorm:"not null;index"`
	Question           string            `json:"question" gorm:"not null"`
	Options            models.StringList `json:"options" gorm:"type:text;not null"`
	PointValue         int               `json:"point_value" gorm:"not null;default:1"`
	Category           string            `json:"category,omitempty"`
	DisplayOrder       int               `json:"display_order" gorm:"not null;default:0;index"`
	CorrectOptionIndex *int              `json:"correct_option_index"`
	ResolvedAt         *time.Time        `json:"resolved_at,omitempty"`
}

// Resolved reports whether the captain has settled this prop.
func (p *Prop) Resolved() bool {
	return p.ResolvedAt != nil
}

// ValidOptionIndex reports whether idx addresses one of the prop's options.
func (p *Prop) ValidOptionIndex(idx int) bool {
	return idx >= 0 && idx < len(p.Options)
}

// --- Request/Response DTOs ---

type CreatePropRequest struct {
	Question   string   `json:"question" binding:"required,min=1,max=300" example:"Who scores first?"`
	Options    []string `json:"options" binding:"required,min=2,max=12,dive,required,max=120"`
	PointValue *int     `json:"point_value" binding:"omitempty,gte=1,lte=1000"`
	Category   string   `json:"category" binding:"omitempty,max=60" example:"First Half"`
}

type UpdatePropRequest struct {
	Question   *string  `json:"question" binding:"omitempty,min=1,max=300"`
	Options    []string `json:"options" binding:"omitempty,min=2,max=12,dive,required,max=120"`
	PointValue *int     `json:"point_value" binding:"omitempty,gte=1,lte=1000"`
	Category   *string  `json:"category" binding:"omitempty,max=60"`
}

// ReorderRequest must list every prop in the pool exactly once.
type ReorderRequest struct {
	PropIDs []uint `json:"prop_ids" binding:"required,min=1"`
}
