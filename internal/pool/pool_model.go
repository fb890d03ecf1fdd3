// pool/model.go
package pool

import (
	"time"

	"gorm.io/gorm"

	"github.com/propline/proppool/internal/models"
)

// Status is the lifecycle state of a pool. Transitions are forward-only:
// draft → open → locked → completed.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusOpen      Status = "open"
	StatusLocked    Status = "locked"
	StatusCompleted Status = "completed"
)

// ParticipantStatus marks whether a participant still counts for the pool.
type ParticipantStatus string

const (
	ParticipantActive  ParticipantStatus = "active"
	ParticipantRemoved ParticipantStatus = "removed"
)

// Pool represents one prop-betting contest.
type Pool struct {
	gorm.Model
	Name          string     `json:"name" gorm:"not null"`
	Description   string     `json:"description"`
	BuyIn         string     `json:"buy_in"`
	Code          string     `json:"code" gorm:"uniqueIndex;not null"`
	CaptainName   string     `json:"captain_name" gorm:"not null"`
	CaptainSecret string     `json:"-" gorm:"uniqueIndex;not null"` // immutable after creation
	Status        Status     `json:"status" gorm:"type:varchar(16);not null;default:'open';index"`
	LockedAt      *time.Time `json:"locked_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`

	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:PoolID"`
}

// Participant is one player in a pool. The captain is the participant whose
// Secret equals the pool's CaptainSecret; both rows are created in the same
// transaction.
type Participant struct {
	gorm.Model
	PoolID      uint              `json:"pool_id" gorm:"not null;uniqueIndex:idx_participants_pool_name"`
	Name        string            `json:"name" gorm:"not null;uniqueIndex:idx_participants_pool_name"`
	Secret      string            `json:"-" gorm:"uniqueIndex;not null"`
	TotalPoints int               `json:"total_points" gorm:"not null;default:0"`
	Status      ParticipantStatus `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	JoinedAt    time.Time         `json:"joined_at"`
}

// PropSummary is the slice of prop data the public pool view carries. It is
// scanned straight off the props table so the pool package stays independent
// of the prop feature package.
type PropSummary struct {
	ID                 uint              `json:"id"`
	Question           string            `json:"question"`
	Options            models.StringList `json:"options"`
	PointValue         int               `json:"point_value"`
	CorrectOptionIndex *int              `json:"correct_option_index"`
	Category           string            `json:"category,omitempty"`
	DisplayOrder       int               `json:"display_order"`
	ResolvedAt         *time.Time        `json:"resolved_at,omitempty"`
}

// --- Request/Response DTOs ---

type CreatePoolRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=120" example:"Sunday Showdown"`
	Description string `json:"description" binding:"max=500" example:"Picks for the big game"`
	BuyIn       string `json:"buy_in" binding:"max=120" example:"$5 or a six-pack"`
	CaptainName string `json:"captain_name" binding:"required,min=1,max=40" example:"Alice"`
	Code        string `json:"code" binding:"omitempty,min=4,max=24,alphanum" example:"SUNDAY25"`
	Draft       bool   `json:"draft"` // stage the pool before opening it for joins
}

type CreatePoolResponse struct {
	Pool          *Pool  `json:"pool"`
	CaptainSecret string `json:"captain_secret"`
	JoinURL       string `json:"join_url"`
}

type JoinPoolRequest struct {
	Name string `json:"name" binding:"required,min=1,max=40" example:"Bob"`
}

type JoinPoolResponse struct {
	Participant *Participant `json:"participant"`
	Secret      string       `json:"secret"`
}

type UpdatePoolRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	BuyIn       *string `json:"buy_in" binding:"omitempty,max=120"`
}

type ChangeStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=open locked completed"`
}

// Viewer identifies the caller within a pool view when a valid secret rides
// the request.
type Viewer struct {
	ParticipantID uint   `json:"participant_id"`
	Name          string `json:"name"`
	IsCaptain     bool   `json:"is_captain"`
}

// PoolDetail is the public view of a pool: the pool row, its props in display
// order, the active roster and (optionally) the calling participant.
type PoolDetail struct {
	Pool         *Pool         `json:"pool"`
	Props        []PropSummary `json:"props"`
	Participants []Participant `json:"participants"`
	Viewer       *Viewer       `json:"viewer,omitempty"`
}

type MeResponse struct {
	Participant *Participant `json:"participant"`
	IsCaptain   bool         `json:"is_captain"`
	PoolStatus  Status       `json:"pool_status"`
	PicksCount  int64        `json:"picks_count"`
}
