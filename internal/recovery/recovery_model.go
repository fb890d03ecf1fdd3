package recovery

import (
	"time"

	"github.com/propline/proppool/internal/pool"
)

// RecoveryToken lets a participant regain access without their raw secret
// appearing in a shareable link. Single-use, time-limited, bound to one
// participant in one pool. Rows are hard-deleted once expired, so the model
// skips gorm soft deletes.
type RecoveryToken struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time  `json:"created_at"`
	Token         string     `json:"-" gorm:"uniqueIndex;not null"`
	PoolID        uint       `json:"pool_id" gorm:"not null;index"`
	ParticipantID uint       `json:"participant_id" gorm:"not null;index"`
	ExpiresAt     time.Time  `json:"expires_at" gorm:"not null"`
	UsedAt        *time.Time `json:"used_at"`
}

// --- Request/Response DTOs ---

type MintResponse struct {
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
	RecoveryURL string    `json:"recovery_url"`
}

type RedeemRequest struct {
	Token string `json:"token" binding:"required"`
}

type RedeemResponse struct {
	PoolCode    string            `json:"pool_code"`
	PoolName    string            `json:"pool_name"`
	Participant *pool.Participant `json:"participant"`
	Secret      string            `json:"secret"`
	IsCaptain   bool              `json:"is_captain"`
}
