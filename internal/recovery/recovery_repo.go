package recovery

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/propline/proppool/internal/pool"
)

type RecoveryRepository interface {
	CreateToken(token *RecoveryToken) error
	FindValid(poolID uint, token string, now time.Time) (*RecoveryToken, error)
	GetParticipant(poolID, participantID uint) (*pool.Participant, error)
	MarkUsed(tokenID uint, at time.Time) error
	PurgeExpired(now time.Time) error
	WithTransaction(txFunc func(RecoveryRepository) error) error
}

type recoveryRepository struct {
	db *gorm.DB
}

func NewRecoveryRepository(db *gorm.DB) RecoveryRepository {
	return &recoveryRepository{db: db}
}

func (r *recoveryRepository) CreateToken(token *RecoveryToken) error {
	return r.db.Create(token).Error
}

// FindValid matches existence, pool binding, expiry and single-use in one
// query, so callers cannot distinguish the failure modes.
func (r *recoveryRepository) FindValid(poolID uint, token string, now time.Time) (*RecoveryToken, error) {
	var row RecoveryToken
	err := r.db.Where("token = ? AND pool_id = ? AND used_at IS NULL AND expires_at > ?", token, poolID, now).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// GetParticipant runs on this repository's own connection so redeem can look
// the participant up inside its transaction.
func (r *recoveryRepository) GetParticipant(poolID, participantID uint) (*pool.Participant, error) {
	var participant pool.Participant
	err := r.db.Where("id = ? AND pool_id = ?", participantID, poolID).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *recoveryRepository) MarkUsed(tokenID uint, at time.Time) error {
	return r.db.Model(&RecoveryToken{}).Where("id = ?", tokenID).Update("used_at", at).Error
}

func (r *recoveryRepository) PurgeExpired(now time.Time) error {
	return r.db.Where("expires_at <= ?", now).Delete(&RecoveryToken{}).Error
}

func (r *recoveryRepository) WithTransaction(txFunc func(RecoveryRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &recoveryRepository{db: tx}
		return txFunc(txRepo)
	})
}
