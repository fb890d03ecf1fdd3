package pick

import (
	"errors"

	"gorm.io/gorm"
)

type PickRepository interface {
	GetPick(participantID, propID uint) (*Pick, error)
	CreatePick(pick *Pick) error
	UpdatePick(pick *Pick) error
	ListByParticipant(poolID, participantID uint) ([]Pick, error)
	ListByPool(poolID uint) ([]Pick, error)
	WithTransaction(txFunc func(PickRepository) error) error
}

type pickRepository struct {
	db *gorm.DB
}

func NewPickRepository(db *gorm.DB) PickRepository {
	return &pickRepository{db: db}
}

func (r *pickRepository) GetPick(participantID, propID uint) (*Pick, error) {
	var pick Pick
	err := r.db.Where("participant_id = ? AND prop_id = ?", participantID, propID).First(&pick).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pick, nil
}

func (r *pickRepository) CreatePick(pick *Pick) error {
	return r.db.Create(pick).Error
}

func (r *pickRepository) UpdatePick(pick *Pick) error {
	return r.db.Save(pick).Error
}

func (r *pickRepository) ListByParticipant(poolID, participantID uint) ([]Pick, error) {
	var picks []Pick
	err := r.db.Where("pool_id = ? AND participant_id = ?", poolID, participantID).
		Order("prop_id asc").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

func (r *pickRepository) ListByPool(poolID uint) ([]Pick, error) {
	var picks []Pick
	err := r.db.Where("pool_id = ?", poolID).
		Order("prop_id asc, participant_id asc").
		Find(&picks).Error
	if err != nil {
		return nil, err
	}
	return picks, nil
}

func (r *pickRepository) WithTransaction(txFunc func(PickRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &pickRepository{db: tx}
		return txFunc(txRepo)
	})
}
