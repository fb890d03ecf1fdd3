package pool

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// PoolRepository defines the interface for pool and participant data operations.
type PoolRepository interface {
	// Pool operations
	CreatePool(pool *Pool) error
	GetPoolByCode(code string) (*Pool, error)
	GetPoolByID(id uint) (*Pool, error)
	UpdatePool(pool *Pool) error
	// ChangePoolStatus applies a transition guarded on the expected current
	// status; reports whether any row was updated (false means a concurrent
	// transition won the race).
	ChangePoolStatus(poolID uint, from, to Status, at time.Time) (bool, error)
	CodeExists(code string) (bool, error)

	// Participant operations
	AddParticipant(participant *Participant) error
	GetParticipant(poolID, participantID uint) (*Participant, error)
	GetParticipantByName(poolID uint, name string) (*Participant, error)
	ListParticipants(poolID uint, activeOnly bool) ([]Participant, error)
	SetParticipantStatus(participantID uint, status ParticipantStatus) error

	// Prop summaries for the public pool view (read-only, cross-table)
	ListPropSummaries(poolID uint) ([]PropSummary, error)
	CountParticipantPicks(participantID uint) (int64, error)

	WithTransaction(txFunc func(PoolRepository) error) error
}

type poolRepository struct {
	db *gorm.DB
}

// NewPoolRepository creates a new instance of PoolRepository.
func NewPoolRepository(db *gorm.DB) PoolRepository {
	return &poolRepository{db: db}
}

// --- Pool Operations ---

func (r *poolRepository) CreatePool(pool *Pool) error {
	return r.db.Create(pool).Error
}

func (r *poolRepository) GetPoolByCode(code string) (*Pool, error) {
	var pool Pool
	if err := r.db.Where("code = ?", code).First(&pool).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pool, nil
}

func (r *poolRepository) GetPoolByID(id uint) (*Pool, error) {
	var pool Pool
	if err := r.db.First(&pool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pool, nil
}

func (r *poolRepository) UpdatePool(pool *Pool) error {
	return r.db.Save(pool).Error
}

func (r *poolRepository) ChangePoolStatus(poolID uint, from, to Status, at time.Time) (bool, error) {
	updates := map[string]interface{}{"status": to, "updated_at": at}
	switch to {
	case StatusLocked:
		updates["locked_at"] = at
	case StatusCompleted:
		updates["completed_at"] = at
	}
	tx := r.db.Model(&Pool{}).Where("id = ? AND status = ?", poolID, from).Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *poolRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&Pool{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// --- Participant Operations ---

func (r *poolRepository) AddParticipant(participant *Participant) error {
	return r.db.Create(participant).Error
}

func (r *poolRepository) GetParticipant(poolID, participantID uint) (*Participant, error) {
	var participant Participant
	err := r.db.Where("pool_id = ? AND id = ?", poolID, participantID).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *poolRepository) GetParticipantByName(poolID uint, name string) (*Participant, error) {
	var participant Participant
	err := r.db.Where("pool_id = ? AND name = ?", poolID, name).First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &participant, nil
}

func (r *poolRepository) ListParticipants(poolID uint, activeOnly bool) ([]Participant, error) {
	var participants []Participant
	query := r.db.Where("pool_id = ?", poolID)
	if activeOnly {
		query = query.Where("status = ?", ParticipantActive)
	}
	if err := query.Order("joined_at asc, id asc").Find(&participants).Error; err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *poolRepository) SetParticipantStatus(participantID uint, status ParticipantStatus) error {
	return r.db.Model(&Participant{}).Where("id = ?", participantID).Update("status", status).Error
}

// --- Prop summaries ---

// ListPropSummaries reads props by table name so the pool package does not
// depend on the prop feature package. The manual deleted_at filter replaces
// the soft-delete scope a model query would add.
func (r *poolRepository) ListPropSummaries(poolID uint) ([]PropSummary, error) {
	var props []PropSummary
	err := r.db.Table("props").
		Select("id, question, options, point_value, correct_option_index, category, display_order, resolved_at").
		Where("pool_id = ? AND deleted_at IS NULL", poolID).
		Order("display_order asc, id asc").
		Scan(&props).Error
	if err != nil {
		return nil, err
	}
	return props, nil
}

func (r *poolRepository) CountParticipantPicks(participantID uint) (int64, error) {
	var count int64
	err := r.db.Table("picks").Where("participant_id = ?", participantID).Count(&count).Error
	return count, err
}

func (r *poolRepository) WithTransaction(txFunc func(PoolRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &poolRepository{db: tx}
		return txFunc(txRepo)
	})
}
