package score

import (
	"time"

	"gorm.io/gorm"

	"github.com/propline/proppool/internal/prop"
)

// ScoreRepository holds the write side of resolution. Callers compose the
// steps inside WithTransaction so the prop update, pick scoring and total
// recomputation commit or roll back together.
type ScoreRepository interface {
	MarkResolved(propID uint, correctIndex int, at time.Time) error
	ScorePicks(propID uint, correctIndex, pointValue int, at time.Time) error
	RecomputeTotals(propID uint, at time.Time) error
	Breakdown(propID uint) ([]ParticipantResult, error)
	WithTransaction(txFunc func(ScoreRepository) error) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) MarkResolved(propID uint, correctIndex int, at time.Time) error {
	return r.db.Model(&prop.Prop{}).
		Where("id = ?", propID).
		Updates(map[string]interface{}{
			"correct_option_index": correctIndex,
			"resolved_at":          at,
		}).Error
}

// ScorePicks overwrites PointsEarned on every pick of the prop, matching or
// not.
func (r *scoreRepository) ScorePicks(propID uint, correctIndex, pointValue int, at time.Time) error {
	return r.db.Exec(
		"UPDATE picks SET points_earned = CASE WHEN selected_option_index = ? THEN ? ELSE 0 END, updated_at = ? WHERE prop_id = ?",
		correctIndex, pointValue, at, propID,
	).Error
}

// RecomputeTotals rebuilds TotalPoints as the sum of each affected
// participant's scored picks. Totals are recomputed, never incremented.
func (r *scoreRepository) RecomputeTotals(propID uint, at time.Time) error {
	return r.db.Exec(
		`UPDATE participants
		 SET total_points = (
		     SELECT COALESCE(SUM(points_earned), 0)
		     FROM picks
		     WHERE picks.participant_id = participants.id
		 ), updated_at = ?
		 WHERE participants.id IN (SELECT participant_id FROM picks WHERE prop_id = ?)`,
		at, propID,
	).Error
}

func (r *scoreRepository) Breakdown(propID uint) ([]ParticipantResult, error) {
	var results []ParticipantResult
	err := r.db.Table("picks").
		Select("picks.participant_id, participants.name, picks.selected_option_index, picks.points_earned").
		Joins("JOIN participants ON participants.id = picks.participant_id").
		Where("picks.prop_id = ?", propID).
		Order("participants.name asc").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *scoreRepository) WithTransaction(txFunc func(ScoreRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &scoreRepository{db: tx}
		return txFunc(txRepo)
	})
}
