package prop

import (
	"errors"

	"gorm.io/gorm"
)

type PropRepository interface {
	CreateProp(prop *Prop) error
	GetProp(poolID, propID uint) (*Prop, error)
	ListProps(poolID uint) ([]Prop, error)
	UpdateProp(prop *Prop) error
	DeletePropWithPicks(prop *Prop) error
	NextDisplayOrder(poolID uint) (int, error)
	SetDisplayOrder(poolID, propID uint, order int) error
	CountPicksAtOrAbove(propID uint, optionIndex int) (int64, error)
	WithTransaction(txFunc func(PropRepository) error) error
}

type propRepository struct {
	db *gorm.DB
}

func NewPropRepository(db *gorm.DB) PropRepository {
	return &propRepository{db: db}
}

func (r *propRepository) CreateProp(prop *Prop) error {
	return r.db.Create(prop).Error
}

func (r *propRepository) GetProp(poolID, propID uint) (*Prop, error) {
	var prop Prop
	err := r.db.Where("id = ? AND pool_id = ?", propID, poolID).First(&prop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prop, nil
}

func (r *propRepository) ListProps(poolID uint) ([]Prop, error) {
	var props []Prop
	err := r.db.Where("pool_id = ?", poolID).
		Order("display_order asc, id asc").
		Find(&props).Error
	if err != nil {
		return nil, err
	}
	return props, nil
}

func (r *propRepository) UpdateProp(prop *Prop) error {
	return r.db.Save(prop).Error
}

// DeletePropWithPicks hard-deletes the picks referencing the prop, then
// soft-deletes the prop itself. Callers run it inside WithTransaction.
func (r *propRepository) DeletePropWithPicks(prop *Prop) error {
	if err := r.db.Exec("DELETE FROM picks WHERE prop_id = ?", prop.ID).Error; err != nil {
		return err
	}
	return r.db.Delete(prop).Error
}

// NextDisplayOrder returns max(display_order)+1 among the pool's live props,
// starting at 0 for an empty pool.
func (r *propRepository) NextDisplayOrder(poolID uint) (int, error) {
	var next int
	err := r.db.Model(&Prop{}).
		Where("pool_id = ?", poolID).
		Select("COALESCE(MAX(display_order), -1) + 1").
		Scan(&next).Error
	return next, err
}

func (r *propRepository) SetDisplayOrder(poolID, propID uint, order int) error {
	return r.db.Model(&Prop{}).
		Where("id = ? AND pool_id = ?", propID, poolID).
		Update("display_order", order).Error
}

// CountPicksAtOrAbove counts picks whose selected index would fall off the
// end of a shrunken option list.
func (r *propRepository) CountPicksAtOrAbove(propID uint, optionIndex int) (int64, error) {
	var count int64
	err := r.db.Table("picks").
		Where("prop_id = ? AND selected_option_index >= ?", propID, optionIndex).
		Count(&count).Error
	return count, err
}

func (r *propRepository) WithTransaction(txFunc func(PropRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &propRepository{db: tx}
		return txFunc(txRepo)
	})
}
