package repository

import (
	"context"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type PeriodRepository interface {
	Create(ctx context.Context, period *model.Period) error
	SetCurrent(ctx context.Context, name string, isCurrent bool) error
	FindCurrent(ctx context.Context) (*model.Period, error)
	FindByName(ctx context.Context, name string) (*model.Period, error)
	FindAll(ctx context.Context) ([]*model.Period, error)
	Delete(ctx context.Context, name string) error
}

type periodRepository struct {
	db *gorm.DB
}

func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

// Create rejects duplicate names and, when the new period is to be current,
// clears the flag on every other period first. Both steps share the insert
// transaction so no two periods are ever observably current.
func (r *periodRepository) Create(ctx context.Context, period *model.Period) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Period{}).
			Where("name = ?", period.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("a period with this name already exists: %w", apperror.ErrConflict)
		}

		if period.IsCurrent {
			if err := tx.Model(&model.Period{}).
				Where("is_current = ?", true).
				Update("is_current", false).Error; err != nil {
				return err
			}
		}

		return tx.Create(period).Error
	})
}

// SetCurrent flips the currency flag on one period. The existence check runs
// first so a missing name never leaves other periods deactivated.
func (r *periodRepository) SetCurrent(ctx context.Context, name string, isCurrent bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Period{}).
			Where("name = ?", name).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if isCurrent {
			if err := tx.Model(&model.Period{}).
				Where("is_current = ? AND name <> ?", true, name).
				Update("is_current", false).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Period{}).
			Where("name = ?", name).
			Update("is_current", isCurrent).Error
	})
}

func (r *periodRepository) FindCurrent(ctx context.Context) (*model.Period, error) {
	var period model.Period
	if err := r.db.WithContext(ctx).
		Where("is_current = ?", true).
		First(&period).Error; err != nil {
		return nil, err
	}

	return &period, nil
}

func (r *periodRepository) FindByName(ctx context.Context, name string) (*model.Period, error) {
	var period model.Period
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&period).Error; err != nil {
		return nil, err
	}

	return &period, nil
}

func (r *periodRepository) FindAll(ctx context.Context) ([]*model.Period, error) {
	var periods []*model.Period
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&periods).Error; err != nil {
		return nil, err
	}

	return periods, nil
}

// Delete refuses to remove the period that is currently marked current.
func (r *periodRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var period model.Period
		if err := tx.Where("name = ?", name).First(&period).Error; err != nil {
			return err
		}

		if period.IsCurrent {
			return fmt.Errorf("cannot delete the current period, deactivate it first: %w", apperror.ErrInvalidInput)
		}

		return tx.Where("name = ?", name).Delete(&model.Period{}).Error
	})
}
