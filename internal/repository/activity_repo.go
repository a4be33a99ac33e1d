package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, assistantshipID uint, description, evidence string) (*model.Activity, error)
	FindByID(ctx context.Context, id uint) (*model.Activity, error)
	FindAll(ctx context.Context) ([]*model.Activity, error)
	FindByAssistantship(ctx context.Context, assistantshipID uint) ([]*model.Activity, error)
	FindByAssistantshipAndPeriod(ctx context.Context, assistantshipID uint, period string) ([]*model.Activity, error)
	Update(ctx context.Context, id uint, description, evidence string) error
	Delete(ctx context.Context, id uint) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create assigns the timestamp (UTC, at insert time) and snapshots the name
// of the current period into the row. Requires the assistantship to exist and
// a period to be current; both checks share the insert transaction.
func (r *activityRepository) Create(ctx context.Context, assistantshipID uint, description, evidence string) (*model.Activity, error) {
	var activity *model.Activity

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Assistantship{}).
			Where("id = ?", assistantshipID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("assistantship does not exist: %w", apperror.ErrInvalidInput)
		}

		var current model.Period
		if err := tx.Where("is_current = ?", true).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("no period is currently active: %w", apperror.ErrInvalidInput)
			}
			return err
		}

		activity = &model.Activity{
			AssistantshipID: assistantshipID,
			Timestamp:       time.Now().UTC(),
			Description:     description,
			Evidence:        evidence,
			Period:          current.Name,
		}

		return tx.Create(activity).Error
	})
	if err != nil {
		return nil, err
	}

	return activity, nil
}

func (r *activityRepository) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}

func (r *activityRepository) FindAll(ctx context.Context) ([]*model.Activity, error) {
	var activities []*model.Activity
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) FindByAssistantship(ctx context.Context, assistantshipID uint) ([]*model.Activity, error) {
	var activities []*model.Activity
	if err := r.db.WithContext(ctx).
		Where("assistantship_id = ?", assistantshipID).
		Order("timestamp DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *activityRepository) FindByAssistantshipAndPeriod(ctx context.Context, assistantshipID uint, period string) ([]*model.Activity, error) {
	var activities []*model.Activity
	if err := r.db.WithContext(ctx).
		Where("assistantship_id = ? AND period = ?", assistantshipID, period).
		Order("timestamp DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}

// Update overwrites description and evidence; the timestamp and the period
// snapshot never change.
func (r *activityRepository) Update(ctx context.Context, id uint, description, evidence string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"description": description,
			"evidence":    evidence,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
