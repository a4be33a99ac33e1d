package repository

import (
	"context"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type AssistantshipRepository interface {
	Create(ctx context.Context, assistantship *model.Assistantship) error
	FindByID(ctx context.Context, id uint) (*model.Assistantship, error)
	FindByAssistant(ctx context.Context, assistantID string) (*model.Assistantship, error)
	FindBySupervisor(ctx context.Context, supervisorID string) ([]*model.Assistantship, error)
	FindAll(ctx context.Context) ([]*model.Assistantship, error)
	SetObjective(ctx context.Context, id uint, objective string) error
	Delete(ctx context.Context, id uint) error
}

type assistantshipRepository struct {
	db *gorm.DB
}

func NewAssistantshipRepository(db *gorm.DB) AssistantshipRepository {
	return &assistantshipRepository{db: db}
}

// Create inserts the assistantship after verifying, all inside one
// transaction, that the assistant exists, the supervisor exists and the
// assistant does not already hold an assistantship. The unique index on
// assistant_id backs the last check against concurrent inserts.
func (r *assistantshipRepository) Create(ctx context.Context, assistantship *model.Assistantship) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Assistant{}).
			Where("national_id = ?", assistantship.AssistantID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("assistant cedula does not exist: %w", apperror.ErrInvalidInput)
		}

		if err := tx.Model(&model.Supervisor{}).
			Where("national_id = ?", assistantship.SupervisorID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("supervisor cedula does not exist: %w", apperror.ErrInvalidInput)
		}

		if err := tx.Model(&model.Assistantship{}).
			Where("assistant_id = ?", assistantship.AssistantID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("this assistant already has an assistantship: %w", apperror.ErrConflict)
		}

		return tx.Create(assistantship).Error
	})
}

func (r *assistantshipRepository) FindByID(ctx context.Context, id uint) (*model.Assistantship, error) {
	var assistantship model.Assistantship
	if err := r.db.WithContext(ctx).
		First(&assistantship, id).Error; err != nil {
		return nil, err
	}

	return &assistantship, nil
}

func (r *assistantshipRepository) FindByAssistant(ctx context.Context, assistantID string) (*model.Assistantship, error) {
	var assistantship model.Assistantship
	if err := r.db.WithContext(ctx).
		Where("assistant_id = ?", assistantID).
		First(&assistantship).Error; err != nil {
		return nil, err
	}

	return &assistantship, nil
}

func (r *assistantshipRepository) FindBySupervisor(ctx context.Context, supervisorID string) ([]*model.Assistantship, error) {
	var assistantships []*model.Assistantship
	if err := r.db.WithContext(ctx).
		Where("supervisor_id = ?", supervisorID).
		Order("id DESC").
		Find(&assistantships).Error; err != nil {
		return nil, err
	}

	return assistantships, nil
}

func (r *assistantshipRepository) FindAll(ctx context.Context) ([]*model.Assistantship, error) {
	var assistantships []*model.Assistantship
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&assistantships).Error; err != nil {
		return nil, err
	}

	return assistantships, nil
}

// SetObjective touches the objective text and nothing else.
func (r *assistantshipRepository) SetObjective(ctx context.Context, id uint, objective string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Assistantship{}).
		Where("id = ?", id).
		Update("objective", objective)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *assistantshipRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Assistantship{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
