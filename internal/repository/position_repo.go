package repository

import (
	"context"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type PositionRepository interface {
	Create(ctx context.Context, position *model.Position) error
	FindByName(ctx context.Context, name string) (*model.Position, error)
	FindAll(ctx context.Context) ([]*model.Position, error)
	Rename(ctx context.Context, name, newName string) error
	Delete(ctx context.Context, name string) error
}

type positionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, position *model.Position) error {
	return r.db.WithContext(ctx).Create(position).Error
}

func (r *positionRepository) FindByName(ctx context.Context, name string) (*model.Position, error) {
	var position model.Position
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&position).Error; err != nil {
		return nil, err
	}

	return &position, nil
}

func (r *positionRepository) FindAll(ctx context.Context) ([]*model.Position, error) {
	var positions []*model.Position
	if err := r.db.WithContext(ctx).Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func (r *positionRepository) Rename(ctx context.Context, name, newName string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Position{}).
		Where("name = ?", name).
		Update("name", newName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes the position unless an assistantship still references it.
// The reference check and the delete run in one transaction so a concurrent
// assistantship insert cannot slip between them.
func (r *positionRepository) Delete(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Assistantship{}).
			Where("position = ?", name).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return fmt.Errorf("position still has assistantships assigned: %w", apperror.ErrConflict)
		}

		result := tx.Where("name = ?", name).Delete(&model.Position{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}
