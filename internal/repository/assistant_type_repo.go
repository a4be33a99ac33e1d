package repository

import (
	"context"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"gorm.io/gorm"
)

type AssistantTypeRepository interface {
	FindAll(ctx context.Context) ([]*model.AssistantType, error)
}

type assistantTypeRepository struct {
	db *gorm.DB
}

func NewAssistantTypeRepository(db *gorm.DB) AssistantTypeRepository {
	return &assistantTypeRepository{db: db}
}

func (r *assistantTypeRepository) FindAll(ctx context.Context) ([]*model.AssistantType, error) {
	var types []*model.AssistantType
	if err := r.db.WithContext(ctx).
		Order("type ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}

	return types, nil
}
