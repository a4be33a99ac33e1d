package repository

import (
	"context"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"gorm.io/gorm"
)

type AdministratorRepository interface {
	FindByLogin(ctx context.Context, email, credential string) (*model.Administrator, error)
}

type administratorRepository struct {
	db *gorm.DB
}

func NewAdministratorRepository(db *gorm.DB) AdministratorRepository {
	return &administratorRepository{db: db}
}

func (r *administratorRepository) FindByLogin(ctx context.Context, email, credential string) (*model.Administrator, error) {
	var admin model.Administrator
	if err := r.db.WithContext(ctx).
		Where("email = ? AND credential = ?", email, credential).
		First(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}
