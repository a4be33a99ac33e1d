package repository

import (
	"context"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type SupervisorRepository interface {
	Create(ctx context.Context, supervisor *model.Supervisor) error
	FindByID(ctx context.Context, nationalID string) (*model.Supervisor, error)
	FindByEmail(ctx context.Context, email string) (*model.Supervisor, error)
	FindByLogin(ctx context.Context, email, credential string) (*model.Supervisor, error)
	FindAll(ctx context.Context) ([]*model.Supervisor, error)
	Update(ctx context.Context, supervisor *model.Supervisor) error
	Delete(ctx context.Context, nationalID string) error
}

type supervisorRepository struct {
	db *gorm.DB
}

func NewSupervisorRepository(db *gorm.DB) SupervisorRepository {
	return &supervisorRepository{db: db}
}

// Create mirrors AssistantRepository.Create: the cedula must not already
// exist on the assistant side, checked inside the insert transaction.
func (r *supervisorRepository) Create(ctx context.Context, supervisor *model.Supervisor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Assistant{}).
			Where("national_id = ?", supervisor.NationalID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return fmt.Errorf("an assistant with this cedula already exists: %w", apperror.ErrConflict)
		}

		return tx.Create(supervisor).Error
	})
}

func (r *supervisorRepository) FindByID(ctx context.Context, nationalID string) (*model.Supervisor, error) {
	var supervisor model.Supervisor
	if err := r.db.WithContext(ctx).
		Where("national_id = ?", nationalID).
		First(&supervisor).Error; err != nil {
		return nil, err
	}

	return &supervisor, nil
}

func (r *supervisorRepository) FindByEmail(ctx context.Context, email string) (*model.Supervisor, error) {
	var supervisor model.Supervisor
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&supervisor).Error; err != nil {
		return nil, err
	}

	return &supervisor, nil
}

func (r *supervisorRepository) FindByLogin(ctx context.Context, email, credential string) (*model.Supervisor, error) {
	var supervisor model.Supervisor
	if err := r.db.WithContext(ctx).
		Where("email = ? AND credential = ?", email, credential).
		First(&supervisor).Error; err != nil {
		return nil, err
	}

	return &supervisor, nil
}

func (r *supervisorRepository) FindAll(ctx context.Context) ([]*model.Supervisor, error) {
	var supervisors []*model.Supervisor
	if err := r.db.WithContext(ctx).Find(&supervisors).Error; err != nil {
		return nil, err
	}

	return supervisors, nil
}

func (r *supervisorRepository) Update(ctx context.Context, supervisor *model.Supervisor) error {
	result := r.db.WithContext(ctx).
		Model(&model.Supervisor{}).
		Where("national_id = ?", supervisor.NationalID).
		Updates(map[string]interface{}{
			"name":  supervisor.Name,
			"email": supervisor.Email,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *supervisorRepository) Delete(ctx context.Context, nationalID string) error {
	result := r.db.WithContext(ctx).
		Where("national_id = ?", nationalID).
		Delete(&model.Supervisor{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
