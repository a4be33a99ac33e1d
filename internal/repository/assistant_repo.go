package repository

import (
	"context"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type AssistantRepository interface {
	Create(ctx context.Context, assistant *model.Assistant) error
	FindByID(ctx context.Context, nationalID string) (*model.Assistant, error)
	FindByEmail(ctx context.Context, email string) (*model.Assistant, error)
	FindByLogin(ctx context.Context, email, credential string) (*model.Assistant, error)
	FindAll(ctx context.Context) ([]*model.Assistant, error)
	FindBySupervisor(ctx context.Context, supervisorID string) ([]dto.SupervisedAssistant, error)
	Update(ctx context.Context, assistant *model.Assistant) error
	Delete(ctx context.Context, nationalID string) error
}

type assistantRepository struct {
	db *gorm.DB
}

func NewAssistantRepository(db *gorm.DB) AssistantRepository {
	return &assistantRepository{db: db}
}

// Create inserts the assistant after checking, in the same transaction, that
// no supervisor holds the same cedula. The two tables share one ID space and
// a unique constraint cannot span them, so the check lives here.
func (r *assistantRepository) Create(ctx context.Context, assistant *model.Assistant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Supervisor{}).
			Where("national_id = ?", assistant.NationalID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return fmt.Errorf("a supervisor with this cedula already exists: %w", apperror.ErrConflict)
		}

		return tx.Create(assistant).Error
	})
}

func (r *assistantRepository) FindByID(ctx context.Context, nationalID string) (*model.Assistant, error) {
	var assistant model.Assistant
	if err := r.db.WithContext(ctx).
		Where("national_id = ?", nationalID).
		First(&assistant).Error; err != nil {
		return nil, err
	}

	return &assistant, nil
}

func (r *assistantRepository) FindByEmail(ctx context.Context, email string) (*model.Assistant, error) {
	var assistant model.Assistant
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&assistant).Error; err != nil {
		return nil, err
	}

	return &assistant, nil
}

func (r *assistantRepository) FindByLogin(ctx context.Context, email, credential string) (*model.Assistant, error) {
	var assistant model.Assistant
	if err := r.db.WithContext(ctx).
		Where("email = ? AND credential = ?", email, credential).
		First(&assistant).Error; err != nil {
		return nil, err
	}

	return &assistant, nil
}

func (r *assistantRepository) FindAll(ctx context.Context) ([]*model.Assistant, error) {
	var assistants []*model.Assistant
	if err := r.db.WithContext(ctx).Find(&assistants).Error; err != nil {
		return nil, err
	}

	return assistants, nil
}

// FindBySupervisor projects every assistant supervised by the given cedula
// together with the position and type of their assistantship.
func (r *assistantRepository) FindBySupervisor(ctx context.Context, supervisorID string) ([]dto.SupervisedAssistant, error) {
	var rows []dto.SupervisedAssistant
	if err := r.db.WithContext(ctx).
		Table("assistants AS a").
		Select("a.national_id, a.name, a.email, a.level, a.faculty, a.career, s.position, s.type").
		Joins("INNER JOIN assistantships AS s ON s.assistant_id = a.national_id").
		Where("s.supervisor_id = ?", supervisorID).
		Order("a.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Update overwrites the mutable fields only; the cedula and the credential
// are never touched after creation.
func (r *assistantRepository) Update(ctx context.Context, assistant *model.Assistant) error {
	result := r.db.WithContext(ctx).
		Model(&model.Assistant{}).
		Where("national_id = ?", assistant.NationalID).
		Updates(map[string]interface{}{
			"name":    assistant.Name,
			"email":   assistant.Email,
			"level":   assistant.Level,
			"faculty": assistant.Faculty,
			"career":  assistant.Career,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *assistantRepository) Delete(ctx context.Context, nationalID string) error {
	result := r.db.WithContext(ctx).
		Where("national_id = ?", nationalID).
		Delete(&model.Assistant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
