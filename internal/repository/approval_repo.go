package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type ApprovalRepository interface {
	Create(ctx context.Context, assistantshipID uint) (*model.Approval, error)
	FindByPeriod(ctx context.Context, period string) ([]*model.Approval, error)
	FindPeriodByAssistantship(ctx context.Context, assistantshipID uint) (string, error)
	FindApprovedDetails(ctx context.Context) ([]dto.ApprovedDetail, error)
	GetWindow(ctx context.Context) (*model.ApprovalWindow, error)
	SetWindow(ctx context.Context, isOpen bool) (*model.ApprovalWindow, error)
}

type approvalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &approvalRepository{db: db}
}

// Create snapshots the current period name into the approval row. Fails when
// no period is current; lookup and insert share one transaction.
func (r *approvalRepository) Create(ctx context.Context, assistantshipID uint) (*model.Approval, error) {
	var approval *model.Approval

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.Period
		if err := tx.Where("is_current = ?", true).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("no period is currently active: %w", apperror.ErrInvalidInput)
			}
			return err
		}

		approval = &model.Approval{
			AssistantshipID: assistantshipID,
			Period:          current.Name,
		}

		return tx.Create(approval).Error
	})
	if err != nil {
		return nil, err
	}

	return approval, nil
}

func (r *approvalRepository) FindByPeriod(ctx context.Context, period string) ([]*model.Approval, error) {
	var approvals []*model.Approval
	if err := r.db.WithContext(ctx).
		Where("period = ?", period).
		Find(&approvals).Error; err != nil {
		return nil, err
	}

	return approvals, nil
}

func (r *approvalRepository) FindPeriodByAssistantship(ctx context.Context, assistantshipID uint) (string, error) {
	var approval model.Approval
	if err := r.db.WithContext(ctx).
		Where("assistantship_id = ?", assistantshipID).
		First(&approval).Error; err != nil {
		return "", err
	}

	return approval.Period, nil
}

// FindApprovedDetails joins every approval with the assistant, supervisor and
// position of its assistantship.
func (r *approvalRepository) FindApprovedDetails(ctx context.Context) ([]dto.ApprovedDetail, error) {
	var rows []dto.ApprovedDetail
	if err := r.db.WithContext(ctx).
		Table("approvals AS ap").
		Select("a.name AS assistant_name, sup.name AS supervisor_name, s.position").
		Joins("JOIN assistantships AS s ON ap.assistantship_id = s.id").
		Joins("JOIN assistants AS a ON s.assistant_id = a.national_id").
		Joins("JOIN supervisors AS sup ON s.supervisor_id = sup.national_id").
		Order("a.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *approvalRepository) GetWindow(ctx context.Context) (*model.ApprovalWindow, error) {
	var window model.ApprovalWindow
	if err := r.db.WithContext(ctx).First(&window).Error; err != nil {
		return nil, err
	}

	return &window, nil
}

// SetWindow toggles the singleton row. The row is seeded at startup and never
// created or deleted through the API.
func (r *approvalRepository) SetWindow(ctx context.Context, isOpen bool) (*model.ApprovalWindow, error) {
	var window model.ApprovalWindow

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&window).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.ApprovalWindow{}).
			Where("id = ?", window.ID).
			Update("is_open", isOpen).Error; err != nil {
			return err
		}

		window.IsOpen = isOpen
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &window, nil
}
