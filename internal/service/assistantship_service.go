package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/internal/repository"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

type AssistantshipService interface {
	Create(ctx context.Context, input dto.CreateAssistantshipInput) error
	GetByID(ctx context.Context, id uint) (*model.Assistantship, error)
	GetByAssistant(ctx context.Context, assistantID string) (*model.Assistantship, error)
	GetBySupervisor(ctx context.Context, supervisorID string) ([]*model.Assistantship, error)
	GetAll(ctx context.Context) ([]*model.Assistantship, error)
	SetObjective(ctx context.Context, id uint, input dto.SetObjectiveInput) error
	Delete(ctx context.Context, id uint) error
}

type assistantshipService struct {
	repo repository.AssistantshipRepository
}

func NewAssistantshipService(repo repository.AssistantshipRepository) AssistantshipService {
	return &assistantshipService{repo: repo}
}

// Create starts every assistantship with an empty objective; the text is
// filled in later through SetObjective.
func (s *assistantshipService) Create(ctx context.Context, input dto.CreateAssistantshipInput) error {
	assistantship := &model.Assistantship{
		AssistantID:  input.AssistantID,
		SupervisorID: input.SupervisorID,
		Position:     input.Position,
		Objective:    "",
		Type:         input.Type,
	}

	return s.repo.Create(ctx, assistantship)
}

func (s *assistantshipService) GetByID(ctx context.Context, id uint) (*model.Assistantship, error) {
	assistantship, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assistantship not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return assistantship, nil
}

func (s *assistantshipService) GetByAssistant(ctx context.Context, assistantID string) (*model.Assistantship, error) {
	assistantship, err := s.repo.FindByAssistant(ctx, assistantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no assistantship found for this cedula: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return assistantship, nil
}

func (s *assistantshipService) GetBySupervisor(ctx context.Context, supervisorID string) ([]*model.Assistantship, error) {
	assistantships, err := s.repo.FindBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}

	if len(assistantships) == 0 {
		return nil, fmt.Errorf("no assistantships found for this supervisor: %w", apperror.ErrNotFound)
	}

	return assistantships, nil
}

func (s *assistantshipService) GetAll(ctx context.Context) ([]*model.Assistantship, error) {
	return s.repo.FindAll(ctx)
}

func (s *assistantshipService) SetObjective(ctx context.Context, id uint, input dto.SetObjectiveInput) error {
	if err := s.repo.SetObjective(ctx, id, input.Objective); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("assistantship not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *assistantshipService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("assistantship not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
