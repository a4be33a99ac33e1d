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

type AssistantService interface {
	Create(ctx context.Context, input dto.CreateAssistantInput) (*dto.CredentialResponse, error)
	GetByID(ctx context.Context, nationalID string) (*model.Assistant, error)
	GetByEmail(ctx context.Context, email string) (*model.Assistant, error)
	GetAll(ctx context.Context) ([]*model.Assistant, error)
	GetBySupervisor(ctx context.Context, supervisorID string) ([]dto.SupervisedAssistant, error)
	Update(ctx context.Context, nationalID string, input dto.UpdateAssistantInput) error
	Delete(ctx context.Context, nationalID string) error
}

type assistantService struct {
	repo repository.AssistantRepository
}

func NewAssistantService(repo repository.AssistantRepository) AssistantService {
	return &assistantService{repo: repo}
}

func (s *assistantService) Create(ctx context.Context, input dto.CreateAssistantInput) (*dto.CredentialResponse, error) {
	credential, err := generateCredential()
	if err != nil {
		return nil, err
	}

	assistant := &model.Assistant{
		NationalID: input.NationalID,
		Name:       input.Name,
		Email:      input.Email,
		Level:      input.Level,
		Faculty:    input.Faculty,
		Career:     input.Career,
		Credential: credential,
	}

	if err := s.repo.Create(ctx, assistant); err != nil {
		return nil, err
	}

	return &dto.CredentialResponse{
		Status:     "assistant created successfully",
		NationalID: assistant.NationalID,
		Credential: credential,
	}, nil
}

func (s *assistantService) GetByID(ctx context.Context, nationalID string) (*model.Assistant, error) {
	assistant, err := s.repo.FindByID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assistant not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return assistant, nil
}

func (s *assistantService) GetByEmail(ctx context.Context, email string) (*model.Assistant, error) {
	assistant, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assistant not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return assistant, nil
}

func (s *assistantService) GetAll(ctx context.Context) ([]*model.Assistant, error) {
	return s.repo.FindAll(ctx)
}

func (s *assistantService) GetBySupervisor(ctx context.Context, supervisorID string) ([]dto.SupervisedAssistant, error) {
	rows, err := s.repo.FindBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("this supervisor has no assistants registered: %w", apperror.ErrNotFound)
	}

	return rows, nil
}

func (s *assistantService) Update(ctx context.Context, nationalID string, input dto.UpdateAssistantInput) error {
	assistant := &model.Assistant{
		NationalID: nationalID,
		Name:       input.Name,
		Email:      input.Email,
		Level:      input.Level,
		Faculty:    input.Faculty,
		Career:     input.Career,
	}

	if err := s.repo.Update(ctx, assistant); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("assistant not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *assistantService) Delete(ctx context.Context, nationalID string) error {
	if err := s.repo.Delete(ctx, nationalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("assistant not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
