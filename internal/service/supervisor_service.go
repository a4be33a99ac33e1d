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

type SupervisorService interface {
	Create(ctx context.Context, input dto.CreateSupervisorInput) (*dto.CredentialResponse, error)
	GetByID(ctx context.Context, nationalID string) (*model.Supervisor, error)
	GetByEmail(ctx context.Context, email string) (*model.Supervisor, error)
	GetAll(ctx context.Context) ([]*model.Supervisor, error)
	Update(ctx context.Context, nationalID string, input dto.UpdateSupervisorInput) error
	Delete(ctx context.Context, nationalID string) error
}

type supervisorService struct {
	repo repository.SupervisorRepository
}

func NewSupervisorService(repo repository.SupervisorRepository) SupervisorService {
	return &supervisorService{repo: repo}
}

func (s *supervisorService) Create(ctx context.Context, input dto.CreateSupervisorInput) (*dto.CredentialResponse, error) {
	credential, err := generateCredential()
	if err != nil {
		return nil, err
	}

	supervisor := &model.Supervisor{
		NationalID: input.NationalID,
		Name:       input.Name,
		Email:      input.Email,
		Credential: credential,
	}

	if err := s.repo.Create(ctx, supervisor); err != nil {
		return nil, err
	}

	return &dto.CredentialResponse{
		Status:     "supervisor created successfully",
		NationalID: supervisor.NationalID,
		Credential: credential,
	}, nil
}

func (s *supervisorService) GetByID(ctx context.Context, nationalID string) (*model.Supervisor, error) {
	supervisor, err := s.repo.FindByID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supervisor not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return supervisor, nil
}

func (s *supervisorService) GetByEmail(ctx context.Context, email string) (*model.Supervisor, error) {
	supervisor, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supervisor not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return supervisor, nil
}

func (s *supervisorService) GetAll(ctx context.Context) ([]*model.Supervisor, error) {
	return s.repo.FindAll(ctx)
}

func (s *supervisorService) Update(ctx context.Context, nationalID string, input dto.UpdateSupervisorInput) error {
	supervisor := &model.Supervisor{
		NationalID: nationalID,
		Name:       input.Name,
		Email:      input.Email,
	}

	if err := s.repo.Update(ctx, supervisor); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("supervisor not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *supervisorService) Delete(ctx context.Context, nationalID string) error {
	if err := s.repo.Delete(ctx, nationalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("supervisor not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
