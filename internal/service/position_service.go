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

type PositionService interface {
	Create(ctx context.Context, input dto.CreatePositionInput) error
	GetByName(ctx context.Context, name string) (*model.Position, error)
	GetAll(ctx context.Context) ([]*model.Position, error)
	Rename(ctx context.Context, name string, input dto.RenamePositionInput) error
	Delete(ctx context.Context, name string) error
	GetAssistantTypes(ctx context.Context) ([]*model.AssistantType, error)
}

type positionService struct {
	repo     repository.PositionRepository
	typeRepo repository.AssistantTypeRepository
}

func NewPositionService(repo repository.PositionRepository, typeRepo repository.AssistantTypeRepository) PositionService {
	return &positionService{repo: repo, typeRepo: typeRepo}
}

// Create performs no duplicate pre-check; the primary key on the name is the
// only guard.
func (s *positionService) Create(ctx context.Context, input dto.CreatePositionInput) error {
	return s.repo.Create(ctx, &model.Position{Name: input.Name})
}

func (s *positionService) GetByName(ctx context.Context, name string) (*model.Position, error) {
	position, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("position not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return position, nil
}

func (s *positionService) GetAll(ctx context.Context) ([]*model.Position, error) {
	return s.repo.FindAll(ctx)
}

func (s *positionService) Rename(ctx context.Context, name string, input dto.RenamePositionInput) error {
	if err := s.repo.Rename(ctx, name, input.NewName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("position not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *positionService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("position not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *positionService) GetAssistantTypes(ctx context.Context) ([]*model.AssistantType, error) {
	return s.typeRepo.FindAll(ctx)
}
