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

type PeriodService interface {
	Create(ctx context.Context, input dto.CreatePeriodInput) error
	SetCurrent(ctx context.Context, name string, input dto.SetPeriodCurrentInput) error
	GetCurrent(ctx context.Context) (*model.Period, error)
	GetAll(ctx context.Context) ([]*model.Period, error)
	Delete(ctx context.Context, name string) error
}

type periodService struct {
	repo repository.PeriodRepository
}

func NewPeriodService(repo repository.PeriodRepository) PeriodService {
	return &periodService{repo: repo}
}

func (s *periodService) Create(ctx context.Context, input dto.CreatePeriodInput) error {
	period := &model.Period{
		Name:      input.Name,
		IsCurrent: *input.IsCurrent,
	}

	return s.repo.Create(ctx, period)
}

func (s *periodService) SetCurrent(ctx context.Context, name string, input dto.SetPeriodCurrentInput) error {
	if err := s.repo.SetCurrent(ctx, name, *input.IsCurrent); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("period not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}

func (s *periodService) GetCurrent(ctx context.Context) (*model.Period, error) {
	period, err := s.repo.FindCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no period is currently active: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return period, nil
}

func (s *periodService) GetAll(ctx context.Context) ([]*model.Period, error) {
	return s.repo.FindAll(ctx)
}

func (s *periodService) Delete(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("period not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return nil
}
