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

type ApprovalService interface {
	Create(ctx context.Context, input dto.CreateApprovalInput) (*dto.CreateApprovalResponse, error)
	GetByPeriod(ctx context.Context, period string) ([]*model.Approval, error)
	GetPeriodByAssistantship(ctx context.Context, assistantshipID uint) (string, error)
	GetApprovedDetails(ctx context.Context) ([]dto.ApprovedDetail, error)
	GetWindow(ctx context.Context) (*dto.ApprovalWindowResponse, error)
	SetWindow(ctx context.Context, input dto.SetApprovalWindowInput) (*dto.ApprovalWindowResponse, error)
}

type approvalService struct {
	repo repository.ApprovalRepository
}

func NewApprovalService(repo repository.ApprovalRepository) ApprovalService {
	return &approvalService{repo: repo}
}

func (s *approvalService) Create(ctx context.Context, input dto.CreateApprovalInput) (*dto.CreateApprovalResponse, error) {
	approval, err := s.repo.Create(ctx, input.AssistantshipID)
	if err != nil {
		return nil, err
	}

	return &dto.CreateApprovalResponse{
		Status:   "approval recorded successfully",
		Approval: approval,
	}, nil
}

func (s *approvalService) GetByPeriod(ctx context.Context, period string) ([]*model.Approval, error) {
	return s.repo.FindByPeriod(ctx, period)
}

func (s *approvalService) GetPeriodByAssistantship(ctx context.Context, assistantshipID uint) (string, error) {
	period, err := s.repo.FindPeriodByAssistantship(ctx, assistantshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("this assistantship has no approval period recorded: %w", apperror.ErrNotFound)
		}
		return "", err
	}

	return period, nil
}

func (s *approvalService) GetApprovedDetails(ctx context.Context) ([]dto.ApprovedDetail, error) {
	return s.repo.FindApprovedDetails(ctx)
}

func (s *approvalService) GetWindow(ctx context.Context) (*dto.ApprovalWindowResponse, error) {
	window, err := s.repo.GetWindow(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("approval window not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return windowResponse(window), nil
}

func (s *approvalService) SetWindow(ctx context.Context, input dto.SetApprovalWindowInput) (*dto.ApprovalWindowResponse, error) {
	window, err := s.repo.SetWindow(ctx, *input.IsOpen)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("approval window not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return windowResponse(window), nil
}

func windowResponse(window *model.ApprovalWindow) *dto.ApprovalWindowResponse {
	state := "window closed"
	if window.IsOpen {
		state = "window open"
	}

	return &dto.ApprovalWindowResponse{
		IsOpen: window.IsOpen,
		State:  state,
	}
}
