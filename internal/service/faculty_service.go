package service

import (
	"context"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/internal/repository"
)

type FacultyService interface {
	GetAll(ctx context.Context) ([]*model.Faculty, error)
	GetCareers(ctx context.Context, facultyName string) ([]*model.Career, error)
}

type facultyService struct {
	repo repository.FacultyRepository
}

func NewFacultyService(repo repository.FacultyRepository) FacultyService {
	return &facultyService{repo: repo}
}

func (s *facultyService) GetAll(ctx context.Context) ([]*model.Faculty, error) {
	return s.repo.FindAll(ctx)
}

func (s *facultyService) GetCareers(ctx context.Context, facultyName string) ([]*model.Career, error) {
	return s.repo.FindCareers(ctx, facultyName)
}
