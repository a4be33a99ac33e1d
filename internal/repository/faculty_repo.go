package repository

import (
	"context"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"gorm.io/gorm"
)

type FacultyRepository interface {
	FindAll(ctx context.Context) ([]*model.Faculty, error)
	FindCareers(ctx context.Context, facultyName string) ([]*model.Career, error)
}

type facultyRepository struct {
	db *gorm.DB
}

func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) FindAll(ctx context.Context) ([]*model.Faculty, error) {
	var faculties []*model.Faculty
	if err := r.db.WithContext(ctx).Find(&faculties).Error; err != nil {
		return nil, err
	}

	return faculties, nil
}

func (r *facultyRepository) FindCareers(ctx context.Context, facultyName string) ([]*model.Career, error) {
	var careers []*model.Career
	if err := r.db.WithContext(ctx).
		Where("faculty_name = ?", facultyName).
		Find(&careers).Error; err != nil {
		return nil, err
	}

	return careers, nil
}
