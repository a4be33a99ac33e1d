package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

func TestLoginAssistant(t *testing.T) {
	assistantRepo := &mockAssistantRepo{
		findByLoginFn: func(ctx context.Context, email, credential string) (*model.Assistant, error) {
			if email == "ana@uni.edu" && credential == "a1b2c3d4" {
				return &model.Assistant{NationalID: "8-123-456", Name: "Ana", Email: email}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewAuthService(&mockAdministratorRepo{}, assistantRepo, &mockSupervisorRepo{})

	res, err := svc.Login(context.Background(), RoleAssistant, dto.LoginInput{
		Email:      "ana@uni.edu",
		Credential: "a1b2c3d4",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Status != "login successful" {
		t.Errorf("status = %q, want %q", res.Status, "login successful")
	}
	if res.Role != RoleAssistant {
		t.Errorf("role = %q, want %q", res.Role, RoleAssistant)
	}

	assistant, ok := res.Profile.(*model.Assistant)
	if !ok {
		t.Fatalf("profile is %T, want *model.Assistant", res.Profile)
	}
	if assistant.NationalID != "8-123-456" {
		t.Errorf("profile national ID = %q, want %q", assistant.NationalID, "8-123-456")
	}
}

func TestLoginWrongCredential(t *testing.T) {
	assistantRepo := &mockAssistantRepo{
		findByLoginFn: func(ctx context.Context, email, credential string) (*model.Assistant, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewAuthService(&mockAdministratorRepo{}, assistantRepo, &mockSupervisorRepo{})

	_, err := svc.Login(context.Background(), RoleAssistant, dto.LoginInput{
		Email:      "ana@uni.edu",
		Credential: "wrong",
	})
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("err = %v, want wrapping apperror.ErrUnauthorized", err)
	}
}

func TestLoginAdministrator(t *testing.T) {
	adminRepo := &mockAdministratorRepo{
		findByLoginFn: func(ctx context.Context, email, credential string) (*model.Administrator, error) {
			return &model.Administrator{Email: email}, nil
		},
	}

	svc := NewAuthService(adminRepo, &mockAssistantRepo{}, &mockSupervisorRepo{})

	res, err := svc.Login(context.Background(), RoleAdministrator, dto.LoginInput{
		Email:      "root@uni.edu",
		Credential: "secret",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Role != RoleAdministrator {
		t.Errorf("role = %q, want %q", res.Role, RoleAdministrator)
	}
}

func TestLoginUnknownRole(t *testing.T) {
	svc := NewAuthService(&mockAdministratorRepo{}, &mockAssistantRepo{}, &mockSupervisorRepo{})

	_, err := svc.Login(context.Background(), "dean", dto.LoginInput{
		Email:      "ana@uni.edu",
		Credential: "a1b2c3d4",
	})
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("err = %v, want wrapping apperror.ErrInvalidInput", err)
	}
}
