package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/repository"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

const (
	RoleAdministrator = "administrator"
	RoleAssistant     = "assistant"
	RoleSupervisor    = "supervisor"
)

// AuthService checks credentials by plain equality against the stored value.
// There is no hashing and no token issuance; the matched profile row is the
// whole login response.
type AuthService interface {
	Login(ctx context.Context, role string, input dto.LoginInput) (*dto.LoginResponse, error)
}

type authService struct {
	adminRepo      repository.AdministratorRepository
	assistantRepo  repository.AssistantRepository
	supervisorRepo repository.SupervisorRepository
}

func NewAuthService(
	adminRepo repository.AdministratorRepository,
	assistantRepo repository.AssistantRepository,
	supervisorRepo repository.SupervisorRepository,
) AuthService {
	return &authService{
		adminRepo:      adminRepo,
		assistantRepo:  assistantRepo,
		supervisorRepo: supervisorRepo,
	}
}

func (s *authService) Login(ctx context.Context, role string, input dto.LoginInput) (*dto.LoginResponse, error) {
	var (
		profile interface{}
		err     error
	)

	switch role {
	case RoleAdministrator:
		profile, err = s.adminRepo.FindByLogin(ctx, input.Email, input.Credential)
	case RoleAssistant:
		profile, err = s.assistantRepo.FindByLogin(ctx, input.Email, input.Credential)
	case RoleSupervisor:
		profile, err = s.supervisorRepo.FindByLogin(ctx, input.Email, input.Credential)
	default:
		return nil, fmt.Errorf("unknown role %q: %w", role, apperror.ErrInvalidInput)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	return &dto.LoginResponse{
		Status:  "login successful",
		Role:    role,
		Profile: profile,
	}, nil
}
