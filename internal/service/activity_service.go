package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/internal/repository"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"github.com/Soriano-1807/ayudantech-backend/pkg/storage"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrUploadRateLimited is returned when an evidence upload is attempted again
// before the previous window expired. Handlers map it to 429.
var ErrUploadRateLimited = errors.New("too many uploads, try again later")

type ActivityService interface {
	Create(ctx context.Context, input dto.CreateActivityInput) (*dto.CreateActivityResponse, error)
	GetAll(ctx context.Context) ([]*model.Activity, error)
	GetByAssistantship(ctx context.Context, assistantshipID uint) ([]*model.Activity, error)
	GetByAssistantshipCurrentPeriod(ctx context.Context, assistantshipID uint) (*dto.CurrentPeriodActivities, error)
	GetByAssistant(ctx context.Context, assistantID string) ([]*model.Activity, error)
	Update(ctx context.Context, id uint, input dto.UpdateActivityInput) error
	Delete(ctx context.Context, id uint) error
	UploadEvidence(ctx context.Context, clientKey string, file dto.EvidenceFile) (string, error)
}

type activityService struct {
	repo              repository.ActivityRepository
	assistantshipRepo repository.AssistantshipRepository
	periodRepo        repository.PeriodRepository
	evidenceStorage   storage.EvidenceStorage
	rdb               *redis.Client
	uploadLimit       time.Duration
}

func NewActivityService(
	repo repository.ActivityRepository,
	assistantshipRepo repository.AssistantshipRepository,
	periodRepo repository.PeriodRepository,
	evidenceStorage storage.EvidenceStorage,
	rdb *redis.Client,
	uploadLimit time.Duration,
) ActivityService {
	return &activityService{
		repo:              repo,
		assistantshipRepo: assistantshipRepo,
		periodRepo:        periodRepo,
		evidenceStorage:   evidenceStorage,
		rdb:               rdb,
		uploadLimit:       uploadLimit,
	}
}

func (s *activityService) Create(ctx context.Context, input dto.CreateActivityInput) (*dto.CreateActivityResponse, error) {
	activity, err := s.repo.Create(ctx, input.AssistantshipID, input.Description, input.Evidence)
	if err != nil {
		return nil, err
	}

	return &dto.CreateActivityResponse{
		Status:   "activity created successfully",
		Activity: activity,
	}, nil
}

func (s *activityService) GetAll(ctx context.Context) ([]*model.Activity, error) {
	return s.repo.FindAll(ctx)
}

func (s *activityService) GetByAssistantship(ctx context.Context, assistantshipID uint) ([]*model.Activity, error) {
	if _, err := s.assistantshipRepo.FindByID(ctx, assistantshipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("assistantship not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return s.repo.FindByAssistantship(ctx, assistantshipID)
}

// GetByAssistantshipCurrentPeriod filters by the period that is current right
// now, not by each row's snapshot alone: rows logged under a period that has
// since been deactivated are excluded.
func (s *activityService) GetByAssistantshipCurrentPeriod(ctx context.Context, assistantshipID uint) (*dto.CurrentPeriodActivities, error) {
	current, err := s.periodRepo.FindCurrent(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no period is currently active: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	activities, err := s.repo.FindByAssistantshipAndPeriod(ctx, assistantshipID, current.Name)
	if err != nil {
		return nil, err
	}

	rows := make([]model.Activity, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, *a)
	}

	return &dto.CurrentPeriodActivities{
		Status:        "activities found",
		CurrentPeriod: current.Name,
		Activities:    rows,
	}, nil
}

// GetByAssistant resolves the assistant's single assistantship first, then
// lists its activities.
func (s *activityService) GetByAssistant(ctx context.Context, assistantID string) ([]*model.Activity, error) {
	assistantship, err := s.assistantshipRepo.FindByAssistant(ctx, assistantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("this assistant has no assistantship registered: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	return s.repo.FindByAssistantship(ctx, assistantship.ID)
}

// Update overwrites description and evidence. When the evidence URL changes,
// the previously stored file is removed best-effort; a failed remote delete
// never fails the update.
func (s *activityService) Update(ctx context.Context, id uint, input dto.UpdateActivityInput) error {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("activity not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Update(ctx, id, input.Description, input.Evidence); err != nil {
		return err
	}

	if activity.Evidence != "" && activity.Evidence != input.Evidence {
		_ = s.evidenceStorage.Delete(ctx, activity.Evidence)
	}

	return nil
}

// Delete removes the row and then the stored evidence file, best-effort.
func (s *activityService) Delete(ctx context.Context, id uint) error {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("activity not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("activity not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if activity.Evidence != "" {
		_ = s.evidenceStorage.Delete(ctx, activity.Evidence)
	}

	return nil
}

// UploadEvidence stores the file and returns the URL to record in the
// activity's evidence field. Uploads are rate limited per client when redis
// is configured; logins and reads are never limited.
func (s *activityService) UploadEvidence(ctx context.Context, clientKey string, file dto.EvidenceFile) (string, error) {
	allowed, err := CheckAndSetRateLimit(ctx, s.rdb, clientKey, "upload_evidence", s.uploadLimit)
	if err != nil {
		return "", err
	}
	if !allowed {
		ttl, ttlErr := GetRateLimitTTL(ctx, s.rdb, clientKey, "upload_evidence")
		if ttlErr != nil || ttl <= 0 {
			return "", ErrUploadRateLimited
		}
		seconds := int((ttl + time.Second - 1) / time.Second)
		return "", fmt.Errorf("retry in %d seconds: %w", seconds, ErrUploadRateLimited)
	}

	url, err := s.evidenceStorage.Upload(ctx, file.Reader, file.FileName)
	if err != nil {
		return "", err
	}

	return url, nil
}
