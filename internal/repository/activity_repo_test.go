package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/Soriano-1807/ayudantech-backend/pkg/apperror"
	"gorm.io/gorm"
)

// seedAssistantship sets up parties and one assistantship, returning its ID.
func seedAssistantship(t *testing.T, ctx context.Context, db *gorm.DB) uint {
	t.Helper()

	assistants := NewAssistantRepository(db)
	supervisors := NewSupervisorRepository(db)
	assistantships := NewAssistantshipRepository(db)

	mustCreateParties(t, ctx, assistants, supervisors)
	if err := assistantships.Create(ctx, &model.Assistantship{
		AssistantID:  "V001",
		SupervisorID: "V002",
		Position:     "Lab1",
	}); err != nil {
		t.Fatalf("create assistantship: %v", err)
	}

	held, err := assistantships.FindByAssistant(ctx, "V001")
	if err != nil {
		t.Fatalf("FindByAssistant: %v", err)
	}
	return held.ID
}

func TestActivityCreateRequiresCurrentPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	id := seedAssistantship(t, ctx, db)

	_, err := repo.Create(ctx, id, "Preparar guía", "")
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("err = %v, want wrapping apperror.ErrInvalidInput", err)
	}
}

func TestActivityCreateSnapshotsCurrentPeriod(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	periods := NewPeriodRepository(db)
	ctx := context.Background()

	id := seedAssistantship(t, ctx, db)
	if err := periods.Create(ctx, &model.Period{Name: "2026-1", IsCurrent: true}); err != nil {
		t.Fatalf("create period: %v", err)
	}

	before := time.Now().UTC()
	activity, err := repo.Create(ctx, id, "Preparar guía", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if activity.Period != "2026-1" {
		t.Errorf("period snapshot = %q, want 2026-1", activity.Period)
	}
	ts := activity.Timestamp.UTC()
	if ts.Before(before.Add(-time.Second)) || ts.After(time.Now().UTC().Add(time.Second)) {
		t.Errorf("timestamp %v is not near the call time", activity.Timestamp)
	}

	// The snapshot survives the period losing currency.
	if err := periods.SetCurrent(ctx, "2026-1", false); err != nil {
		t.Fatalf("SetCurrent: %v", err)
	}
	stored, err := repo.FindByID(ctx, activity.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Period != "2026-1" {
		t.Errorf("stored snapshot = %q after period deactivated", stored.Period)
	}
}

func TestActivityCreateUnknownAssistantship(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	periods := NewPeriodRepository(db)
	ctx := context.Background()

	if err := periods.Create(ctx, &model.Period{Name: "2026-1", IsCurrent: true}); err != nil {
		t.Fatalf("create period: %v", err)
	}

	_, err := repo.Create(ctx, 999, "Preparar guía", "")
	if !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("err = %v, want wrapping apperror.ErrInvalidInput", err)
	}
}

func TestActivityListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	periods := NewPeriodRepository(db)
	ctx := context.Background()

	id := seedAssistantship(t, ctx, db)
	if err := periods.Create(ctx, &model.Period{Name: "2026-1", IsCurrent: true}); err != nil {
		t.Fatalf("create period: %v", err)
	}

	first, err := repo.Create(ctx, id, "primera", "")
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := repo.Create(ctx, id, "segunda", "")
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	activities, err := repo.FindByAssistantship(ctx, id)
	if err != nil {
		t.Fatalf("FindByAssistantship: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("got %d activities, want 2", len(activities))
	}
	if activities[0].ID != second.ID || activities[1].ID != first.ID {
		t.Errorf("order = [%d %d], want newest first [%d %d]",
			activities[0].ID, activities[1].ID, second.ID, first.ID)
	}
}

func TestActivityUpdatePreservesSnapshot(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	periods := NewPeriodRepository(db)
	ctx := context.Background()

	id := seedAssistantship(t, ctx, db)
	if err := periods.Create(ctx, &model.Period{Name: "2026-1", IsCurrent: true}); err != nil {
		t.Fatalf("create period: %v", err)
	}

	activity, err := repo.Create(ctx, id, "Preparar guía", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Update(ctx, activity.ID, "Preparar guía v2", "https://cdn/ev.pdf"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.FindByID(ctx, activity.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if stored.Description != "Preparar guía v2" || stored.Evidence != "https://cdn/ev.pdf" {
		t.Errorf("stored = %+v", stored)
	}
	if stored.Period != "2026-1" {
		t.Errorf("snapshot = %q after update", stored.Period)
	}
	if !stored.Timestamp.Equal(activity.Timestamp) {
		t.Errorf("timestamp changed on update: %v -> %v", activity.Timestamp, stored.Timestamp)
	}
}
