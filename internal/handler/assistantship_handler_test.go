package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
	"github.com/gin-gonic/gin"
)

type mockAssistantshipService struct {
	createFn          func(ctx context.Context, input dto.CreateAssistantshipInput) error
	getByIDFn         func(ctx context.Context, id uint) (*model.Assistantship, error)
	getByAssistantFn  func(ctx context.Context, assistantID string) (*model.Assistantship, error)
	getBySupervisorFn func(ctx context.Context, supervisorID string) ([]*model.Assistantship, error)
	getAllFn          func(ctx context.Context) ([]*model.Assistantship, error)
	setObjectiveFn    func(ctx context.Context, id uint, input dto.SetObjectiveInput) error
	deleteFn          func(ctx context.Context, id uint) error
}

func (m *mockAssistantshipService) Create(ctx context.Context, input dto.CreateAssistantshipInput) error {
	return m.createFn(ctx, input)
}

func (m *mockAssistantshipService) GetByID(ctx context.Context, id uint) (*model.Assistantship, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAssistantshipService) GetByAssistant(ctx context.Context, assistantID string) (*model.Assistantship, error) {
	return m.getByAssistantFn(ctx, assistantID)
}

func (m *mockAssistantshipService) GetBySupervisor(ctx context.Context, supervisorID string) ([]*model.Assistantship, error) {
	return m.getBySupervisorFn(ctx, supervisorID)
}

func (m *mockAssistantshipService) GetAll(ctx context.Context) ([]*model.Assistantship, error) {
	return m.getAllFn(ctx)
}

func (m *mockAssistantshipService) SetObjective(ctx context.Context, id uint, input dto.SetObjectiveInput) error {
	return m.setObjectiveFn(ctx, id, input)
}

func (m *mockAssistantshipService) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

func TestDeleteAssistantshipRejectsNonNumericID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAssistantshipHandler(&mockAssistantshipService{})
	router := gin.New()
	router.DELETE("/assistantships/:id", h.Delete)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/assistantships/abc", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid id format") {
		t.Errorf("response = %s", w.Body.String())
	}
}

func TestCreateAssistantshipMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAssistantshipHandler(&mockAssistantshipService{})
	router := gin.New()
	router.POST("/assistantships", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assistantships", strings.NewReader(`{"assistant_id": "8-123-456"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateAssistantship(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var created dto.CreateAssistantshipInput
	svc := &mockAssistantshipService{
		createFn: func(ctx context.Context, input dto.CreateAssistantshipInput) error {
			created = input
			return nil
		},
	}
	h := NewAssistantshipHandler(svc)
	router := gin.New()
	router.POST("/assistantships", h.Create)

	body := `{"assistant_id": "8-123-456", "supervisor_id": "8-765-432", "position": "Laboratorio", "type": "Académica"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assistantships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	if created.AssistantID != "8-123-456" || created.Position != "Laboratorio" {
		t.Errorf("created = %+v", created)
	}
}
