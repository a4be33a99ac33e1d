package service

import (
	"context"
	"io"

	"github.com/Soriano-1807/ayudantech-backend/internal/dto"
	"github.com/Soriano-1807/ayudantech-backend/internal/model"
)

// Hand-written mocks with function fields. Each test wires only the methods
// it exercises; an unwired call panics and points straight at the test bug.

type mockAssistantRepo struct {
	createFn           func(ctx context.Context, assistant *model.Assistant) error
	findByIDFn         func(ctx context.Context, nationalID string) (*model.Assistant, error)
	findByEmailFn      func(ctx context.Context, email string) (*model.Assistant, error)
	findByLoginFn      func(ctx context.Context, email, credential string) (*model.Assistant, error)
	findAllFn          func(ctx context.Context) ([]*model.Assistant, error)
	findBySupervisorFn func(ctx context.Context, supervisorID string) ([]dto.SupervisedAssistant, error)
	updateFn           func(ctx context.Context, assistant *model.Assistant) error
	deleteFn           func(ctx context.Context, nationalID string) error
}

func (m *mockAssistantRepo) Create(ctx context.Context, assistant *model.Assistant) error {
	return m.createFn(ctx, assistant)
}

func (m *mockAssistantRepo) FindByID(ctx context.Context, nationalID string) (*model.Assistant, error) {
	return m.findByIDFn(ctx, nationalID)
}

func (m *mockAssistantRepo) FindByEmail(ctx context.Context, email string) (*model.Assistant, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockAssistantRepo) FindByLogin(ctx context.Context, email, credential string) (*model.Assistant, error) {
	return m.findByLoginFn(ctx, email, credential)
}

func (m *mockAssistantRepo) FindAll(ctx context.Context) ([]*model.Assistant, error) {
	return m.findAllFn(ctx)
}

func (m *mockAssistantRepo) FindBySupervisor(ctx context.Context, supervisorID string) ([]dto.SupervisedAssistant, error) {
	return m.findBySupervisorFn(ctx, supervisorID)
}

func (m *mockAssistantRepo) Update(ctx context.Context, assistant *model.Assistant) error {
	return m.updateFn(ctx, assistant)
}

func (m *mockAssistantRepo) Delete(ctx context.Context, nationalID string) error {
	return m.deleteFn(ctx, nationalID)
}

type mockSupervisorRepo struct {
	createFn      func(ctx context.Context, supervisor *model.Supervisor) error
	findByIDFn    func(ctx context.Context, nationalID string) (*model.Supervisor, error)
	findByEmailFn func(ctx context.Context, email string) (*model.Supervisor, error)
	findByLoginFn func(ctx context.Context, email, credential string) (*model.Supervisor, error)
	findAllFn     func(ctx context.Context) ([]*model.Supervisor, error)
	updateFn      func(ctx context.Context, supervisor *model.Supervisor) error
	deleteFn      func(ctx context.Context, nationalID string) error
}

func (m *mockSupervisorRepo) Create(ctx context.Context, supervisor *model.Supervisor) error {
	return m.createFn(ctx, supervisor)
}

func (m *mockSupervisorRepo) FindByID(ctx context.Context, nationalID string) (*model.Supervisor, error) {
	return m.findByIDFn(ctx, nationalID)
}

func (m *mockSupervisorRepo) FindByEmail(ctx context.Context, email string) (*model.Supervisor, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockSupervisorRepo) FindByLogin(ctx context.Context, email, credential string) (*model.Supervisor, error) {
	return m.findByLoginFn(ctx, email, credential)
}

func (m *mockSupervisorRepo) FindAll(ctx context.Context) ([]*model.Supervisor, error) {
	return m.findAllFn(ctx)
}

func (m *mockSupervisorRepo) Update(ctx context.Context, supervisor *model.Supervisor) error {
	return m.updateFn(ctx, supervisor)
}

func (m *mockSupervisorRepo) Delete(ctx context.Context, nationalID string) error {
	return m.deleteFn(ctx, nationalID)
}

type mockAdministratorRepo struct {
	findByLoginFn func(ctx context.Context, email, credential string) (*model.Administrator, error)
}

func (m *mockAdministratorRepo) FindByLogin(ctx context.Context, email, credential string) (*model.Administrator, error) {
	return m.findByLoginFn(ctx, email, credential)
}

type mockPeriodRepo struct {
	createFn      func(ctx context.Context, period *model.Period) error
	setCurrentFn  func(ctx context.Context, name string, isCurrent bool) error
	findCurrentFn func(ctx context.Context) (*model.Period, error)
	findByNameFn  func(ctx context.Context, name string) (*model.Period, error)
	findAllFn     func(ctx context.Context) ([]*model.Period, error)
	deleteFn      func(ctx context.Context, name string) error
}

func (m *mockPeriodRepo) Create(ctx context.Context, period *model.Period) error {
	return m.createFn(ctx, period)
}

func (m *mockPeriodRepo) SetCurrent(ctx context.Context, name string, isCurrent bool) error {
	return m.setCurrentFn(ctx, name, isCurrent)
}

func (m *mockPeriodRepo) FindCurrent(ctx context.Context) (*model.Period, error) {
	return m.findCurrentFn(ctx)
}

func (m *mockPeriodRepo) FindByName(ctx context.Context, name string) (*model.Period, error) {
	return m.findByNameFn(ctx, name)
}

func (m *mockPeriodRepo) FindAll(ctx context.Context) ([]*model.Period, error) {
	return m.findAllFn(ctx)
}

func (m *mockPeriodRepo) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

type mockAssistantshipRepo struct {
	createFn           func(ctx context.Context, assistantship *model.Assistantship) error
	findByIDFn         func(ctx context.Context, id uint) (*model.Assistantship, error)
	findByAssistantFn  func(ctx context.Context, assistantID string) (*model.Assistantship, error)
	findBySupervisorFn func(ctx context.Context, supervisorID string) ([]*model.Assistantship, error)
	findAllFn          func(ctx context.Context) ([]*model.Assistantship, error)
	setObjectiveFn     func(ctx context.Context, id uint, objective string) error
	deleteFn           func(ctx context.Context, id uint) error
}

func (m *mockAssistantshipRepo) Create(ctx context.Context, assistantship *model.Assistantship) error {
	return m.createFn(ctx, assistantship)
}

func (m *mockAssistantshipRepo) FindByID(ctx context.Context, id uint) (*model.Assistantship, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockAssistantshipRepo) FindByAssistant(ctx context.Context, assistantID string) (*model.Assistantship, error) {
	return m.findByAssistantFn(ctx, assistantID)
}

func (m *mockAssistantshipRepo) FindBySupervisor(ctx context.Context, supervisorID string) ([]*model.Assistantship, error) {
	return m.findBySupervisorFn(ctx, supervisorID)
}

func (m *mockAssistantshipRepo) FindAll(ctx context.Context) ([]*model.Assistantship, error) {
	return m.findAllFn(ctx)
}

func (m *mockAssistantshipRepo) SetObjective(ctx context.Context, id uint, objective string) error {
	return m.setObjectiveFn(ctx, id, objective)
}

func (m *mockAssistantshipRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockActivityRepo struct {
	createFn                       func(ctx context.Context, assistantshipID uint, description, evidence string) (*model.Activity, error)
	findByIDFn                     func(ctx context.Context, id uint) (*model.Activity, error)
	findAllFn                      func(ctx context.Context) ([]*model.Activity, error)
	findByAssistantshipFn          func(ctx context.Context, assistantshipID uint) ([]*model.Activity, error)
	findByAssistantshipAndPeriodFn func(ctx context.Context, assistantshipID uint, period string) ([]*model.Activity, error)
	updateFn                       func(ctx context.Context, id uint, description, evidence string) error
	deleteFn                       func(ctx context.Context, id uint) error
}

func (m *mockActivityRepo) Create(ctx context.Context, assistantshipID uint, description, evidence string) (*model.Activity, error) {
	return m.createFn(ctx, assistantshipID, description, evidence)
}

func (m *mockActivityRepo) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockActivityRepo) FindAll(ctx context.Context) ([]*model.Activity, error) {
	return m.findAllFn(ctx)
}

func (m *mockActivityRepo) FindByAssistantship(ctx context.Context, assistantshipID uint) ([]*model.Activity, error) {
	return m.findByAssistantshipFn(ctx, assistantshipID)
}

func (m *mockActivityRepo) FindByAssistantshipAndPeriod(ctx context.Context, assistantshipID uint, period string) ([]*model.Activity, error) {
	return m.findByAssistantshipAndPeriodFn(ctx, assistantshipID, period)
}

func (m *mockActivityRepo) Update(ctx context.Context, id uint, description, evidence string) error {
	return m.updateFn(ctx, id, description, evidence)
}

func (m *mockActivityRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockPositionRepo struct {
	createFn     func(ctx context.Context, position *model.Position) error
	findByNameFn func(ctx context.Context, name string) (*model.Position, error)
	findAllFn    func(ctx context.Context) ([]*model.Position, error)
	renameFn     func(ctx context.Context, name, newName string) error
	deleteFn     func(ctx context.Context, name string) error
}

func (m *mockPositionRepo) Create(ctx context.Context, position *model.Position) error {
	return m.createFn(ctx, position)
}

func (m *mockPositionRepo) FindByName(ctx context.Context, name string) (*model.Position, error) {
	return m.findByNameFn(ctx, name)
}

func (m *mockPositionRepo) FindAll(ctx context.Context) ([]*model.Position, error) {
	return m.findAllFn(ctx)
}

func (m *mockPositionRepo) Rename(ctx context.Context, name, newName string) error {
	return m.renameFn(ctx, name, newName)
}

func (m *mockPositionRepo) Delete(ctx context.Context, name string) error {
	return m.deleteFn(ctx, name)
}

type mockAssistantTypeRepo struct {
	findAllFn func(ctx context.Context) ([]*model.AssistantType, error)
}

func (m *mockAssistantTypeRepo) FindAll(ctx context.Context) ([]*model.AssistantType, error) {
	return m.findAllFn(ctx)
}

type mockApprovalRepo struct {
	createFn                    func(ctx context.Context, assistantshipID uint) (*model.Approval, error)
	findByPeriodFn              func(ctx context.Context, period string) ([]*model.Approval, error)
	findPeriodByAssistantshipFn func(ctx context.Context, assistantshipID uint) (string, error)
	findApprovedDetailsFn       func(ctx context.Context) ([]dto.ApprovedDetail, error)
	getWindowFn                 func(ctx context.Context) (*model.ApprovalWindow, error)
	setWindowFn                 func(ctx context.Context, isOpen bool) (*model.ApprovalWindow, error)
}

func (m *mockApprovalRepo) Create(ctx context.Context, assistantshipID uint) (*model.Approval, error) {
	return m.createFn(ctx, assistantshipID)
}

func (m *mockApprovalRepo) FindByPeriod(ctx context.Context, period string) ([]*model.Approval, error) {
	return m.findByPeriodFn(ctx, period)
}

func (m *mockApprovalRepo) FindPeriodByAssistantship(ctx context.Context, assistantshipID uint) (string, error) {
	return m.findPeriodByAssistantshipFn(ctx, assistantshipID)
}

func (m *mockApprovalRepo) FindApprovedDetails(ctx context.Context) ([]dto.ApprovedDetail, error) {
	return m.findApprovedDetailsFn(ctx)
}

func (m *mockApprovalRepo) GetWindow(ctx context.Context) (*model.ApprovalWindow, error) {
	return m.getWindowFn(ctx)
}

func (m *mockApprovalRepo) SetWindow(ctx context.Context, isOpen bool) (*model.ApprovalWindow, error) {
	return m.setWindowFn(ctx, isOpen)
}

type mockEvidenceStorage struct {
	uploadFn func(ctx context.Context, r io.Reader, fileName string) (string, error)
	deleteFn func(ctx context.Context, fileURL string) error
}

func (m *mockEvidenceStorage) Upload(ctx context.Context, r io.Reader, fileName string) (string, error) {
	return m.uploadFn(ctx, r, fileName)
}

func (m *mockEvidenceStorage) Delete(ctx context.Context, fileURL string) error {
	return m.deleteFn(ctx, fileURL)
}

func boolPtr(b bool) *bool {
	return &b
}
