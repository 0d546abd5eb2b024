package handlers

import (
	"context"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/stretchr/testify/mock"
)

type MockContentService struct{ mock.Mock }

func (m *MockContentService) Questions() scoring.Bank {
	return m.Called().Get(0).(scoring.Bank)
}

func (m *MockContentService) Suggestions() scoring.SuggestionTable {
	return m.Called().Get(0).(scoring.SuggestionTable)
}

func (m *MockContentService) Score(answers scoring.AnswerSet) (*models.Evaluation, error) {
	args := m.Called(answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Evaluation), args.Error(1)
}

func (m *MockContentService) Evaluate(result scoring.Result) models.Evaluation {
	return m.Called(result).Get(0).(models.Evaluation)
}

func (m *MockContentService) Progress(answers scoring.AnswerSet) scoring.Progress {
	return m.Called(answers).Get(0).(scoring.Progress)
}

type MockParticipantService struct{ mock.Mock }

func (m *MockParticipantService) Register(ctx context.Context, req *models.RegisterParticipantRequest) (*models.RegisterParticipantResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegisterParticipantResponse), args.Error(1)
}

type MockAssessmentService struct{ mock.Mock }

func (m *MockAssessmentService) Submit(ctx context.Context, req *models.SubmitAssessmentRequest) (*models.SubmitAssessmentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmitAssessmentResponse), args.Error(1)
}

func (m *MockAssessmentService) GetLatestByPhone(ctx context.Context, phone string) (*models.AssessmentReport, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentReport), args.Error(1)
}

type MockAdminService struct{ mock.Mock }

func (m *MockAdminService) ListParticipants(ctx context.Context) ([]models.ParticipantSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ParticipantSummary), args.Error(1)
}

func (m *MockAdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminStats), args.Error(1)
}

func (m *MockAdminService) DeleteParticipant(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) Report(ctx context.Context, id uint) (*models.ParticipantReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ParticipantReport), args.Error(1)
}

type MockExportService struct{ mock.Mock }

func (m *MockExportService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type mockServiceManager struct {
	content     *MockContentService
	participant *MockParticipantService
	assessment  *MockAssessmentService
	admin       *MockAdminService
	export      *MockExportService
}

func newMockServiceManager() *mockServiceManager {
	return &mockServiceManager{
		content:     &MockContentService{},
		participant: &MockParticipantService{},
		assessment:  &MockAssessmentService{},
		admin:       &MockAdminService{},
		export:      &MockExportService{},
	}
}

func (m *mockServiceManager) Content() services.ContentService         { return m.content }
func (m *mockServiceManager) Participant() services.ParticipantService { return m.participant }
func (m *mockServiceManager) Assessment() services.AssessmentService   { return m.assessment }
func (m *mockServiceManager) Admin() services.AdminService             { return m.admin }
func (m *mockServiceManager) Export() services.ExportService           { return m.export }

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
