package services

import (
	"context"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
)

// ContentService serves the question bank and suggestion table and scores answer sets
// without persisting anything
type ContentService interface {
	Questions() scoring.Bank
	Suggestions() scoring.SuggestionTable
	Score(answers scoring.AnswerSet) (*models.Evaluation, error)
	Evaluate(result scoring.Result) models.Evaluation
	Progress(answers scoring.AnswerSet) scoring.Progress
}

type ParticipantService interface {
	Register(ctx context.Context, req *models.RegisterParticipantRequest) (*models.RegisterParticipantResponse, error)
}

type AssessmentService interface {
	Submit(ctx context.Context, req *models.SubmitAssessmentRequest) (*models.SubmitAssessmentResponse, error)
	GetLatestByPhone(ctx context.Context, phone string) (*models.AssessmentReport, error)
}

type AdminService interface {
	ListParticipants(ctx context.Context) ([]models.ParticipantSummary, error)
	Stats(ctx context.Context) (*models.AdminStats, error)
	DeleteParticipant(ctx context.Context, id uint) error
	Report(ctx context.Context, id uint) (*models.ParticipantReport, error)
}

type ExportService interface {
	ExportWorkbook(ctx context.Context) ([]byte, error)
}

// MetricsRecorder receives domain counters; monitoring.Metrics implements it
type MetricsRecorder interface {
	ObserveRegistration()
	ObserveSubmission(totalScore int)
}

type noopMetrics struct{}

func (noopMetrics) ObserveRegistration()  {}
func (noopMetrics) ObserveSubmission(int) {}
