package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/SAP-F-2025/employability-assessment/internal/validator"
)

const messageAssessmentSaved = "测评结果保存成功"

type assessmentService struct {
	repo      repositories.Repository
	content   ContentService
	publisher events.EventPublisher
	cache     cache.CacheService
	metrics   MetricsRecorder
	validator *validator.Validator
	logger    *slog.Logger
	svcLogger *ServiceLogger
}

func NewAssessmentService(deps Dependencies, content ContentService) AssessmentService {
	return &assessmentService{
		repo:      deps.Repo,
		content:   content,
		publisher: deps.Publisher,
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		validator: deps.Validator,
		logger:    deps.Logger,
		svcLogger: NewServiceLogger(deps.Logger, "assessment"),
	}
}

// Submit scores the answers against the question bank and stores the result for the
// participant identified by phone. Scores sent by clients are never trusted.
func (s *assessmentService) Submit(ctx context.Context, req *models.SubmitAssessmentRequest) (resp *models.SubmitAssessmentResponse, err error) {
	op := s.svcLogger.WithOperation(ctx, "submit_assessment")
	var recordID uint
	defer func() { op.LogResult(recordID, "assessment", err) }()

	if req.UserInfo.Phone == "" || len(req.Answers) == 0 {
		return nil, ErrIncompleteSubmission
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	participant, err := s.repo.Participant().GetByPhone(ctx, nil, req.UserInfo.Phone)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	evaluation, err := s.content.Score(req.Answers)
	if err != nil {
		return nil, err
	}

	submittedAt := time.Now()
	if req.Timestamp != nil {
		submittedAt = *req.Timestamp
	}

	record, err := models.NewAssessmentRecord(participant.ID, evaluation.Result, submittedAt)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Assessment().Create(ctx, nil, record); err != nil {
		return nil, err
	}
	recordID = record.ID

	s.logger.Info("Assessment stored",
		"assessment_id", record.ID,
		"participant_id", participant.ID,
		"total_score", record.TotalScore)

	s.metrics.ObserveSubmission(record.TotalScore)
	invalidateAdminViews(ctx, s.cache, s.logger)
	publish(ctx, s.publisher, s.logger, events.NewAssessmentSubmittedEvent(
		record.ID, participant.ID, evaluation.Result, submittedAt))

	return &models.SubmitAssessmentResponse{
		ID:         record.ID,
		Message:    messageAssessmentSaved,
		Evaluation: *evaluation,
	}, nil
}

// GetLatestByPhone returns the participant's most recent result with suggestions resolved
// against the current suggestion table
func (s *assessmentService) GetLatestByPhone(ctx context.Context, phone string) (*models.AssessmentReport, error) {
	if !validator.IsPhone(phone) {
		return nil, ValidationErrors{*NewValidationError("phone", "must be a valid 11-digit mainland mobile number", phone)}
	}

	participant, err := s.repo.Participant().GetByPhone(ctx, nil, phone)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	record, err := s.repo.Assessment().GetLatestByUserID(ctx, nil, participant.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}

	result, err := record.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stored result: %w", err)
	}

	return &models.AssessmentReport{
		ID:          record.ID,
		Participant: *participant,
		Timestamp:   record.Timestamp,
		Evaluation:  s.content.Evaluate(result),
	}, nil
}
