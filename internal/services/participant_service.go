package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/SAP-F-2025/employability-assessment/internal/validator"
)

const messageParticipantSaved = "用户信息保存成功"

type participantService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	cache     cache.CacheService
	metrics   MetricsRecorder
	validator *validator.Validator
	logger    *slog.Logger
	svcLogger *ServiceLogger
}

func NewParticipantService(deps Dependencies) ParticipantService {
	return &participantService{
		repo:      deps.Repo,
		publisher: deps.Publisher,
		cache:     deps.Cache,
		metrics:   deps.Metrics,
		validator: deps.Validator,
		logger:    deps.Logger,
		svcLogger: NewServiceLogger(deps.Logger, "participant"),
	}
}

// Register stores a new participant. Each phone number may register only once.
func (s *participantService) Register(ctx context.Context, req *models.RegisterParticipantRequest) (resp *models.RegisterParticipantResponse, err error) {
	op := s.svcLogger.WithOperation(ctx, "register_participant")
	var participantID uint
	defer func() { op.LogResult(participantID, "participant", err) }()

	req.Username = strings.TrimSpace(req.Username)
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.repo.Participant().ExistsByPhone(ctx, nil, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if exists {
		return nil, ErrDuplicatePhone
	}

	registeredAt := time.Now()
	if req.Timestamp != nil {
		registeredAt = *req.Timestamp
	}

	participant := &models.Participant{
		Username:  req.Username,
		Grade:     models.Grade(req.Grade),
		Phone:     req.Phone,
		Timestamp: registeredAt,
	}
	if err := s.repo.Participant().Create(ctx, nil, participant); err != nil {
		// lost a race with a concurrent registration of the same phone
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicatePhone
		}
		return nil, err
	}
	participantID = participant.ID

	s.logger.Info("Participant registered",
		"participant_id", participant.ID,
		"grade", participant.Grade,
		"phone", MaskPhone(participant.Phone))

	s.metrics.ObserveRegistration()
	invalidateAdminViews(ctx, s.cache, s.logger)
	publish(ctx, s.publisher, s.logger, events.NewParticipantRegisteredEvent(
		participant.ID, participant.Username, string(participant.Grade), participant.Timestamp))

	return &models.RegisterParticipantResponse{
		ID:      participant.ID,
		Message: messageParticipantSaved,
	}, nil
}
