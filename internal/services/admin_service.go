package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"gorm.io/gorm"
)

type adminService struct {
	repo      repositories.Repository
	content   ContentService
	publisher events.EventPublisher
	cache     cache.CacheService
	cacheTTL  time.Duration
	logger    *slog.Logger
	svcLogger *ServiceLogger
}

func NewAdminService(deps Dependencies, content ContentService) AdminService {
	return &adminService{
		repo:      deps.Repo,
		content:   content,
		publisher: deps.Publisher,
		cache:     deps.Cache,
		cacheTTL:  deps.CacheTTL,
		logger:    deps.Logger,
		svcLogger: NewServiceLogger(deps.Logger, "admin"),
	}
}

// ListParticipants returns every participant joined with their submissions, newest first
func (s *adminService) ListParticipants(ctx context.Context) ([]models.ParticipantSummary, error) {
	return cachedOrLoad(ctx, s.cache, s.logger, cache.KeyAdminParticipants, s.cacheTTL, func() ([]models.ParticipantSummary, error) {
		rows, err := s.repo.Participant().ListWithAssessments(ctx)
		if err != nil {
			return nil, err
		}

		summaries := make([]models.ParticipantSummary, 0, len(rows))
		for _, row := range rows {
			summary := models.ParticipantSummary{
				ID:             row.ID,
				Username:       row.Username,
				Grade:          row.Grade,
				Phone:          row.Phone,
				TotalScore:     row.TotalScore,
				UserTime:       row.UserTime,
				AssessmentTime: row.AssessmentTime,
			}
			if row.ModuleScores != nil {
				if err := json.Unmarshal([]byte(*row.ModuleScores), &summary.ModuleScores); err != nil {
					s.logger.Warn("Skipping unreadable module scores",
						"participant_id", row.ID,
						"error", err)
				}
			}
			summaries = append(summaries, summary)
		}
		return summaries, nil
	})
}

// Stats returns participant and assessment counts, the rounded average total score and
// the average normalized score of every module
func (s *adminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	return cachedOrLoad(ctx, s.cache, s.logger, cache.KeyAdminStats, s.cacheTTL, func() (*models.AdminStats, error) {
		totalUsers, err := s.repo.Participant().Count(ctx)
		if err != nil {
			return nil, err
		}
		totalAssessments, err := s.repo.Assessment().Count(ctx)
		if err != nil {
			return nil, err
		}
		average, err := s.repo.Assessment().AverageTotalScore(ctx)
		if err != nil {
			return nil, err
		}
		moduleAverages, err := s.moduleAverages(ctx)
		if err != nil {
			return nil, err
		}

		return &models.AdminStats{
			TotalUsers:       totalUsers,
			TotalAssessments: totalAssessments,
			AverageScore:     int(math.Floor(average + 0.5)),
			ModuleAverages:   moduleAverages,
		}, nil
	})
}

func (s *adminService) moduleAverages(ctx context.Context) (map[scoring.Module]float64, error) {
	rows, err := s.repo.Assessment().ListModuleScores(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[scoring.Module]float64)
	counts := make(map[scoring.Module]int)
	for _, row := range rows {
		var scores map[scoring.Module]float64
		if err := json.Unmarshal([]byte(row.ModuleScores), &scores); err != nil {
			s.logger.Warn("Skipping unreadable module scores", "assessment_id", row.ID, "error", err)
			continue
		}
		for module, score := range scores {
			if !module.IsValid() {
				continue
			}
			sums[module] += score
			counts[module]++
		}
	}

	averages := make(map[scoring.Module]float64, len(sums))
	for module, sum := range sums {
		averages[module] = math.Round(sum/float64(counts[module])*100) / 100
	}
	return averages, nil
}

// DeleteParticipant removes the participant and all their submissions atomically
func (s *adminService) DeleteParticipant(ctx context.Context, id uint) (err error) {
	op := s.svcLogger.WithOperation(ctx, "delete_participant")
	defer func() { op.LogResult(id, "participant", err) }()

	var deletedAssessments int64
	err = s.repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.repo.Participant().GetByID(ctx, tx, id); err != nil {
			return err
		}
		n, err := s.repo.Assessment().DeleteByUserID(ctx, tx, id)
		if err != nil {
			return err
		}
		deletedAssessments = n
		return s.repo.Participant().Delete(ctx, tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrParticipantNotFound
		}
		return fmt.Errorf("failed to delete participant %d: %w", id, err)
	}

	invalidateAdminViews(ctx, s.cache, s.logger)
	publish(ctx, s.publisher, s.logger, events.NewParticipantDeletedEvent(id, deletedAssessments))
	return nil
}

// Report builds the downloadable report of a participant's latest result. Results and
// suggestions are nil when the participant has not submitted yet.
func (s *adminService) Report(ctx context.Context, id uint) (*models.ParticipantReport, error) {
	participant, err := s.repo.Participant().GetByID(ctx, nil, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	report := &models.ParticipantReport{
		UserInfo: models.ReportUserInfo{
			Username: participant.Username,
			Grade:    string(participant.Grade),
			Phone:    participant.Phone,
		},
		ExportTime: time.Now(),
	}

	record, err := s.repo.Assessment().GetLatestByUserID(ctx, nil, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return report, nil
	}
	if err != nil {
		return nil, err
	}

	result, err := record.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stored result: %w", err)
	}
	evaluation := s.content.Evaluate(result)
	report.Results = &evaluation.Result
	report.Levels = &evaluation.Levels
	report.Suggestions = &evaluation.Suggestions
	return report, nil
}
