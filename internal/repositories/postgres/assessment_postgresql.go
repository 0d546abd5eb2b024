package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"gorm.io/gorm"
)

type AssessmentPostgreSQL struct {
	db *gorm.DB
}

func NewAssessmentPostgreSQL(db *gorm.DB) repositories.AssessmentRepository {
	return &AssessmentPostgreSQL{db: db}
}

func (a *AssessmentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, record *models.AssessmentRecord) error {
	return translate(conn(ctx, a.db, tx).Create(record).Error, "failed to create assessment")
}

// GetLatestByUserID returns the most recent submission of a participant
func (a *AssessmentPostgreSQL) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.AssessmentRecord, error) {
	var record models.AssessmentRecord
	err := conn(ctx, a.db, tx).
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		First(&record).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("latest assessment of participant %d", userID))
	}
	return &record, nil
}

func (a *AssessmentPostgreSQL) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	result := conn(ctx, a.db, tx).
		Where("user_id = ?", userID).
		Delete(&models.AssessmentRecord{})
	if result.Error != nil {
		return 0, translate(result.Error, "failed to delete assessments")
	}
	return result.RowsAffected, nil
}

func (a *AssessmentPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := a.db.WithContext(ctx).Model(&models.AssessmentRecord{}).Count(&count).Error; err != nil {
		return 0, translate(err, "failed to count assessments")
	}
	return count, nil
}

func (a *AssessmentPostgreSQL) AverageTotalScore(ctx context.Context) (float64, error) {
	var avg sql.NullFloat64
	err := a.db.WithContext(ctx).
		Model(&models.AssessmentRecord{}).
		Select("AVG(total_score)").
		Row().
		Scan(&avg)
	if err != nil {
		return 0, translate(err, "failed to average total score")
	}
	return avg.Float64, nil
}

func (a *AssessmentPostgreSQL) ListModuleScores(ctx context.Context) ([]repositories.ModuleScoresRow, error) {
	var rows []repositories.ModuleScoresRow
	err := a.db.WithContext(ctx).
		Model(&models.AssessmentRecord{}).
		Select("id, module_scores").
		Order("id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "failed to list module scores")
	}
	return rows, nil
}
