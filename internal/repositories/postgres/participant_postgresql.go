package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"gorm.io/gorm"
)

type ParticipantPostgreSQL struct {
	db *gorm.DB
}

func NewParticipantPostgreSQL(db *gorm.DB) repositories.ParticipantRepository {
	return &ParticipantPostgreSQL{db: db}
}

// Create inserts a participant. A phone collision surfaces as repositories.ErrDuplicate.
func (p *ParticipantPostgreSQL) Create(ctx context.Context, tx *gorm.DB, participant *models.Participant) error {
	return translate(conn(ctx, p.db, tx).Create(participant).Error, "failed to create participant")
}

func (p *ParticipantPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Participant, error) {
	var participant models.Participant
	if err := conn(ctx, p.db, tx).First(&participant, id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("participant %d", id))
	}
	return &participant, nil
}

func (p *ParticipantPostgreSQL) GetByPhone(ctx context.Context, tx *gorm.DB, phone string) (*models.Participant, error) {
	var participant models.Participant
	err := conn(ctx, p.db, tx).
		Where("phone = ?", phone).
		First(&participant).Error
	if err != nil {
		return nil, translate(err, "participant by phone")
	}
	return &participant, nil
}

func (p *ParticipantPostgreSQL) ExistsByPhone(ctx context.Context, tx *gorm.DB, phone string) (bool, error) {
	var count int64
	err := conn(ctx, p.db, tx).
		Model(&models.Participant{}).
		Where("phone = ?", phone).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "failed to check phone")
	}
	return count > 0, nil
}

// Delete removes the participant row only; callers delete assessments first
func (p *ParticipantPostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	result := conn(ctx, p.db, tx).Delete(&models.Participant{}, id)
	if result.Error != nil {
		return translate(result.Error, "failed to delete participant")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("participant %d: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func (p *ParticipantPostgreSQL) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.WithContext(ctx).Model(&models.Participant{}).Count(&count).Error; err != nil {
		return 0, translate(err, "failed to count participants")
	}
	return count, nil
}

func (p *ParticipantPostgreSQL) ListWithAssessments(ctx context.Context) ([]repositories.ParticipantAssessmentRow, error) {
	var rows []repositories.ParticipantAssessmentRow
	err := p.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id, u.username, u.grade, u.phone, u.timestamp AS user_time,
			a.id AS assessment_id, a.total_score, a.module_scores, a.timestamp AS assessment_time`).
		Joins("LEFT JOIN assessments AS a ON u.id = a.user_id").
		Order("u.timestamp DESC, u.id DESC, a.timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err, "failed to list participants")
	}
	return rows, nil
}
