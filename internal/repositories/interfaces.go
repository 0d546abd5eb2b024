package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Repository groups the data stores behind one connection. Methods taking a tx run on
// it when non-nil and on the base connection otherwise.
type Repository interface {
	Participant() ParticipantRepository
	Assessment() AssessmentRepository

	WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Ping(ctx context.Context) error
	Close() error
}

// ParticipantRepository interface for participant operations
type ParticipantRepository interface {
	Create(ctx context.Context, tx *gorm.DB, participant *models.Participant) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Participant, error)
	GetByPhone(ctx context.Context, tx *gorm.DB, phone string) (*models.Participant, error)
	ExistsByPhone(ctx context.Context, tx *gorm.DB, phone string) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error

	Count(ctx context.Context) (int64, error)
	// ListWithAssessments returns one row per (participant, assessment) pair, with
	// participants that never submitted included once. Newest participants first.
	ListWithAssessments(ctx context.Context) ([]ParticipantAssessmentRow, error)
}

// AssessmentRepository interface for assessment record operations
type AssessmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *models.AssessmentRecord) error
	GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.AssessmentRecord, error)
	DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error)

	Count(ctx context.Context) (int64, error)
	// AverageTotalScore returns 0 when there are no assessments
	AverageTotalScore(ctx context.Context) (float64, error)
	ListModuleScores(ctx context.Context) ([]ModuleScoresRow, error)
}

// ===== SHARED ROW STRUCTS =====

type ParticipantAssessmentRow struct {
	ID             uint
	Username       string
	Grade          string
	Phone          string
	UserTime       time.Time
	AssessmentID   *uint
	TotalScore     *int
	ModuleScores   *string
	AssessmentTime *time.Time
}

type ModuleScoresRow struct {
	ID           uint
	ModuleScores string
}
