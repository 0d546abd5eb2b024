package postgres

import (
	"context"

	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"gorm.io/gorm"
)

// Repository is the gorm-backed implementation. Despite the package name it runs on any
// dialector gorm was opened with (PostgreSQL in production, SQLite for local runs and tests).
type Repository struct {
	db          *gorm.DB
	participant repositories.ParticipantRepository
	assessment  repositories.AssessmentRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &Repository{
		db:          db,
		participant: NewParticipantPostgreSQL(db),
		assessment:  NewAssessmentPostgreSQL(db),
	}
}

func (r *Repository) Participant() repositories.ParticipantRepository {
	return r.participant
}

func (r *Repository) Assessment() repositories.AssessmentRepository {
	return r.assessment
}

// WithTransaction runs fn in a database transaction, rolling back when fn returns an error
func (r *Repository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
