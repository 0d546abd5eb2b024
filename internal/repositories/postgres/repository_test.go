package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/config"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/SAP-F-2025/employability-assessment/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) repositories.Repository {
	t.Helper()
	db, err := pkg.InitDatabase(&config.Config{DatabaseDriver: pkg.DriverSQLite, DatabaseURL: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, pkg.Migrate(db))

	repo := NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func createParticipant(t *testing.T, repo repositories.Repository, phone string, registered time.Time) *models.Participant {
	t.Helper()
	p := &models.Participant{Username: "user-" + phone, Grade: models.GradeJunior, Phone: phone, Timestamp: registered}
	require.NoError(t, repo.Participant().Create(context.Background(), nil, p))
	return p
}

func createAssessment(t *testing.T, repo repositories.Repository, userID uint, total int, at time.Time) *models.AssessmentRecord {
	t.Helper()
	record, err := models.NewAssessmentRecord(userID, scoring.Result{
		TotalScore:   total,
		ModuleScores: map[scoring.Module]float64{scoring.ModuleCreativity: float64(total) / 20},
		Answers:      scoring.AnswerSet{0: 0},
	}, at)
	require.NoError(t, err)
	require.NoError(t, repo.Assessment().Create(context.Background(), nil, record))
	return record
}

func TestParticipant_CreateAndLookup(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := createParticipant(t, repo, "13800138000", time.Now())
	assert.NotZero(t, p.ID)

	byPhone, err := repo.Participant().GetByPhone(ctx, nil, "13800138000")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byPhone.ID)

	exists, err := repo.Participant().ExistsByPhone(ctx, nil, "13800138000")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.Participant().GetByPhone(ctx, nil, "13900000000")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.Participant().GetByID(ctx, nil, 999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestParticipant_DuplicatePhone(t *testing.T) {
	repo := newTestRepository(t)
	createParticipant(t, repo, "13800138000", time.Now())

	dup := &models.Participant{Username: "other", Grade: models.GradeSenior, Phone: "13800138000"}
	err := repo.Participant().Create(context.Background(), nil, dup)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestAssessment_LatestAndAggregates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	p := createParticipant(t, repo, "13800138000", now)
	createAssessment(t, repo, p.ID, 40, now.Add(-time.Hour))
	latest := createAssessment(t, repo, p.ID, 81, now)

	got, err := repo.Assessment().GetLatestByUserID(ctx, nil, p.ID)
	require.NoError(t, err)
	assert.Equal(t, latest.ID, got.ID)
	assert.Equal(t, 81, got.TotalScore)

	count, err := repo.Assessment().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	avg, err := repo.Assessment().AverageTotalScore(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 60.5, avg, 1e-9)

	rows, err := repo.Assessment().ListModuleScores(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = repo.Assessment().GetLatestByUserID(ctx, nil, p.ID+1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAssessment_AverageEmpty(t *testing.T) {
	repo := newTestRepository(t)

	avg, err := repo.Assessment().AverageTotalScore(context.Background())
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestParticipant_ListWithAssessments(t *testing.T) {
	repo := newTestRepository(t)
	now := time.Now()

	older := createParticipant(t, repo, "13800138000", now.Add(-2*time.Hour))
	newer := createParticipant(t, repo, "13900139000", now)
	createAssessment(t, repo, older.ID, 55, now.Add(-time.Hour))

	rows, err := repo.Participant().ListWithAssessments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, newer.ID, rows[0].ID)
	assert.Nil(t, rows[0].TotalScore)
	assert.Nil(t, rows[0].AssessmentID)

	assert.Equal(t, older.ID, rows[1].ID)
	require.NotNil(t, rows[1].TotalScore)
	assert.Equal(t, 55, *rows[1].TotalScore)
	require.NotNil(t, rows[1].ModuleScores)
}

func TestDeleteInTransaction(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := createParticipant(t, repo, "13800138000", time.Now())
	createAssessment(t, repo, p.ID, 70, time.Now())
	createAssessment(t, repo, p.ID, 75, time.Now())

	var deleted int64
	err := repo.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		if deleted, err = repo.Assessment().DeleteByUserID(ctx, tx, p.ID); err != nil {
			return err
		}
		return repo.Participant().Delete(ctx, tx, p.ID)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	count, err := repo.Participant().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = repo.Participant().Delete(ctx, nil, p.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestPing(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
