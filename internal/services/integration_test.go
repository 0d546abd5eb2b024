package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/config"
	"github.com/SAP-F-2025/employability-assessment/internal/content"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories/postgres"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/SAP-F-2025/employability-assessment/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testEnv struct {
	services  ServiceManager
	content   *content.Content
	publisher *events.MockEventPublisher
	cache     *cacheStub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := pkg.InitDatabase(&config.Config{DatabaseDriver: pkg.DriverSQLite, DatabaseURL: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, pkg.Migrate(db))
	repo := postgres.NewRepository(db)
	t.Cleanup(func() { _ = repo.Close() })

	c, err := content.Load("", "")
	require.NoError(t, err)

	env := &testEnv{
		content:   c,
		publisher: events.NewMockEventPublisher(testLogger()),
		cache:     newCacheStub(),
	}
	env.services = NewServiceManager(Dependencies{
		Repo:      repo,
		Content:   c,
		Publisher: env.publisher,
		Cache:     env.cache,
		CacheTTL:  time.Minute,
		Logger:    testLogger(),
	})
	return env
}

func (e *testEnv) register(t *testing.T, phone string) uint {
	t.Helper()
	resp, err := e.services.Participant().Register(context.Background(), &models.RegisterParticipantRequest{
		Username: "测试用户", Grade: "研二", Phone: phone,
	})
	require.NoError(t, err)
	return resp.ID
}

func (e *testEnv) answers(option int) scoring.AnswerSet {
	answers := make(scoring.AnswerSet, len(e.content.Bank))
	for i := range e.content.Bank {
		answers[i] = option
	}
	return answers
}

func TestAssessmentService_SubmitScoresServerSide(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.register(t, "13800138000")

	answers := env.answers(0)
	expected, err := scoring.ComputeScores(env.content.Bank, answers)
	require.NoError(t, err)

	resp, err := env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
		UserInfo: models.SubmissionUserInfo{Phone: "13800138000"},
		Answers:  answers,
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, messageAssessmentSaved, resp.Message)
	assert.Equal(t, expected.TotalScore, resp.Result.TotalScore)
	assert.Equal(t, expected.ModuleScores, resp.Result.ModuleScores)
	assert.True(t, resp.Suggestions.Total.Found)
	assert.Len(t, resp.Levels.Modules, len(scoring.Modules))

	published := env.publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, events.EventAssessmentSubmitted, published[1].Type)

	latest, err := env.services.Assessment().GetLatestByPhone(ctx, "13800138000")
	require.NoError(t, err)
	assert.Equal(t, resp.ID, latest.ID)
	assert.Equal(t, expected.TotalScore, latest.Result.TotalScore)
	assert.Equal(t, "13800138000", latest.Participant.Phone)
	assert.Equal(t, resp.Suggestions.Total.Range, latest.Suggestions.Total.Range)
}

func TestAssessmentService_SubmitErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
		UserInfo: models.SubmissionUserInfo{Phone: "13800138000"},
		Answers:  env.answers(0),
	})
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	assert.True(t, IsNotFound(err))

	_, err = env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{})
	assert.ErrorIs(t, err, ErrIncompleteSubmission)

	env.register(t, "13800138000")

	partial := env.answers(0)
	delete(partial, 3)
	_, err = env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
		UserInfo: models.SubmissionUserInfo{Phone: "13800138000"},
		Answers:  partial,
	})
	assert.ErrorIs(t, err, scoring.ErrMissingAnswer)
	assert.True(t, IsValidation(err))

	invalid := env.answers(0)
	invalid[0] = 99
	_, err = env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
		UserInfo: models.SubmissionUserInfo{Phone: "13800138000"},
		Answers:  invalid,
	})
	assert.ErrorIs(t, err, scoring.ErrInvalidOptionIndex)

	_, err = env.services.Assessment().GetLatestByPhone(ctx, "13800138000")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	_, err = env.services.Assessment().GetLatestByPhone(ctx, "abc")
	assert.True(t, IsValidation(err))
}

func TestAdminService_StatsAndCaching(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.services.Admin()

	env.register(t, "13800138000")
	env.register(t, "13900139000")

	stats, err := admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Zero(t, stats.TotalAssessments)
	assert.Zero(t, stats.AverageScore)
	assert.Empty(t, stats.ModuleAverages)

	_, err = admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, env.cache.hits)

	low, err := scoring.ComputeScores(env.content.Bank, env.answers(3))
	require.NoError(t, err)
	high, err := scoring.ComputeScores(env.content.Bank, env.answers(0))
	require.NoError(t, err)

	for phone, answers := range map[string]scoring.AnswerSet{"13800138000": env.answers(3), "13900139000": env.answers(0)} {
		_, err := env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
			UserInfo: models.SubmissionUserInfo{Phone: phone},
			Answers:  answers,
		})
		require.NoError(t, err)
	}

	stats, err = admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalAssessments)
	assert.InDelta(t, float64(low.TotalScore+high.TotalScore)/2, float64(stats.AverageScore), 0.5)
	assert.Len(t, stats.ModuleAverages, len(scoring.Modules))
	assert.InDelta(t,
		(low.ModuleScores[scoring.ModuleTechnical]+high.ModuleScores[scoring.ModuleTechnical])/2,
		stats.ModuleAverages[scoring.ModuleTechnical], 0.01)
}

func TestAdminService_ListDeleteAndReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.services.Admin()

	withResult := env.register(t, "13800138000")
	withoutResult := env.register(t, "13900139000")
	_, err := env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
		UserInfo: models.SubmissionUserInfo{Phone: "13800138000"},
		Answers:  env.answers(1),
	})
	require.NoError(t, err)

	list, err := admin.ListParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, row := range list {
		if row.ID == withResult {
			require.NotNil(t, row.TotalScore)
			assert.Len(t, row.ModuleScores, len(scoring.Modules))
			assert.NotNil(t, row.AssessmentTime)
		} else {
			assert.Nil(t, row.TotalScore)
			assert.Nil(t, row.ModuleScores)
		}
	}

	report, err := admin.Report(ctx, withoutResult)
	require.NoError(t, err)
	assert.Nil(t, report.Results)
	assert.Nil(t, report.Suggestions)
	assert.Equal(t, "13900139000", report.UserInfo.Phone)

	report, err = admin.Report(ctx, withResult)
	require.NoError(t, err)
	require.NotNil(t, report.Results)
	require.NotNil(t, report.Suggestions)
	assert.Len(t, report.Suggestions.Modules, len(scoring.Modules))

	require.NoError(t, admin.DeleteParticipant(ctx, withResult))
	published := env.publisher.GetPublishedEvents()
	assert.Equal(t, events.EventParticipantDeleted, published[len(published)-1].Type)

	_, err = env.services.Assessment().GetLatestByPhone(ctx, "13800138000")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	list, err = admin.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, admin.DeleteParticipant(ctx, 999), ErrParticipantNotFound)
	_, err = admin.Report(ctx, 999)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestExportService_Workbook(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.register(t, "13800138000")
	env.register(t, "13900139000")
	_, err := env.services.Assessment().Submit(ctx, &models.SubmitAssessmentRequest{
		UserInfo: models.SubmissionUserInfo{Phone: "13800138000"},
		Answers:  env.answers(0),
	})
	require.NoError(t, err)

	data, err := env.services.Export().ExportWorkbook(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "姓名", rows[0][1])
	assert.Equal(t, string(scoring.ModuleCreativity), rows[0][7])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"参与人数", "2"}, summary[0])
	assert.Equal(t, []string{"测评次数", "1"}, summary[1])
}
