package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository struct {
	mock.Mock
	participant *MockParticipantRepository
	assessment  *MockAssessmentRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		participant: &MockParticipantRepository{},
		assessment:  &MockAssessmentRepository{},
	}
}

func (m *MockRepository) Participant() repositories.ParticipantRepository { return m.participant }
func (m *MockRepository) Assessment() repositories.AssessmentRepository   { return m.assessment }

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (m *MockRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepository) Close() error { return nil }

type MockParticipantRepository struct {
	mock.Mock
}

func (m *MockParticipantRepository) Create(ctx context.Context, tx *gorm.DB, participant *models.Participant) error {
	return m.Called(ctx, tx, participant).Error(0)
}

func (m *MockParticipantRepository) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Participant, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) GetByPhone(ctx context.Context, tx *gorm.DB, phone string) (*models.Participant, error) {
	args := m.Called(ctx, tx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Participant), args.Error(1)
}

func (m *MockParticipantRepository) ExistsByPhone(ctx context.Context, tx *gorm.DB, phone string) (bool, error) {
	args := m.Called(ctx, tx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockParticipantRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return m.Called(ctx, tx, id).Error(0)
}

func (m *MockParticipantRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParticipantRepository) ListWithAssessments(ctx context.Context) ([]repositories.ParticipantAssessmentRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.ParticipantAssessmentRow), args.Error(1)
}

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, tx *gorm.DB, record *models.AssessmentRecord) error {
	return m.Called(ctx, tx, record).Error(0)
}

func (m *MockAssessmentRepository) GetLatestByUserID(ctx context.Context, tx *gorm.DB, userID uint) (*models.AssessmentRecord, error) {
	args := m.Called(ctx, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssessmentRecord), args.Error(1)
}

func (m *MockAssessmentRepository) DeleteByUserID(ctx context.Context, tx *gorm.DB, userID uint) (int64, error) {
	args := m.Called(ctx, tx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssessmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssessmentRepository) AverageTotalScore(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAssessmentRepository) ListModuleScores(ctx context.Context) ([]repositories.ModuleScoresRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repositories.ModuleScoresRow), args.Error(1)
}

// cacheStub is an in-memory CacheService that counts reads served from memory
type cacheStub struct {
	mu      sync.Mutex
	entries map[string][]byte
	hits    int
}

func newCacheStub() *cacheStub {
	return &cacheStub{entries: make(map[string][]byte)}
}

func (c *cacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
	return nil
}

func (c *cacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(data, dest)
}

func (c *cacheStub) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *cacheStub) DeletePattern(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	return nil
}
