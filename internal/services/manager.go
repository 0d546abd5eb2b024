package services

import (
	"log/slog"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/content"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/SAP-F-2025/employability-assessment/internal/validator"
)

// Dependencies are the collaborators shared by every service
type Dependencies struct {
	Repo      repositories.Repository
	Content   *content.Content
	Publisher events.EventPublisher
	Cache     cache.CacheService
	CacheTTL  time.Duration
	Metrics   MetricsRecorder
	Validator *validator.Validator
	Logger    *slog.Logger
}

// ServiceManager gives handlers access to every service
type ServiceManager interface {
	Content() ContentService
	Participant() ParticipantService
	Assessment() AssessmentService
	Admin() AdminService
	Export() ExportService
}

type serviceManager struct {
	content     ContentService
	participant ParticipantService
	assessment  AssessmentService
	admin       AdminService
	export      ExportService
}

// withDefaults fills optional dependencies with no-op versions
func (d Dependencies) withDefaults() Dependencies {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Cache == nil {
		d.Cache = cache.NewNoopCache()
	}
	if d.Publisher == nil {
		d.Publisher = events.NewMockEventPublisher(d.Logger)
	}
	if d.Metrics == nil {
		d.Metrics = noopMetrics{}
	}
	if d.Validator == nil {
		d.Validator = validator.New()
	}
	return d
}

func NewServiceManager(deps Dependencies) ServiceManager {
	deps = deps.withDefaults()

	contentSvc := NewContentService(deps.Content)
	admin := NewAdminService(deps, contentSvc)

	return &serviceManager{
		content:     contentSvc,
		participant: NewParticipantService(deps),
		assessment:  NewAssessmentService(deps, contentSvc),
		admin:       admin,
		export:      NewExportService(admin, deps.Logger),
	}
}

func (m *serviceManager) Content() ContentService         { return m.content }
func (m *serviceManager) Participant() ParticipantService { return m.participant }
func (m *serviceManager) Assessment() AssessmentService   { return m.assessment }
func (m *serviceManager) Admin() AdminService             { return m.admin }
func (m *serviceManager) Export() ExportService           { return m.export }
