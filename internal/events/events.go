package events

import (
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"github.com/google/uuid"
)

// EventType represents the kinds of domain events the service emits
type EventType string

const (
	EventParticipantRegistered EventType = "participant.registered"
	EventParticipantDeleted    EventType = "participant.deleted"
	EventAssessmentSubmitted   EventType = "assessment.submitted"
)

const (
	eventSource  = "employability-assessment"
	eventVersion = "1.0"
)

// Event is the envelope for every published event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type ParticipantRegisteredEvent struct {
	ParticipantID uint      `json:"participant_id"`
	Username      string    `json:"username"`
	Grade         string    `json:"grade"`
	RegisteredAt  time.Time `json:"registered_at"`
}

type ParticipantDeletedEvent struct {
	ParticipantID      uint      `json:"participant_id"`
	DeletedAssessments int64     `json:"deleted_assessments"`
	DeletedAt          time.Time `json:"deleted_at"`
}

type AssessmentSubmittedEvent struct {
	AssessmentID  uint                       `json:"assessment_id"`
	ParticipantID uint                       `json:"participant_id"`
	TotalScore    int                        `json:"total_score"`
	TotalRange    string                     `json:"total_range"`
	ModuleScores  map[scoring.Module]float64 `json:"module_scores"`
	SubmittedAt   time.Time                  `json:"submitted_at"`
}

func newEvent(t EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

func NewParticipantRegisteredEvent(participantID uint, username, grade string, registeredAt time.Time) *Event {
	return newEvent(EventParticipantRegistered, ParticipantRegisteredEvent{
		ParticipantID: participantID,
		Username:      username,
		Grade:         grade,
		RegisteredAt:  registeredAt,
	})
}

func NewParticipantDeletedEvent(participantID uint, deletedAssessments int64) *Event {
	return newEvent(EventParticipantDeleted, ParticipantDeletedEvent{
		ParticipantID:      participantID,
		DeletedAssessments: deletedAssessments,
		DeletedAt:          time.Now(),
	})
}

func NewAssessmentSubmittedEvent(assessmentID, participantID uint, result scoring.Result, submittedAt time.Time) *Event {
	return newEvent(EventAssessmentSubmitted, AssessmentSubmittedEvent{
		AssessmentID:  assessmentID,
		ParticipantID: participantID,
		TotalScore:    result.TotalScore,
		TotalRange:    scoring.ScoreRange(float64(result.TotalScore), scoring.TotalScoreScale),
		ModuleScores:  result.ModuleScores,
		SubmittedAt:   submittedAt,
	})
}
