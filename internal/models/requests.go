package models

import (
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
)

// ===== REQUEST DTOs =====

type RegisterParticipantRequest struct {
	Username  string     `json:"username" validate:"required,notblank,max=100"`
	Grade     string     `json:"grade" validate:"required,grade"`
	Phone     string     `json:"phone" validate:"required,cn_phone"`
	Timestamp *time.Time `json:"timestamp"`
}

// SubmissionUserInfo identifies the submitter. Only the phone is used for lookup.
type SubmissionUserInfo struct {
	Phone    string `json:"phone" validate:"required,cn_phone"`
	Username string `json:"username,omitempty"`
	Grade    string `json:"grade,omitempty"`
}

type SubmitAssessmentRequest struct {
	UserInfo  SubmissionUserInfo `json:"userInfo"`
	Answers   scoring.AnswerSet  `json:"answers" validate:"required,min=1"`
	Timestamp *time.Time         `json:"timestamp"`
}

type ScoreRequest struct {
	Answers scoring.AnswerSet `json:"answers" validate:"required,min=1"`
}

type ProgressRequest struct {
	Answers scoring.AnswerSet `json:"answers"`
}

// ===== RESPONSE DTOs =====

type RegisterParticipantResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// Evaluation is a scored answer set with its suggestions and level labels
type Evaluation struct {
	Result      scoring.Result      `json:"result"`
	Suggestions scoring.Suggestions `json:"suggestions"`
	Levels      scoring.Levels      `json:"levels"`
}

type SubmitAssessmentResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
	Evaluation
}

type AssessmentReport struct {
	ID          uint        `json:"id"`
	Participant Participant `json:"participant"`
	Timestamp   time.Time   `json:"timestamp"`
	Evaluation
}

// ParticipantSummary is one row of the admin listing. Score fields are nil when the
// participant never submitted.
type ParticipantSummary struct {
	ID             uint                       `json:"id"`
	Username       string                     `json:"username"`
	Grade          string                     `json:"grade"`
	Phone          string                     `json:"phone"`
	TotalScore     *int                       `json:"totalScore"`
	ModuleScores   map[scoring.Module]float64 `json:"moduleScores"`
	UserTime       time.Time                  `json:"userTime"`
	AssessmentTime *time.Time                 `json:"assessmentTime"`
}

type AdminStats struct {
	TotalUsers       int64                      `json:"totalUsers"`
	TotalAssessments int64                      `json:"totalAssessments"`
	AverageScore     int                        `json:"averageScore"`
	ModuleAverages   map[scoring.Module]float64 `json:"moduleAverages"`
}

type ReportUserInfo struct {
	Username string `json:"username"`
	Grade    string `json:"grade"`
	Phone    string `json:"phone"`
}

// ParticipantReport is the downloadable JSON report of a participant's latest result
type ParticipantReport struct {
	UserInfo    ReportUserInfo       `json:"userInfo"`
	Results     *scoring.Result      `json:"results"`
	Levels      *scoring.Levels      `json:"levels,omitempty"`
	Suggestions *scoring.Suggestions `json:"suggestions"`
	ExportTime  time.Time            `json:"exportTime"`
}
