package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
	"gorm.io/datatypes"
)

// AssessmentRecord is one scored submission. Module scores and answers are kept as JSON columns.
type AssessmentRecord struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	TotalScore   int            `json:"total_score" gorm:"not null"`
	ModuleScores datatypes.JSON `json:"module_scores" gorm:"not null"`
	Answers      datatypes.JSON `json:"answers" gorm:"not null"`
	Timestamp    time.Time      `json:"timestamp" gorm:"index"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (AssessmentRecord) TableName() string {
	return "assessments"
}

// NewAssessmentRecord serializes a scoring result for persistence
func NewAssessmentRecord(userID uint, result scoring.Result, submittedAt time.Time) (*AssessmentRecord, error) {
	moduleScores, err := json.Marshal(result.ModuleScores)
	if err != nil {
		return nil, fmt.Errorf("failed to encode module scores: %w", err)
	}
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}

	return &AssessmentRecord{
		UserID:       userID,
		TotalScore:   result.TotalScore,
		ModuleScores: datatypes.JSON(moduleScores),
		Answers:      datatypes.JSON(answers),
		Timestamp:    submittedAt,
	}, nil
}

// Result decodes the stored JSON columns back into a scoring result
func (r *AssessmentRecord) Result() (scoring.Result, error) {
	result := scoring.Result{TotalScore: r.TotalScore}
	if err := json.Unmarshal(r.ModuleScores, &result.ModuleScores); err != nil {
		return scoring.Result{}, fmt.Errorf("failed to decode module scores of assessment %d: %w", r.ID, err)
	}
	if len(r.Answers) > 0 {
		if err := json.Unmarshal(r.Answers, &result.Answers); err != nil {
			return scoring.Result{}, fmt.Errorf("failed to decode answers of assessment %d: %w", r.ID, err)
		}
	}
	return result, nil
}
