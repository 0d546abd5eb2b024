package models

import (
	"time"
)

type Grade string

const (
	GradeFreshman  Grade = "大一"
	GradeSophomore Grade = "大二"
	GradeJunior    Grade = "大三"
	GradeSenior    Grade = "大四"
	GradeMaster1   Grade = "研一"
	GradeMaster2   Grade = "研二"
	GradeMaster3   Grade = "研三"
	GradeDoctor1   Grade = "博一"
	GradeDoctor2   Grade = "博二"
	GradeDoctor3   Grade = "博三"
	GradeDoctor4   Grade = "博四"
)

// Grades lists every accepted grade in display order
var Grades = []Grade{
	GradeFreshman, GradeSophomore, GradeJunior, GradeSenior,
	GradeMaster1, GradeMaster2, GradeMaster3,
	GradeDoctor1, GradeDoctor2, GradeDoctor3, GradeDoctor4,
}

func (g Grade) IsValid() bool {
	for _, grade := range Grades {
		if g == grade {
			return true
		}
	}
	return false
}

// Participant is a person who registered for the self-assessment. Phone is the natural key.
type Participant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null;size:100"`
	Grade     Grade     `json:"grade" gorm:"not null;size:20"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;not null;size:20"`
	Timestamp time.Time `json:"timestamp"` // registration time reported by the client
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Assessments []AssessmentRecord `json:"assessments,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Participant) TableName() string {
	return "users"
}
