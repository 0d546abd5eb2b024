package services

import (
	"errors"

	apperrors "github.com/SAP-F-2025/employability-assessment/internal/errors"
	"github.com/SAP-F-2025/employability-assessment/internal/scoring"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Participant specific errors
	ErrParticipantNotFound = errors.New("用户不存在")
	ErrDuplicatePhone      = errors.New("该手机号已参与测评")

	// Assessment specific errors
	ErrAssessmentNotFound   = errors.New("测评结果不存在")
	ErrIncompleteSubmission = errors.New("数据不完整")
)

// Field-level errors shared with the handlers
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// ===== ERROR HELPERS =====

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrParticipantNotFound) ||
		errors.Is(err, ErrAssessmentNotFound)
}

// IsValidation checks if error represents a validation failure, including answer sets
// that cannot be scored against the question bank
func IsValidation(err error) bool {
	if errors.Is(err, ErrIncompleteSubmission) ||
		errors.Is(err, scoring.ErrMissingAnswer) ||
		errors.Is(err, scoring.ErrInvalidOptionIndex) ||
		errors.Is(err, scoring.ErrUnknownQuestion) {
		return true
	}
	var ve apperrors.ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a resource conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicatePhone)
}
