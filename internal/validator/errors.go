package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SAP-F-2025/employability-assessment/internal/errors"
	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/go-playground/validator/v10"
)

type ValidationError = errors.ValidationError
type ValidationErrors = errors.ValidationErrors

// ToValidationErrors converts validator failures into API field errors. Any other error
// yields an empty result.
func ToValidationErrors(err error) ValidationErrors {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return nil
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Map {
			return fmt.Sprintf("must contain at least %s answer(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "notblank":
		return "must not be blank"
	case "cn_phone":
		return "must be a valid 11-digit mainland mobile number"
	case "grade":
		return fmt.Sprintf("must be one of: %s", strings.Join(gradeNames(), ", "))
	default:
		return fmt.Sprintf("validation failed for rule '%s'", fe.Tag())
	}
}

func gradeNames() []string {
	names := make([]string, len(models.Grades))
	for i, g := range models.Grades {
		names[i] = string(g)
	}
	return names
}
