package content

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	bankSchemaPath        = "schemas/question_bank.schema.json"
	suggestionsSchemaPath = "schemas/suggestion_table.schema.json"
)

// FieldError is a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaError reports every schema violation found in a document.
type SchemaError struct {
	Document string       `json:"document"`
	Errors   []FieldError `json:"errors"`
}

func (e *SchemaError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s does not match schema:", e.Document)
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// validateAgainstSchema checks raw JSON against one of the embedded schemas.
func validateAgainstSchema(schemaPath, document string, data []byte) error {
	schemaBytes, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaPath, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate %s: %w", document, err)
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Document: document}
	for _, re := range result.Errors() {
		schemaErr.Errors = append(schemaErr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return schemaErr
}
