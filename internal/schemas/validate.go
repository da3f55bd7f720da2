// Package schemas validates resume JSON documents against the repository's
// JSON Schema before they enter the pipeline from the file boundary.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResumeSchemaPath is the repo-relative location of the resume schema.
const ResumeSchemaPath = "schemas/resume.schema.json"

// ResolveSchemaPath finds a schema file by trying common path resolutions:
// relative to the working directory, then one and two levels up. Useful when
// CLI commands and tests run from different directories. Returns "" when
// nothing matches.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations for one document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError reports a problem loading or parsing the schema itself.
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResumeBytes validates raw resume JSON against the schema at
// schemaPath. A nil return means the document conforms.
func ValidateResumeBytes(schemaPath string, data []byte) error {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Message: "failed to resolve path", Cause: err}
	}
	if _, err := os.Stat(absPath); err != nil {
		return &SchemaLoadError{Path: absPath, Message: "schema file not found", Cause: err}
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + absPath)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Path: absPath, Message: "schema validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, resErr := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return ve
}

// ValidateResumeFile validates a resume JSON file against the schema.
func ValidateResumeFile(schemaPath, jsonPath string) error {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", jsonPath, err)
	}
	return ValidateResumeBytes(schemaPath, data)
}
