package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-renderer/internal/schemas"
	"github.com/jonathan/resume-renderer/internal/types"
)

// loadResumeData reads a resume JSON file, checks it against the repository
// schema, and decodes it into the data model.
func loadResumeData(path string) (*types.ResumeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchemaPath)
	if schemaPath != "" {
		if err := schemas.ValidateResumeBytes(schemaPath, raw); err != nil {
			return nil, fmt.Errorf("resume file %s: %w", path, err)
		}
	}

	var data types.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON %s: %w", path, err)
	}
	return &data, nil
}
