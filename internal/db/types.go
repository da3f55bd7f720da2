package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resume is a stored resume document. Data holds the raw ResumeData JSON;
// the store treats it as opaque and the pipeline decodes it at the boundary.
type Resume struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Export status constants.
const (
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// Export records one export attempt. ResumeID is nil for exports of inline
// payloads that were never stored.
type Export struct {
	ID         uuid.UUID  `json:"id"`
	ResumeID   *uuid.UUID `json:"resume_id,omitempty"`
	TemplateID string     `json:"template_id"`
	Filename   string     `json:"filename"`
	ByteSize   int        `json:"byte_size"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
