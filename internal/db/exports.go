package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RecordExport appends one export attempt to the history.
func (db *DB) RecordExport(ctx context.Context, rec Export) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO exports (resume_id, template_id, filename, byte_size, status, error)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		rec.ResumeID, rec.TemplateID, rec.Filename, rec.ByteSize, rec.Status, rec.Error,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record export: %w", err)
	}
	return id, nil
}

// ListExports returns the export history of one stored resume, newest first.
func (db *DB) ListExports(ctx context.Context, resumeID uuid.UUID) ([]Export, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, template_id, filename, byte_size, status, error, created_at
		 FROM exports WHERE resume_id = $1
		 ORDER BY created_at DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}
	defer rows.Close()

	var out []Export
	for rows.Next() {
		var e Export
		if err := rows.Scan(&e.ID, &e.ResumeID, &e.TemplateID, &e.Filename, &e.ByteSize, &e.Status, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
