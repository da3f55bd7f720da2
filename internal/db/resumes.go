package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores a new resume document and returns it.
func (db *DB) CreateResume(ctx context.Context, userID *uuid.UUID, title string, data json.RawMessage) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, data)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, data, created_at, updated_at`,
		userID, title, data,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Data, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &r, nil
}

// GetResume fetches a resume by id. Returns (nil, nil) when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, data, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Data, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// UpdateResume replaces the title and document of a stored resume. Returns
// (nil, nil) when the resume does not exist.
func (db *DB) UpdateResume(ctx context.Context, id uuid.UUID, title string, data json.RawMessage) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`UPDATE resumes SET title = $1, data = $2, updated_at = NOW()
		 WHERE id = $3
		 RETURNING id, user_id, title, data, created_at, updated_at`,
		title, data, id,
	).Scan(&r.ID, &r.UserID, &r.Title, &r.Data, &r.CreatedAt, &r.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return &r, nil
}

// DeleteResume removes a stored resume. Reports whether a row was deleted.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListResumes returns stored resumes, newest first, optionally filtered by
// owner.
func (db *DB) ListResumes(ctx context.Context, userID *uuid.UUID, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, data, created_at, updated_at
		 FROM resumes
		 WHERE ($1::uuid IS NULL OR user_id = $1)
		 ORDER BY updated_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.Data, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
