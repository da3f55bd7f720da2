package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-renderer/internal/db"
	"github.com/jonathan/resume-renderer/internal/rendering"
	"github.com/jonathan/resume-renderer/internal/templates"
	"github.com/jonathan/resume-renderer/internal/types"
)

// ExportRequest is the request body for /export and /preview.
type ExportRequest struct {
	ResumeData *types.ResumeData `json:"resumeData" validate:"required"`
	TemplateID string            `json:"templateId"`
}

// Validate validates the ExportRequest using the validator.
func (r *ExportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleExport renders a PDF from an inline resume payload and streams it
// back as an attachment.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "resumeData is required")
		return
	}

	s.exportAndStream(w, r, req.ResumeData, req.TemplateID, nil)
}

// handlePreview returns the composed HTML document for live preview use.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "resumeData is required")
		return
	}

	doc, err := rendering.Compose(req.ResumeData, req.TemplateID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), ErrorCode(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(doc.HTML)); err != nil {
		log.Printf("[SERVER] failed to write preview: %v", err)
	}
}

// handleListTemplates returns the template registry metadata for the picker.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": templates.List(),
		"default":   templates.DefaultTemplateID,
	})
}

// exportAndStream runs the export pipeline, records history, and streams the
// PDF. resumeID is non-nil for exports of stored resumes.
func (s *Server) exportAndStream(w http.ResponseWriter, r *http.Request, data *types.ResumeData, templateID string, resumeID *uuid.UUID) {
	result, err := s.exporter.Export(r.Context(), data, templateID)
	if err != nil {
		log.Printf("[SERVER] export failed: %v", err)
		s.recordExport(r, db.Export{
			ResumeID:   resumeID,
			TemplateID: templateID,
			Status:     db.ExportStatusFailed,
			Error:      err.Error(),
		})
		s.errorResponse(w, HTTPStatus(err), ErrorCode(err), err.Error())
		return
	}

	s.recordExport(r, db.Export{
		ResumeID:   resumeID,
		TemplateID: result.TemplateID,
		Filename:   result.Filename,
		ByteSize:   len(result.PDF),
		Status:     db.ExportStatusCompleted,
	})

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.PDF); err != nil {
		log.Printf("[SERVER] failed to stream PDF: %v", err)
	}
}

// recordExport appends to export history. Best effort: a history write
// failure never fails the export itself.
func (s *Server) recordExport(r *http.Request, rec db.Export) {
	if s.db == nil {
		return
	}
	if _, err := s.db.RecordExport(r.Context(), rec); err != nil {
		log.Printf("[SERVER] failed to record export: %v", err)
	}
}
