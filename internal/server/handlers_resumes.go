package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/resume-renderer/internal/types"
)

// ResumeRequest is the request body for creating or updating a stored resume.
type ResumeRequest struct {
	Title      string            `json:"title"`
	UserID     string            `json:"userId,omitempty" validate:"omitempty,uuid"`
	ResumeData *types.ResumeData `json:"resumeData" validate:"required"`
}

// Validate validates the ResumeRequest using the validator.
func (r *ResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleCreateResume stores a new resume document.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		uid, err := uuid.Parse(req.UserID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid userId")
			return
		}
		userID = &uid
	}

	data, err := json.Marshal(req.ResumeData)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to encode resume data")
		return
	}

	title := req.Title
	if title == "" {
		title = req.ResumeData.DisplayName()
	}

	resume, err := s.db.CreateResume(r.Context(), userID, title, data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to store resume: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleGetResume fetches one stored resume.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to fetch resume: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "not_found", "Resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a stored resume document.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	data, err := json.Marshal(req.ResumeData)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to encode resume data")
		return
	}

	title := req.Title
	if title == "" {
		title = req.ResumeData.DisplayName()
	}

	resume, err := s.db.UpdateResume(r.Context(), id, title, data)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to update resume: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "not_found", "Resume not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes a stored resume.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to delete resume: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "not_found", "Resume not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleListResumes lists stored resumes, optionally filtered by user_id.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	var userID *uuid.UUID
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		uid, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid user_id")
			return
		}
		userID = &uid
	}

	resumes, err := s.db.ListResumes(r.Context(), userID, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to list resumes: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleExportStored renders a PDF from a stored resume. The template id
// comes from the query string and falls back like inline exports do.
func (s *Server) handleExportStored(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to fetch resume: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "not_found", "Resume not found")
		return
	}

	var data types.ResumeData
	if err := json.Unmarshal(resume.Data, &data); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Stored resume data is corrupt: "+err.Error())
		return
	}

	s.exportAndStream(w, r, &data, r.URL.Query().Get("template"), &resume.ID)
}

// handleListResumeExports returns the export history of a stored resume.
func (s *Server) handleListResumeExports(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	exports, err := s.db.ListExports(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "store_failed", "Failed to list exports: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"exports": exports})
}

// pathUUID parses the {name} path segment as a UUID, writing the error
// response itself when parsing fails.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
