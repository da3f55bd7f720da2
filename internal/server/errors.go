package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-renderer/internal/pdf"
	"github.com/jonathan/resume-renderer/internal/rendering"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var (
		browserErr *pdf.BrowserError
		timeoutErr *pdf.RenderTimeoutError
		emptyErr   *pdf.EmptyContentError
		docErr     *pdf.DocumentError
		composeErr *rendering.ComposeError
		valErr     *ErrValidation
	)
	switch {
	case errors.As(err, &timeoutErr):
		return http.StatusGatewayTimeout
	case errors.As(err, &emptyErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &composeErr), errors.As(err, &valErr):
		return http.StatusBadRequest
	case errors.As(err, &browserErr), errors.As(err, &docErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the machine-readable category for a pipeline error so
// clients can distinguish "try again" from "contact support".
func ErrorCode(err error) string {
	var (
		browserErr *pdf.BrowserError
		timeoutErr *pdf.RenderTimeoutError
		emptyErr   *pdf.EmptyContentError
		docErr     *pdf.DocumentError
		composeErr *rendering.ComposeError
		valErr     *ErrValidation
	)
	switch {
	case errors.As(err, &timeoutErr):
		return "render_timeout"
	case errors.As(err, &emptyErr):
		return "empty_content"
	case errors.As(err, &composeErr), errors.As(err, &valErr):
		return "invalid_request"
	case errors.As(err, &browserErr):
		return "browser_unavailable"
	case errors.As(err, &docErr):
		return "document_generation_failed"
	default:
		return "export_failed"
	}
}
