package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonathan/resume-renderer/internal/pdf"
	"github.com/jonathan/resume-renderer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBrowser struct {
	pdf []byte
	err error
}

func (b *stubBrowser) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	return b.pdf, b.err
}

func (b *stubBrowser) Close() error { return nil }

// newTestServer builds a server with no store and a stubbed browser launch.
func newTestServer(browser *stubBrowser) *Server {
	return &Server{
		exporter: &pdf.Exporter{
			Launch:  func(ctx context.Context) (pdf.Browser, error) { return browser, nil },
			Timeout: time.Second,
		},
	}
}

func exportBody(t *testing.T, data *types.ResumeData, templateID string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(ExportRequest{ResumeData: data, TemplateID: templateID})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func sampleResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
		},
		Summary: "A summary long enough to render meaningfully.",
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleExport_Success(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/export", exportBody(t, sampleResume(), "modern"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Jane_Doe_Resume.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestHandleExport_InvalidJSON(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/export", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec)["code"])
}

func TestHandleExport_MissingResumeData(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/export", bytes.NewBufferString(`{"templateId":"modern"}`))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeError(t, rec)["code"])
}

func TestHandleExport_EmptyResume(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/export", exportBody(t, types.NewResumeData(), "modern"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "empty_content", decodeError(t, rec)["code"])
}

func TestHandleExport_RenderTimeout(t *testing.T) {
	srv := newTestServer(&stubBrowser{err: context.DeadlineExceeded})
	srv.exporter.Timeout = 20 * time.Millisecond

	req := httptest.NewRequest("POST", "/export", exportBody(t, sampleResume(), "modern"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, "render_timeout", decodeError(t, rec)["code"])
}

func TestHandleExport_UnknownTemplateStillRenders(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/export", exportBody(t, sampleResume(), "no-such-template"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePreview_ReturnsHTML(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/preview", exportBody(t, sampleResume(), "classic"))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<!DOCTYPE html>")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
}

func TestHandlePreview_MissingResumeData(t *testing.T) {
	srv := newTestServer(&stubBrowser{pdf: []byte("%PDF-1.4 stub")})

	req := httptest.NewRequest("POST", "/preview", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListTemplates(t *testing.T) {
	srv := newTestServer(&stubBrowser{})

	req := httptest.NewRequest("GET", "/templates", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Templates []map[string]any `json:"templates"`
		Default   string           `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "modern", out.Default)
	assert.NotEmpty(t, out.Templates)

	ids := make([]string, 0, len(out.Templates))
	for _, tpl := range out.Templates {
		ids = append(ids, tpl["id"].(string))
	}
	assert.Contains(t, ids, "modern")
	assert.Contains(t, ids, "sidebar")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubBrowser{})

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeError(t, rec)["status"])
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&stubBrowser{})

	req := httptest.NewRequest("OPTIONS", "/export", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
