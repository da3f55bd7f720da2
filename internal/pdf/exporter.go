package pdf

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-renderer/internal/rendering"
	"github.com/jonathan/resume-renderer/internal/types"
)

// DefaultRenderTimeout bounds one page-render attempt. A timed-out attempt is
// retried once, then fails with RenderTimeoutError; the pipeline never hangs.
const DefaultRenderTimeout = 60 * time.Second

// Result is a completed export: the PDF bytes plus the download filename and
// the template that actually rendered (after any fallback).
type Result struct {
	PDF        []byte
	Filename   string
	TemplateID string
	Title      string
}

// Exporter runs the compose-guard-launch-render pipeline. Each Export call
// launches its own browser and closes it on every exit path; concurrent
// calls share no state.
type Exporter struct {
	Launch  LaunchFunc
	Timeout time.Duration
	Verbose bool
}

// NewExporter returns an exporter wired to the real headless browser.
func NewExporter() *Exporter {
	return &Exporter{
		Launch:  LaunchChromium,
		Timeout: DefaultRenderTimeout,
	}
}

// Export composes the resume with the given template and renders it to PDF.
// The resume is never mutated. Failures carry one of the package's typed
// errors; see errors.go for the caller-facing taxonomy.
func (e *Exporter) Export(ctx context.Context, data *types.ResumeData, templateID string) (*Result, error) {
	doc, err := rendering.Compose(data, templateID)
	if err != nil {
		return nil, &DocumentError{Message: "failed to compose document", Cause: err}
	}

	// Guard before paying for a browser launch.
	if err := checkContent(doc.HTML); err != nil {
		return nil, err
	}

	browser, err := e.Launch(ctx)
	if err != nil {
		var be *BrowserError
		if errors.As(err, &be) {
			return nil, err
		}
		return nil, &BrowserError{Message: "failed to launch browser", Cause: err}
	}
	defer func() {
		if cerr := browser.Close(); cerr != nil {
			log.Printf("[EXPORT] browser close failed: %v", cerr)
		}
	}()

	pdfBytes, err := e.renderWithRetry(ctx, browser, doc.HTML)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(string(pdfBytes), "%PDF") {
		return nil, &BrowserError{Message: "browser returned invalid PDF output"}
	}

	result := &Result{
		PDF:        pdfBytes,
		Filename:   ExportFilename(data),
		TemplateID: doc.Template.ID,
		Title:      doc.Title,
	}
	if e.Verbose {
		log.Printf("[EXPORT] rendered %s (%d bytes, template %s)", result.Filename, len(result.PDF), result.TemplateID)
	}
	return result, nil
}

// renderWithRetry runs one render attempt under the configured timeout and
// retries exactly once when the attempt timed out. Caller cancellation is
// not retried.
func (e *Exporter) renderWithRetry(ctx context.Context, browser Browser, html string) ([]byte, error) {
	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		pdfBytes, err := browser.RenderPDF(attemptCtx, html)
		cancel()
		if err == nil {
			return pdfBytes, nil
		}
		if ctx.Err() != nil {
			return nil, &BrowserError{Message: "export canceled", Cause: ctx.Err()}
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return nil, &BrowserError{Message: "page render failed", Cause: err}
		}
		lastErr = err
		log.Printf("[EXPORT] render attempt %d timed out after %s", attempt+1, timeout)
	}
	return nil, &RenderTimeoutError{Timeout: timeout, Cause: lastErr}
}
