package pdf

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-renderer/internal/types"
)

// FallbackFilename is used when a resume carries no usable name.
const FallbackFilename = "resume.pdf"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ExportFilename derives the download filename from the resume's name:
// "Jane_Doe_Resume.pdf", sanitized to filesystem- and header-safe characters.
func ExportFilename(data *types.ResumeData) string {
	if data == nil {
		return FallbackFilename
	}
	name := sanitizeFilename(data.DisplayName())
	if name == "" {
		return FallbackFilename
	}
	return name + "_Resume.pdf"
}

// sanitizeFilename maps arbitrary user text onto [A-Za-z0-9._-], collapsing
// runs of anything else into single underscores.
func sanitizeFilename(raw string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(raw), "_")
	return strings.Trim(cleaned, "._-")
}
