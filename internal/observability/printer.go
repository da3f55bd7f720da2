// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-renderer/internal/templates"
	"github.com/jonathan/resume-renderer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a human-readable summary of a loaded resume.
func (p *Printer) PrintResumeSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	name := data.DisplayName()
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if data.PersonalInfo.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", data.PersonalInfo.Title))
	}
	if data.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", data.PersonalInfo.Email))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience entries:     %d\n", len(data.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:      %d\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Projects:               %d\n", len(data.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications:         %d\n", len(data.Certifications)))
	sb.WriteString(fmt.Sprintf("Technical skills:       %d\n", len(data.Skills.Technical)))
	sb.WriteString(fmt.Sprintf("Soft skills:            %d\n", len(data.Skills.Soft)))

	if len(data.SectionOrder) > 0 {
		keys := make([]string, 0, len(data.SectionOrder))
		for _, k := range data.SectionOrder {
			keys = append(keys, string(k))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Section order: %s\n", strings.Join(keys, ", ")))
	}

	p.printBox("RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintTemplateList outputs the registered templates.
func (p *Printer) PrintTemplateList(configs []templates.Config) {
	var sb strings.Builder

	for _, cfg := range configs {
		sb.WriteString(fmt.Sprintf("%s (%s, %s)\n", cfg.ID, cfg.Name, cfg.Layout))

		count := min(len(cfg.Features), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", cfg.Features[i]))
		}
		if len(cfg.Features) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(cfg.Features)-maxItemsToShow))
		}
	}

	p.printBox("TEMPLATES", strings.TrimRight(sb.String(), "\n"))
}

// PrintExportResult outputs the outcome of a PDF export.
func (p *Printer) PrintExportResult(filename, templateID string, byteSize int) {
	content := fmt.Sprintf("File:      %s\nTemplate:  %s\nSize:      %d bytes", filename, templateID, byteSize)
	p.printBox("EXPORT COMPLETE", content)
}
