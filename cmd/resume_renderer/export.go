package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/pdf"
	"github.com/jonathan/resume-renderer/internal/templates"
	"github.com/jonathan/resume-renderer/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	exportInput        string
	exportTemplate     string
	exportOutput       string
	exportConfig       string
	exportVerbose      bool
	exportAllTemplates bool
	exportTimeoutSec   int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to PDF via headless browser rendering",
	Long:  `Export a resume JSON file to a paginated A4 PDF. With --all-templates, every registered template is exported concurrently into the output directory.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "Path to resume JSON file")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Template id (default: modern)")
	exportCmd.Flags().StringVar(&exportOutput, "out", "", "Output PDF path, or directory with --all-templates")
	exportCmd.Flags().StringVar(&exportConfig, "config", "", "Path to JSON config file")
	exportCmd.Flags().BoolVar(&exportVerbose, "verbose", false, "Print detailed progress information")
	exportCmd.Flags().BoolVar(&exportAllTemplates, "all-templates", false, "Export one PDF per registered template")
	exportCmd.Flags().IntVar(&exportTimeoutSec, "timeout", 0, "Per-attempt page render timeout in seconds")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(exportConfig, config.Config{
		Input:            exportInput,
		Template:         exportTemplate,
		Output:           exportOutput,
		Verbose:          exportVerbose,
		RenderTimeoutSec: exportTimeoutSec,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required")
	}
	if cfg.ChromePath != "" {
		os.Setenv("CHROME_PATH", cfg.ChromePath)
	}

	data, err := loadResumeData(cfg.Input)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintResumeSummary(data)
	}

	exporter := pdf.NewExporter()
	exporter.Verbose = cfg.Verbose
	if cfg.RenderTimeoutSec > 0 {
		exporter.Timeout = time.Duration(cfg.RenderTimeoutSec) * time.Second
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if exportAllTemplates {
		return exportAll(ctx, exporter, printer, data, cfg)
	}

	result, err := exporter.Export(ctx, data, cfg.Template)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	out := cfg.Output
	if out == "" {
		out = result.Filename
	}
	if err := os.WriteFile(out, result.PDF, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	if cfg.Verbose {
		printer.PrintExportResult(out, result.TemplateID, len(result.PDF))
	} else {
		fmt.Printf("Wrote %s (%d bytes)\n", out, len(result.PDF))
	}
	return nil
}

// exportAll renders one PDF per registered template, concurrently. Each
// export launches its own isolated browser so the only shared state is the
// read-only registry.
func exportAll(ctx context.Context, exporter *pdf.Exporter, printer *observability.Printer, data *types.ResumeData, cfg config.Config) error {
	outDir := cfg.Output
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	g, gCtx := errgroup.WithContext(ctx)
	for _, tpl := range templates.List() {
		g.Go(func() error {
			result, err := exporter.Export(gCtx, data, tpl.ID)
			if err != nil {
				return fmt.Errorf("template %s: %w", tpl.ID, err)
			}
			out := filepath.Join(outDir, tpl.ID+".pdf")
			if err := os.WriteFile(out, result.PDF, 0o644); err != nil {
				return fmt.Errorf("template %s: failed to write %s: %w", tpl.ID, out, err)
			}
			if cfg.Verbose {
				printer.PrintExportResult(out, result.TemplateID, len(result.PDF))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Wrote %d PDFs to %s\n", len(templates.List()), outDir)
	return nil
}
