package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/rendering"
	"github.com/spf13/cobra"
)

var (
	renderInput    string
	renderTemplate string
	renderOutput   string
	renderConfig   string
	renderVerbose  bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compose a resume into a self-contained HTML document",
	Long:  `Render a resume JSON file through a template and write the composed HTML document, the same document the export pipeline feeds to the headless browser.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "Path to resume JSON file")
	renderCmd.Flags().StringVar(&renderTemplate, "template", "", "Template id (default: modern)")
	renderCmd.Flags().StringVar(&renderOutput, "out", "", "Output HTML path (default: stdout)")
	renderCmd.Flags().StringVar(&renderConfig, "config", "", "Path to JSON config file")
	renderCmd.Flags().BoolVar(&renderVerbose, "verbose", false, "Print detailed progress information")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(renderConfig, config.Config{
		Input:    renderInput,
		Template: renderTemplate,
		Output:   renderOutput,
		Verbose:  renderVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required")
	}

	data, err := loadResumeData(cfg.Input)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintResumeSummary(data)
	}

	doc, err := rendering.Compose(data, cfg.Template)
	if err != nil {
		return fmt.Errorf("failed to compose document: %w", err)
	}

	if cfg.Output == "" {
		fmt.Println(doc.HTML)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(doc.HTML), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	fmt.Printf("Wrote %s (template %s)\n", cfg.Output, doc.Template.ID)
	return nil
}

// resolveConfig merges CLI flag values over an optional JSON config file.
func resolveConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		return flags, nil
	}
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return flags.MergeWithDefaults(*fileCfg), nil
}
