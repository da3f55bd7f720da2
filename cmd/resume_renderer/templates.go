package main

import (
	"os"

	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the registered resume templates",
	RunE: func(_ *cobra.Command, _ []string) error {
		observability.NewPrinter(os.Stdout).PrintTemplateList(templates.List())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
