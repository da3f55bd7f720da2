// Package main provides the entry point for the resume renderer CLI and
// HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_renderer",
	Short: "Resume rendering and PDF export service",
	Long:  "Resume renderer composes structured resume data through pluggable visual templates and exports print-faithful PDFs via headless browser rendering, as a CLI or a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
