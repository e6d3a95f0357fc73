// Package main provides the resume_builder CLI: edit, version, render and
// serve a resume and cover letter package.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume and cover letter builder",
	Long: `resume_builder edits a resume and cover letter package, keeps a version
history of it, renders it in three templates (classic, modern, minimal) and
prints it to PDF. The package is persisted after every change.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
