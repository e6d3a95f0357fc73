package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/observability"
)

var (
	exportOut        string
	exportResumeOnly bool
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace the document with an exported file",
	Long:  "Imports a package or single resume JSON file. The current document is saved as a \"Before Import\" version first; a rejected file changes nothing.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the document as JSON",
	Long:  "Writes the package (or just the resume) as indented JSON. Without --out the file is named after the person, e.g. resume-package-alex-doe.json.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path, or - for stdout (default: suggested filename)")
	exportCmd.Flags().BoolVar(&exportResumeOnly, "resume-only", false, "Export only the resume")
	rootCmd.AddCommand(importCmd, exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	res, err := ws.Import(cmd.Context(), raw)
	if err != nil {
		var ve *exchange.ValidationError
		if errors.As(err, &ve) {
			observability.NewPrinter(cmd.ErrOrStderr()).PrintImportError(ve)
			return fmt.Errorf("import rejected: %s", ve.UserMessage())
		}
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s from %s\n", res.Shape, args[0])
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	var (
		data     []byte
		filename string
	)
	if exportResumeOnly {
		data, filename, err = ws.ExportResume()
	} else {
		data, filename, err = ws.Export()
	}
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = filename
	}
	if path == "-" {
		return writeOutput(cmd.OutOrStdout(), path, append(data, '\n'))
	}
	if err := writeOutput(cmd.OutOrStdout(), path, data); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}
