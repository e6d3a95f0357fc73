package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	printOut         string
	printTemplate    string
	printCoverLetter bool
	printTimeout     time.Duration
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the document to an A4 PDF with headless Chrome",
	Long:  "Renders the print layout and prints it to PDF. Chrome is found on PATH or through chrome_path / CHROME_PATH.",
	Args:  cobra.NoArgs,
	RunE:  runPrint,
}

func init() {
	printCmd.Flags().StringVarP(&printOut, "out", "o", "", "Output PDF path (required)")
	printCmd.Flags().StringVarP(&printTemplate, "template", "t", "", "Template (default: active)")
	printCmd.Flags().BoolVar(&printCoverLetter, "cover-letter", false, "Print the cover letter")
	printCmd.Flags().DurationVar(&printTimeout, "timeout", printing.DefaultTimeout, "Give up after this long")
	_ = printCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(printCmd)
}

// newPrinter returns a printer for the configured browser, or an error when
// none can be found.
func newPrinter() (*printing.Printer, error) {
	chrome, ok := printing.FindChrome(app.cfg.ChromePath)
	if !ok {
		return nil, fmt.Errorf("no Chrome or Chromium found: install one or set %s", config.EnvChromePath)
	}
	return printing.NewPrinter(app.logger, printing.WithChromePath(chrome), printing.WithTimeout(printTimeout)), nil
}

func runPrint(cmd *cobra.Command, _ []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	id := ws.Template()
	if printTemplate != "" {
		if id, err = types.ParseTemplateID(printTemplate); err != nil {
			return err
		}
	}
	printer, err := newPrinter()
	if err != nil {
		return err
	}

	which := documentFor(printCoverLetter)
	page, err := renderAs(ws.Document(), which, id, "html", true)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", which, err)
	}
	pdf, err := printer.PrintPDF(cmd.Context(), page)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), printOut, pdf); err != nil {
		return err
	}

	pages, err := printing.PageCount(pdf)
	if err != nil {
		return fmt.Errorf("failed to count pages: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Printed %s (%s, %d page(s)) to %s\n", which, id, pages, printOut)
	return nil
}
