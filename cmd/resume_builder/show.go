package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarize the current document",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the full document as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	if showJSON {
		out, err := json.MarshalIndent(ws.Document(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(ws.Document(), ws.Template())
	return nil
}
