package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	previewTemplate    string
	previewCoverLetter bool
	previewStyle       string
	previewWidth       int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the document in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Template (default: active)")
	previewCmd.Flags().BoolVar(&previewCoverLetter, "cover-letter", false, "Preview the cover letter")
	previewCmd.Flags().StringVar(&previewStyle, "style", "auto", "Glamour style: auto, dark, light, notty")
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "Word wrap width")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	id := ws.Template()
	if previewTemplate != "" {
		if id, err = types.ParseTemplateID(previewTemplate); err != nil {
			return err
		}
	}
	md, err := renderAs(ws.Document(), documentFor(previewCoverLetter), id, "markdown", false)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}

	style := glamour.WithAutoStyle()
	if previewStyle != "auto" {
		style = glamour.WithStandardStyle(previewStyle)
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(previewWidth))
	if err != nil {
		return fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := renderer.Render(string(md))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
