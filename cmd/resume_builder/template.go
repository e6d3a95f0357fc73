package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/types"
)

var templateCmd = &cobra.Command{
	Use:   "template [classic|modern|minimal]",
	Short: "Show or change the active template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)
}

func runTemplate(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) == 1 {
		id, err := types.ParseTemplateID(args[0])
		if err != nil {
			return err
		}
		if err := ws.SetTemplate(cmd.Context(), id); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Template set to %s\n", id.Name())
		return nil
	}

	active := ws.Template()
	for _, t := range types.Templates {
		marker := " "
		if t.ID == active {
			marker = "*"
		}
		_, _ = fmt.Fprintf(out, "%s %-8s %s\n", marker, t.ID, t.Name)
	}
	return nil
}
