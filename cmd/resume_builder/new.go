package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var newYes bool

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Replace the document with the starter template",
	Long:  "Resets the resume and cover letter to the built-in starter content. The current document is kept in history first.",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func init() {
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	ws, err := loadWorkspace(ctx)
	if err != nil {
		return err
	}
	if !confirm(cmd, newYes, "Start a new document? Current changes are saved to history first.") {
		return cancelled(cmd)
	}
	v := ws.NewDocument(ctx)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started a new document (previous version saved as %s)\n", v.ID)
	return nil
}
