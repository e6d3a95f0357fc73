package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var historyYes bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, save and restore versions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved versions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved version",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historySnapshotCmd = &cobra.Command{
	Use:   "snapshot [label]",
	Short: "Save the current document as a version",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistorySnapshot,
}

var historyRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Replace the document with a saved version",
	Long:  "Replaces the current document with a saved version. The current document is saved as an Auto-save version first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRestore,
}

var historyLoadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Open a saved version for editing",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryLoad,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved version",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved version",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	for _, c := range []*cobra.Command{historyRestoreCmd, historyLoadCmd, historyDeleteCmd, historyClearCmd} {
		c.Flags().BoolVarP(&historyYes, "yes", "y", false, "Do not ask for confirmation")
	}
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historySnapshotCmd,
		historyRestoreCmd, historyLoadCmd, historyDeleteCmd, historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintHistory(ws.History())
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	v, ok := ws.Version(args[0])
	if !ok {
		return fmt.Errorf("version %q not found", args[0])
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintVersion(v)
	return nil
}

func runHistorySnapshot(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	label := ""
	if len(args) > 0 {
		label = args[0]
	}
	v := ws.Snapshot(cmd.Context(), label)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved version %s (%s)\n", v.ID, v.Label)
	return nil
}

func runHistoryRestore(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	if _, ok := ws.Version(args[0]); !ok {
		return fmt.Errorf("version %q not found", args[0])
	}
	if !confirm(cmd, historyYes, "Restore this version? Current changes are saved as Auto-save first.") {
		return cancelled(cmd)
	}
	if err := ws.Restore(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored version %s\n", args[0])
	return nil
}

func runHistoryLoad(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	if _, ok := ws.Version(args[0]); !ok {
		return fmt.Errorf("version %q not found", args[0])
	}
	if !confirm(cmd, historyYes, "Load this version? Current changes are saved as Auto-save first.") {
		return cancelled(cmd)
	}
	if err := ws.LoadVersion(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded version %s\n", args[0])
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	if !confirm(cmd, historyYes, "Delete this version permanently?") {
		return cancelled(cmd)
	}
	ws.DeleteVersion(cmd.Context(), args[0])
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted version %s\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	if !confirm(cmd, historyYes, "Delete all saved versions? This cannot be undone.") {
		return cancelled(cmd)
	}
	ws.ClearHistory(cmd.Context())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
	return nil
}
