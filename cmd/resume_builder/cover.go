package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
)

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Edit the cover letter",
}

var coverSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a cover letter field",
	Long:  "Sets date, salutation, closing, or a recipient field: recipient.name, recipient.title, recipient.company, recipient.address.",
	Args:  cobra.ExactArgs(2),
	RunE:  runCoverSet,
}

var coverParagraphCmd = &cobra.Command{
	Use:   "paragraph add | set <index> <text> | remove <index>",
	Short: "Add, replace or remove a body paragraph",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  runCoverParagraph,
}

func init() {
	coverCmd.AddCommand(coverSetCmd, coverParagraphCmd)
	rootCmd.AddCommand(coverCmd)
}

func editCoverLetter(cmd *cobra.Command, fn func(types.CoverLetterData) (types.CoverLetterData, error)) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	return ws.UpdateCoverLetter(cmd.Context(), fn)
}

func runCoverSet(cmd *cobra.Command, args []string) error {
	if err := editCoverLetter(cmd, func(c types.CoverLetterData) (types.CoverLetterData, error) {
		return editor.UpdateCoverLetter(c, args[0], args[1])
	}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated cover letter %s\n", args[0])
	return nil
}

func runCoverParagraph(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch args[0] {
	case "add":
		var index int
		if err := editCoverLetter(cmd, func(c types.CoverLetterData) (types.CoverLetterData, error) {
			c = editor.AddParagraph(c)
			index = len(c.Paragraphs) - 1
			return c, nil
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Added paragraph %d\n", index)
		return nil
	case "set":
		if len(args) != 3 {
			return fmt.Errorf("usage: cover paragraph set <index> <text>")
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		if err := editCoverLetter(cmd, func(c types.CoverLetterData) (types.CoverLetterData, error) {
			return editor.UpdateParagraph(c, index, args[2]), nil
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Updated paragraph %d\n", index)
		return nil
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: cover paragraph remove <index>")
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		if err := editCoverLetter(cmd, func(c types.CoverLetterData) (types.CoverLetterData, error) {
			return editor.RemoveParagraph(c, index), nil
		}); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Removed paragraph %d\n", index)
		return nil
	default:
		return fmt.Errorf("unknown paragraph action %q: must be add, set or remove", args[0])
	}
}
