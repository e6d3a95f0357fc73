package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
)

// Entry kinds accepted by add, update and remove.
const (
	kindExperience = "experience"
	kindEducation  = "education"
	kindProject    = "project"
	kindSection    = "section"
	kindItem       = "item"
)

var (
	sectionID string
	moveKind  string
)

var setCmd = &cobra.Command{
	Use:   "set personal <field> <value>",
	Short: "Set a personal info field",
	Long:  "Sets one header field: fullName, jobTitle, email, phone, location, linkedin, github, portfolio or summary.",
	Args:  cobra.ExactArgs(3),
	RunE:  runSet,
}

var addCmd = &cobra.Command{
	Use:   "add experience|education|project|section <list|detailed>|item <sectionID>",
	Short: "Add an entry, custom section or section item",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update experience|education|project|section|item <id> <field> <value>",
	Short: "Set one field of an entry",
	Long:  "Sets one field of an entry, addressed by id. Items also need --section. Unknown ids change nothing.",
	Args:  cobra.ExactArgs(4),
	RunE:  runUpdate,
}

var removeCmd = &cobra.Command{
	Use:   "remove experience|education|project|section|item <id>",
	Short: "Remove an entry by id",
	Args:  cobra.ExactArgs(2),
	RunE:  runRemove,
}

var moveCmd = &cobra.Command{
	Use:   "move <index> up|down",
	Short: "Move an experience entry (or custom section) one place",
	Args:  cobra.ExactArgs(2),
	RunE:  runMove,
}

var skillsCmd = &cobra.Command{
	Use:   "skills <comma separated list>",
	Short: "Replace the skills list",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkills,
}

var formatBulletsCmd = &cobra.Command{
	Use:   "format-bullets <experienceID>",
	Short: "Turn an experience description into bullet lines",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormatBullets,
}

func init() {
	updateCmd.Flags().StringVar(&sectionID, "section", "", "Section id (for items)")
	removeCmd.Flags().StringVar(&sectionID, "section", "", "Section id (for items)")
	moveCmd.Flags().StringVar(&moveKind, "kind", kindExperience, "What to move: experience or section")

	rootCmd.AddCommand(setCmd, addCmd, updateCmd, removeCmd, moveCmd, skillsCmd, formatBulletsCmd)
}

// editResume loads the workspace, applies fn and reports success.
func editResume(cmd *cobra.Command, fn func(types.ResumeData) (types.ResumeData, error)) error {
	ws, err := loadWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	return ws.UpdateResume(cmd.Context(), fn)
}

func runSet(cmd *cobra.Command, args []string) error {
	if args[0] != "personal" {
		return fmt.Errorf("unknown record %q: only personal can be set", args[0])
	}
	field, value := args[1], args[2]
	if err := editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.UpdatePersonalInfo(r, field, value)
	}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", field)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ed := editor.New(nil)
	kind := args[0]
	arg := ""
	if len(args) > 1 {
		arg = args[1]
	}
	if (kind == kindSection || kind == kindItem) && arg == "" {
		return fmt.Errorf("add %s needs an argument", kind)
	}

	var id string
	err := editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		var err error
		switch kind {
		case kindExperience:
			r, id = ed.AddExperience(r)
		case kindEducation:
			r, id = ed.AddEducation(r)
		case kindProject:
			r, id = ed.AddProject(r)
		case kindSection:
			r, id, err = ed.AddCustomSection(r, types.CustomSectionType(arg))
		case kindItem:
			r, id = ed.AddCustomItem(r, arg)
			if id == "" {
				err = fmt.Errorf("section %q not found", arg)
			}
		default:
			err = fmt.Errorf("unknown kind %q", kind)
		}
		return r, err
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", kind, id)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	kind, id, field, value := args[0], args[1], args[2], args[3]
	if kind == kindItem && sectionID == "" {
		return fmt.Errorf("--section is required for items")
	}
	err := editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		switch kind {
		case kindExperience:
			return editor.UpdateExperience(r, id, field, value)
		case kindEducation:
			return editor.UpdateEducation(r, id, field, value)
		case kindProject:
			return editor.UpdateProject(r, id, field, value)
		case kindSection:
			return editor.UpdateCustomSection(r, id, field, value)
		case kindItem:
			return editor.UpdateCustomItem(r, sectionID, id, field, value)
		default:
			return r, fmt.Errorf("unknown kind %q", kind)
		}
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %s %s\n", kind, id, field)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	kind, id := args[0], args[1]
	if kind == kindItem && sectionID == "" {
		return fmt.Errorf("--section is required for items")
	}
	err := editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		switch kind {
		case kindExperience:
			return editor.RemoveExperience(r, id), nil
		case kindEducation:
			return editor.RemoveEducation(r, id), nil
		case kindProject:
			return editor.RemoveProject(r, id), nil
		case kindSection:
			return editor.RemoveCustomSection(r, id), nil
		case kindItem:
			return editor.RemoveCustomItem(r, sectionID, id), nil
		default:
			return r, fmt.Errorf("unknown kind %q", kind)
		}
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", kind, id)
	return nil
}

func runMove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[0], err)
	}
	dir, err := editor.ParseDirection(args[1])
	if err != nil {
		return err
	}
	err = editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		switch moveKind {
		case kindExperience:
			return editor.MoveExperience(r, index, dir), nil
		case kindSection:
			return editor.MoveCustomSection(r, index, dir), nil
		default:
			return r, fmt.Errorf("cannot move %q: must be experience or section", moveKind)
		}
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %s %d %s\n", moveKind, index, dir)
	return nil
}

func runSkills(cmd *cobra.Command, args []string) error {
	var skills []string
	if err := editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		r = editor.SetSkills(r, args[0])
		skills = r.Skills
		return r, nil
	}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Skills: %s\n", editor.JoinSkills(skills))
	return nil
}

func runFormatBullets(cmd *cobra.Command, args []string) error {
	if err := editResume(cmd, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.FormatExperienceBullets(r, args[0]), nil
	}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Formatted bullets for experience %s\n", args[0])
	return nil
}
