package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

const (
	flagTitle       = "title"
	flagDescription = "description"
	flagCategory    = "category"
	flagDue         = "due"
	flagYes         = "yes"
)

func addTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagTitle, "t", "", "Task title")
	cmd.Flags().StringP(flagDescription, "d", "", "Task description")
	cmd.Flags().StringP(flagCategory, "c", "", "Column: todo, in-progress or done")
	cmd.Flags().String(flagDue, "", "Due date as YYYY-MM-DD")
}

func newAddCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Example: `  taskboard add --title "Write report" --due 2026-05-01
  taskboard add -t "Review PR" -c in-progress`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := inputFromFlags(cmd)
			if err != nil {
				return err
			}
			s, err := env.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.Board.Create(cmd.Context(), in); err != nil {
				return err
			}
			return env.printBoard(cmd.OutOrStdout(), s)
		},
	}
	addTaskFlags(cmd)
	_ = cmd.MarkFlagRequired(flagTitle)
	return cmd
}

func newEditCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Long:  `Only the flags you pass are sent. Pass --due "" to clear the due date.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}
			s, err := env.requireSession(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.Board.Update(cmd.Context(), args[0], patch); err != nil {
				return err
			}
			return env.printBoard(cmd.OutOrStdout(), s)
		},
	}
	addTaskFlags(cmd)
	return cmd
}

func newDeleteCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := env.requireSession(cmd.Context()); err != nil {
				return err
			}

			var confirm ports.Confirmer = ports.AlwaysConfirm
			if yes, _ := cmd.Flags().GetBool(flagYes); !yes {
				confirm = newPromptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr())
			}

			deleted, err := env.Board.Remove(cmd.Context(), args[0], confirm)
			if err != nil {
				return err
			}
			if !deleted {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolP(flagYes, "y", false, "Delete without asking")
	return cmd
}

// inputFromFlags builds the task form from the add flags.
func inputFromFlags(cmd *cobra.Command) (task.Input, error) {
	title, _ := cmd.Flags().GetString(flagTitle)
	desc, _ := cmd.Flags().GetString(flagDescription)
	rawCat, _ := cmd.Flags().GetString(flagCategory)
	rawDue, _ := cmd.Flags().GetString(flagDue)

	in := task.Input{Title: title, Description: desc}
	var errs []error
	if rawCat != "" {
		c, err := task.ParseCategory(rawCat)
		errs = append(errs, err)
		in.Category = c
	}
	if rawDue != "" {
		d, err := task.ParseDueDate(rawDue)
		errs = append(errs, err)
		in.DueDate = &d
	}
	return in, errors.Join(errs...)
}

// patchFromFlags builds a patch holding only the flags the user set.
func patchFromFlags(cmd *cobra.Command) (task.Patch, error) {
	var p task.Patch
	flags := cmd.Flags()

	if flags.Changed(flagTitle) {
		v, _ := flags.GetString(flagTitle)
		p.Title = &v
	}
	if flags.Changed(flagDescription) {
		v, _ := flags.GetString(flagDescription)
		p.Description = &v
	}
	if flags.Changed(flagCategory) {
		raw, _ := flags.GetString(flagCategory)
		c, err := task.ParseCategory(raw)
		if err != nil {
			return task.Patch{}, err
		}
		p.Category = &c
	}
	if flags.Changed(flagDue) {
		raw, _ := flags.GetString(flagDue)
		if raw == "" {
			p.ClearDueDate = true
		} else {
			d, err := task.ParseDueDate(raw)
			if err != nil {
				return task.Patch{}, err
			}
			p.DueDate = &d
		}
	}

	if p.IsEmpty() {
		return task.Patch{}, &domain.ValidationError{
			Fields: map[string]string{"flags": "nothing to change"},
		}
	}
	return p, nil
}
