package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

func newMoveCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <category> <index>",
		Short: "Move a task to a position in a column",
		Long: `Drops the task at <index> (0-based, as numbered by "taskboard board")
in <category>. The board updates at once; if the server rejects the new
order the board is reloaded.`,
		Example: `  taskboard move 64f1c2 done 0
  taskboard move 64f1c2 todo 2`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := parsePosition(args[1], args[2])
			if err != nil {
				return err
			}

			s, err := env.loadBoard(cmd.Context())
			if err != nil {
				return err
			}

			id := args[0]
			_, src, found := env.Board.Board().Find(id)
			if !found {
				return fmt.Errorf("task %q: %w", id, domain.ErrNotFound)
			}

			moveErr := env.Board.Move(cmd.Context(), task.DragResult{
				TaskID:      id,
				Source:      src,
				Destination: &dest,
			})
			if err := env.printBoard(cmd.OutOrStdout(), s); err != nil {
				return err
			}
			return moveErr
		},
	}
}

func parsePosition(rawCategory, rawIndex string) (task.Position, error) {
	c, err := task.ParseCategory(rawCategory)
	if err != nil {
		return task.Position{}, err
	}
	idx, err := strconv.Atoi(rawIndex)
	if err != nil || idx < 0 {
		return task.Position{}, &domain.ValidationError{
			Fields: map[string]string{"index": "must be a non-negative integer"},
		}
	}
	return task.Position{Category: c, Index: idx}, nil
}
