package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// BoardService defines the service port for the task board.
// Implemented by the application layer; called by inbound adapters (CLI
// commands and HTTP handlers).
//
// Every failing operation emits exactly one error notification and returns
// the error. Successful mutations emit a success notification and refetch
// the board; they never patch the board locally.
type BoardService interface {
	// Fetch replaces the board with the server's current task list.
	// Returns domain.ErrUnauthenticated when there is no session.
	Fetch(ctx context.Context) error

	// Create validates in and creates the task for the session user.
	// Returns domain.ErrValidation if the input fails validation.
	Create(ctx context.Context, in task.Input) error

	// Update sends the changed fields of task id.
	Update(ctx context.Context, id string, patch task.Patch) error

	// Remove asks confirm before deleting task id. A declined confirmation
	// returns (false, nil) without touching the API.
	Remove(ctx context.Context, id string, confirm Confirmer) (bool, error)

	// Move applies a drag result optimistically and blocks until the
	// reorder request has finished (and, on failure, the board has been
	// resynchronized).
	Move(ctx context.Context, drag task.DragResult) error

	// MoveAsync applies a drag result optimistically and returns at once.
	// The channel yields the reorder outcome and is then closed.
	MoveAsync(ctx context.Context, drag task.DragResult) <-chan error

	// Board returns a snapshot of the current board.
	Board() task.Board

	// Subscribe registers fn for board changes and returns its
	// unsubscribe function.
	Subscribe(fn func(task.Board)) func()

	// Activities lists the activity log of the session user.
	Activities(ctx context.Context) ([]activity.Activity, error)
}
