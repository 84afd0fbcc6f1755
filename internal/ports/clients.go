package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// TaskClient defines the client port for the remote task API.
// Implemented by the ACL adapter; called by the application layer.
// Each method performs exactly one request: no retries, caching or
// coalescing. Any 2xx response is success.
type TaskClient interface {
	// ListTasks returns every task owned by userID in server order.
	ListTasks(ctx context.Context, userID string) ([]task.Task, error)

	// CreateTask creates a task tagged with its owner. The created task is
	// returned when the API echoes it back; a bodiless 2xx yields nil.
	CreateTask(ctx context.Context, t task.NewTask) (*task.Task, error)

	// UpdateTask sends the changed fields of task id, tagged with userID.
	// Returns domain.ErrNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id string, patch task.Patch, userID string) error

	// DeleteTask deletes a task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTask(ctx context.Context, id string) error

	// ReorderTasks sends the complete ordered contents of one category.
	// Every entry is tagged with userID.
	ReorderTasks(ctx context.Context, category task.Category, tasks []task.Task, userID string) error

	// ListActivities returns the activity log for userID.
	ListActivities(ctx context.Context, userID string) ([]activity.Activity, error)
}
