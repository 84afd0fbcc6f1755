// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard/internal/platform/observable"
	"github.com/jsamuelsen11/taskboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Compile-time check that BoardController implements ports.BoardService.
var _ ports.BoardService = (*BoardController)(nil)

// User-visible notification texts.
const (
	MsgFetchFailed      = "Failed to fetch tasks"
	MsgCreated          = "Task created successfully"
	MsgCreateFailed     = "Failed to create task"
	MsgUpdated          = "Task updated successfully"
	MsgUpdateFailed     = "Failed to update task"
	MsgDeleted          = "Task deleted successfully"
	MsgDeleteFailed     = "Failed to delete task"
	MsgReorderFailed    = "Failed to reorder tasks"
	MsgActivitiesFailed = "Failed to fetch activities"

	// DeletePrompt is the question asked before a task is deleted.
	DeletePrompt = "Are you sure you want to delete this task?"
)

// Reorder outcomes recorded on the reorder counter.
const (
	reorderApplied  = "applied"
	reorderReverted = "reverted"
	reorderNoop     = "noop"
	reorderRejected = "rejected"
)

// BoardController implements ports.BoardService. It owns the board state
// and drives the task API through the TaskClient port.
//
// Successful mutations never patch the board locally; they refetch it.
// Reorders are the exception: the moved board is applied before the request
// is sent and replaced by a refetch if the request fails.
type BoardController struct {
	client   ports.TaskClient
	sessions ports.SessionSource
	notifier ports.Notifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	board *observable.Value[task.Board]

	// inflight tracks reorder sends and session-triggered fetches.
	inflight sync.WaitGroup

	boundMu   sync.Mutex
	boundUser string
}

// NewBoardController creates a BoardController. metrics may be nil.
func NewBoardController(
	client ports.TaskClient,
	sessions ports.SessionSource,
	notifier ports.Notifier,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *BoardController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &BoardController{
		client:   client,
		sessions: sessions,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		board:    observable.New(task.NewBoard()),
	}
}

// Board returns a snapshot of the current board.
func (c *BoardController) Board() task.Board {
	return c.board.Get()
}

// Subscribe registers fn for board changes.
func (c *BoardController) Subscribe(fn func(task.Board)) func() {
	return c.board.Subscribe(fn)
}

// Bind follows the session source: a newly authenticated user triggers a
// fetch in the background, and signing out clears the board. The returned
// function stops following.
func (c *BoardController) Bind(ctx context.Context) func() {
	unsubscribe := c.sessions.Subscribe(func(st session.State) {
		c.onSessionChange(ctx, st)
	})
	c.onSessionChange(ctx, c.sessions.State())
	return unsubscribe
}

// Wait blocks until background reorder sends and fetches have finished.
func (c *BoardController) Wait() {
	c.inflight.Wait()
}

// Fetch lists the session user's tasks and replaces the board wholesale.
// On failure the board is left as it was.
func (c *BoardController) Fetch(ctx context.Context) error {
	s, err := c.requireSession(ctx, "Fetch", MsgFetchFailed)
	if err != nil {
		return err
	}

	tasks, err := c.client.ListTasks(ctx, s.UserID)
	if err != nil {
		c.log(ctx).ErrorContext(ctx, "failed to fetch tasks",
			slog.String("operation", "Fetch"),
			slog.String("user_id", s.UserID),
			slog.Any("error", err),
		)
		c.notifier.Error(ctx, MsgFetchFailed)
		return err
	}

	board, rejected := task.Group(tasks)
	for _, t := range rejected {
		c.log(ctx).WarnContext(ctx, "task with unknown category left off the board",
			slog.String("task_id", t.ID),
			slog.String("category", t.Category.String()),
		)
	}

	c.board.Set(board)
	c.log(ctx).DebugContext(ctx, "board fetched", slog.Int("tasks", board.Len()))
	return nil
}

// Create validates in and creates a task owned by the session user. The
// board is refetched on success.
func (c *BoardController) Create(ctx context.Context, in task.Input) error {
	s, err := c.requireSession(ctx, "Create", MsgCreateFailed)
	if err != nil {
		return err
	}

	in.Normalize()
	if err := in.Validate(); err != nil {
		c.notifier.Error(ctx, MsgCreateFailed)
		return err
	}

	c.log(ctx).InfoContext(ctx, "creating task", slog.String("category", in.Category.String()))

	_, err = c.client.CreateTask(ctx, task.NewTask{
		Input:      in,
		OwnerID:    s.UserID,
		OwnerEmail: s.Email,
	})
	c.recordMutation(ctx, "create", err)
	if err != nil {
		c.log(ctx).ErrorContext(ctx, "failed to create task",
			slog.String("operation", "Create"),
			slog.String("user_id", s.UserID),
			slog.Any("error", err),
		)
		c.notifier.Error(ctx, MsgCreateFailed)
		return err
	}

	c.notifier.Success(ctx, MsgCreated)
	c.refetch(ctx)
	return nil
}

// Update sends the changed fields of task id. The board is refetched on
// success.
func (c *BoardController) Update(ctx context.Context, id string, patch task.Patch) error {
	s, err := c.requireSession(ctx, "Update", MsgUpdateFailed)
	if err != nil {
		return err
	}

	if err := patch.Validate(); err != nil {
		c.notifier.Error(ctx, MsgUpdateFailed)
		return err
	}

	c.log(ctx).InfoContext(ctx, "updating task", slog.String("task_id", id))

	err = c.client.UpdateTask(ctx, id, patch, s.UserID)
	c.recordMutation(ctx, "update", err)
	if err != nil {
		c.log(ctx).ErrorContext(ctx, "failed to update task",
			slog.String("operation", "Update"),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		c.notifier.Error(ctx, MsgUpdateFailed)
		return err
	}

	c.notifier.Success(ctx, MsgUpdated)
	c.refetch(ctx)
	return nil
}

// Remove asks confirm before deleting task id. A declined confirmation
// returns (false, nil) and sends nothing. A confirmer error is returned
// without a notification.
func (c *BoardController) Remove(ctx context.Context, id string, confirm ports.Confirmer) (bool, error) {
	if confirm == nil {
		return false, domain.ErrNotConfirmed
	}

	ok, err := confirm.Confirm(ctx, DeletePrompt)
	if err != nil {
		return false, fmt.Errorf("confirming delete: %w", err)
	}
	if !ok {
		c.log(ctx).DebugContext(ctx, "delete declined", slog.String("task_id", id))
		return false, nil
	}

	if _, err := c.requireSession(ctx, "Remove", MsgDeleteFailed); err != nil {
		return false, err
	}

	c.log(ctx).InfoContext(ctx, "deleting task", slog.String("task_id", id))

	err = c.client.DeleteTask(ctx, id)
	c.recordMutation(ctx, "delete", err)
	if err != nil {
		c.log(ctx).ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "Remove"),
			slog.String("task_id", id),
			slog.Any("error", err),
		)
		c.notifier.Error(ctx, MsgDeleteFailed)
		return false, err
	}

	c.notifier.Success(ctx, MsgDeleted)
	c.refetch(ctx)
	return true, nil
}

// Move applies drag and waits for the reorder request. If ctx ends first,
// Move returns ctx.Err() and the request carries on in the background.
func (c *BoardController) Move(ctx context.Context, drag task.DragResult) error {
	done := c.MoveAsync(ctx, drag)
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// MoveAsync applies drag to the board at once and sends the destination
// column to the task API on a separate goroutine. The returned channel
// yields the outcome and is then closed; a cancelled drop (nil
// Destination) closes it without a value.
//
// The send is detached from ctx cancellation so that a reorder started by a
// short-lived request still completes.
func (c *BoardController) MoveAsync(ctx context.Context, drag task.DragResult) <-chan error {
	out := make(chan error, 1)

	if drag.Destination == nil {
		c.recordReorder(ctx, reorderNoop, "")
		close(out)
		return out
	}
	dest := *drag.Destination

	s, err := c.requireSession(ctx, "Move", MsgReorderFailed)
	if err != nil {
		out <- err
		close(out)
		return out
	}

	var column []task.Task
	err = c.board.Update(func(b *task.Board) error {
		if drag.TaskID != "" {
			if _, pos, found := b.Find(drag.TaskID); !found || pos != drag.Source {
				return fmt.Errorf("task %q is not at %s[%d]: %w", drag.TaskID, drag.Source.Category, drag.Source.Index, domain.ErrConflict)
			}
		}
		next, err := b.Move(drag.Source, dest)
		if err != nil {
			return err
		}
		*b = next
		column = next.Column(dest.Category)
		return nil
	})
	if err != nil {
		c.log(ctx).WarnContext(ctx, "reorder rejected",
			slog.String("operation", "Move"),
			slog.String("task_id", drag.TaskID),
			slog.Any("error", err),
		)
		c.recordReorder(ctx, reorderRejected, dest.Category)
		c.notifier.Error(ctx, MsgReorderFailed)
		out <- err
		close(out)
		return out
	}

	sendCtx := context.WithoutCancel(ctx)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		defer close(out)
		out <- c.sendReorder(sendCtx, dest.Category, column, s.UserID)
	}()

	return out
}

// Activities lists the activity log of the session user.
func (c *BoardController) Activities(ctx context.Context) ([]activity.Activity, error) {
	s, err := c.requireSession(ctx, "Activities", MsgActivitiesFailed)
	if err != nil {
		return nil, err
	}

	records, err := c.client.ListActivities(ctx, s.UserID)
	if err != nil {
		c.log(ctx).ErrorContext(ctx, "failed to list activities",
			slog.String("operation", "Activities"),
			slog.String("user_id", s.UserID),
			slog.Any("error", err),
		)
		c.notifier.Error(ctx, MsgActivitiesFailed)
		return nil, err
	}
	return records, nil
}

func (c *BoardController) sendReorder(ctx context.Context, category task.Category, column []task.Task, userID string) error {
	err := c.client.ReorderTasks(ctx, category, column, userID)
	if err == nil {
		c.recordReorder(ctx, reorderApplied, category)
		return nil
	}

	c.log(ctx).ErrorContext(ctx, "failed to reorder tasks",
		slog.String("operation", "Move"),
		slog.String("category", category.String()),
		slog.Any("error", err),
	)
	c.recordReorder(ctx, reorderReverted, category)
	c.notifier.Error(ctx, MsgReorderFailed)

	// The optimistic board is discarded by the refetch. A failed refetch
	// reports itself.
	_ = c.Fetch(ctx)
	return err
}

// log prefers the request-scoped logger carried by ctx.
func (c *BoardController) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, c.logger)
}

// refetch reloads the board after a successful mutation. Its failure is
// notified by Fetch and does not fail the mutation.
func (c *BoardController) refetch(ctx context.Context) {
	_ = c.Fetch(ctx)
}

func (c *BoardController) requireSession(ctx context.Context, op, failMsg string) (*session.Session, error) {
	s, ok := c.sessions.Current()
	if ok {
		return s, nil
	}
	c.log(ctx).WarnContext(ctx, "no active session", slog.String("operation", op))
	c.notifier.Error(ctx, failMsg)
	return nil, domain.ErrUnauthenticated
}

func (c *BoardController) onSessionChange(ctx context.Context, st session.State) {
	if st.Loading {
		return
	}

	c.boundMu.Lock()
	defer c.boundMu.Unlock()

	if st.Session == nil {
		if c.boundUser != "" {
			c.boundUser = ""
			c.board.Set(task.NewBoard())
		}
		return
	}
	if st.Session.UserID == c.boundUser {
		return
	}

	c.boundUser = st.Session.UserID
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		_ = c.Fetch(ctx)
	}()
}

func (c *BoardController) recordMutation(ctx context.Context, op string, err error) {
	if c.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
		if errors.Is(err, domain.ErrValidation) {
			result = "invalid"
		}
	}
	c.metrics.TaskMutationTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	))
}

func (c *BoardController) recordReorder(ctx context.Context, result string, category task.Category) {
	if c.metrics == nil {
		return
	}
	c.metrics.ReorderTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrResult.String(result),
		telemetry.AttrCategory.String(category.String()),
	))
}
