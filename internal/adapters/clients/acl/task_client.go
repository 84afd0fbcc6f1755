package acl

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	activityacl "github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/activity"
	taskacl "github.com/jsamuelsen11/taskboard/internal/adapters/clients/acl/task"
	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/taskboard/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskClient = (*TaskClient)(nil)

// errMissingID guards path construction; an empty id would address the
// collection instead of a task.
var errMissingID = errors.New("task id must not be empty")

// TaskClient is the outbound adapter for the remote task API. It
// implements [ports.TaskClient].
//
// All methods translate between domain types and the API's documents via
// the ACL translators in sub-packages [taskacl] and [activityacl]. HTTP
// errors are mapped to domain errors (ErrNotFound, ErrValidation, etc.) by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, OpenTelemetry tracing, and health checking for every outbound
// call. Nothing is retried.
type TaskClient struct {
	req    *Requester
	health *httpclient.Client
	logger *slog.Logger
}

// NewTaskClient creates a TaskClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point at the API root
// (e.g. "http://localhost:5000/api").
func NewTaskClient(client *httpclient.Client, logger *slog.Logger) *TaskClient {
	return &TaskClient{
		req:    NewRequester(client, logger),
		health: client,
		logger: logger,
	}
}

// ListTasks fetches GET /tasks?userId={userID}.
func (c *TaskClient) ListTasks(ctx context.Context, userID string) ([]task.Task, error) {
	path := "/tasks?" + url.Values{"userId": {userID}}.Encode()

	var dtos []taskacl.TaskDTO
	if _, err := c.req.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return taskacl.ToDomainTaskList(dtos), nil
}

// CreateTask sends POST /tasks with the form fields plus userId and
// userEmail. Returns the created task when the API echoes it back.
func (c *TaskClient) CreateTask(ctx context.Context, t task.NewTask) (*task.Task, error) {
	body := taskacl.ToCreateTaskRequest(&t)

	var dto taskacl.TaskDTO
	decoded, err := c.req.Do(ctx, http.MethodPost, "/tasks", body, &dto)
	if err != nil {
		return nil, err
	}
	if !decoded || dto.ID == "" {
		return nil, nil
	}
	created := taskacl.ToDomainTask(&dto)
	return &created, nil
}

// UpdateTask sends PUT /tasks/{id} with the changed fields plus userId.
func (c *TaskClient) UpdateTask(ctx context.Context, id string, patch task.Patch, userID string) error {
	if id == "" {
		return errMissingID
	}
	body := taskacl.ToUpdateTaskRequest(&patch, userID)
	_, err := c.req.Do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id), body, nil)
	return err
}

// DeleteTask sends DELETE /tasks/{id}.
func (c *TaskClient) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return errMissingID
	}
	_, err := c.req.Do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil)
	return err
}

// ReorderTasks sends PUT /tasks/reorder/{category} with body
// {"tasks": [...]}: the complete ordered category, each entry tagged with
// userId.
func (c *TaskClient) ReorderTasks(ctx context.Context, category task.Category, tasks []task.Task, userID string) error {
	path := "/tasks/reorder/" + url.PathEscape(category.String())
	body := taskacl.ToReorderRequest(tasks, userID)
	_, err := c.req.Do(ctx, http.MethodPut, path, body, nil)
	return err
}

// ListActivities fetches GET /activities?userId={userID}.
func (c *TaskClient) ListActivities(ctx context.Context, userID string) ([]activity.Activity, error) {
	path := "/activities?" + url.Values{"userId": {userID}}.Encode()

	var dtos []activityacl.ActivityDTO
	if _, err := c.req.Do(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return activityacl.ToDomainActivityList(dtos), nil
}
