package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/platform/config"
	"github.com/jsamuelsen11/taskboard/internal/platform/httpclient"
)

// newTestClient creates an httpclient.Client pointing at the given test
// server with a circuit breaker tuned for fast test execution.
func newTestClient(t *testing.T, baseURL string) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "task-api-test", nil, slog.New(slog.DiscardHandler))
}

func newTaskClient(t *testing.T, h http.HandlerFunc) *TaskClient {
	t.Helper()

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return NewTaskClient(newTestClient(t, ts.URL), slog.New(slog.DiscardHandler))
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

// readJSON decodes the request body into a generic map.
func readJSON(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var m map[string]any
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		t.Errorf("decoding request body: %v", err)
	}
	return m
}

func TestTaskClient_ListTasks(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("userId"); got != "uid 1" {
			t.Errorf("userId = %q, want %q", got, "uid 1")
		}
		writeJSON(t, w, []map[string]any{
			{"_id": "t1", "title": "Write report", "category": "TODO", "userId": "uid 1"},
			{"_id": "t2", "title": "Review", "category": "DONE", "dueDate": "2026-03-01T00:00:00.000Z"},
		})
	})

	tasks, err := client.ListTasks(context.Background(), "uid 1")
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].ID != "t1" || tasks[0].Title != "Write report" {
		t.Errorf("tasks[0] = %+v, want t1/Write report", tasks[0])
	}
	if tasks[1].Category != task.CategoryDone || tasks[1].DueDate == nil {
		t.Errorf("tasks[1] = %+v, want DONE with due date", tasks[1])
	}
}

func TestTaskClient_ListTasks_Empty(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []any{})
	})

	tasks, err := client.ListTasks(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("len(tasks) = %d, want 0", len(tasks))
	}
}

func TestTaskClient_CreateTask(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tasks" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body = readJSON(t, r)
		w.WriteHeader(http.StatusCreated)
		writeJSON(t, w, map[string]any{"_id": "new-1", "title": "Ship it", "category": "TODO"})
	})

	created, err := client.CreateTask(context.Background(), task.NewTask{
		Input:      task.Input{Title: "Ship it", Category: task.CategoryTodo},
		OwnerID:    "uid-1",
		OwnerEmail: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if created == nil || created.ID != "new-1" {
		t.Errorf("created = %+v, want ID new-1", created)
	}
	if body["userId"] != "uid-1" || body["userEmail"] != "ada@example.com" {
		t.Errorf("body owner = %v/%v, want uid-1/ada@example.com", body["userId"], body["userEmail"])
	}
	if body["title"] != "Ship it" || body["category"] != "TODO" {
		t.Errorf("body = %v, want title and category", body)
	}
}

func TestTaskClient_CreateTask_NoContent(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	created, err := client.CreateTask(context.Background(), task.NewTask{
		Input:   task.Input{Title: "x", Category: task.CategoryTodo},
		OwnerID: "uid-1",
	})
	if err != nil {
		t.Fatalf("CreateTask() error = %v, want nil for 204", err)
	}
	if created != nil {
		t.Errorf("created = %+v, want nil without body", created)
	}
}

func TestTaskClient_CreateTask_ValidationError(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"invalid","errors":[{"location":"body.title","message":"`+
			domain.MsgRequired+`"}]}`)
	})

	_, err := client.CreateTask(context.Background(), task.NewTask{OwnerID: "uid-1"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("CreateTask() error = %v, want *ValidationError", err)
	}
	if verr.Fields["title"] != domain.MsgRequired {
		t.Errorf("Fields[title] = %q, want %q", verr.Fields["title"], domain.MsgRequired)
	}
}

func TestTaskClient_UpdateTask(t *testing.T) {
	t.Parallel()

	var body map[string]any
	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/tasks/t1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body = readJSON(t, r)
		writeJSON(t, w, map[string]any{"_id": "t1"})
	})

	title := "Renamed"
	err := client.UpdateTask(context.Background(), "t1", task.Patch{Title: &title}, "uid-1")
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if body["title"] != "Renamed" || body["userId"] != "uid-1" {
		t.Errorf("body = %v, want title and userId", body)
	}
	if _, ok := body["description"]; ok {
		t.Errorf("body = %v, want unchanged description omitted", body)
	}
}

func TestTaskClient_UpdateTask_NotFound(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Task not found"}`)
	})

	title := "x"
	err := client.UpdateTask(context.Background(), "missing", task.Patch{Title: &title}, "uid-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateTask() error = %v, want ErrNotFound", err)
	}
}

func TestTaskClient_DeleteTask(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod string
	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		writeJSON(t, w, map[string]any{"message": "Task deleted"})
	})

	if err := client.DeleteTask(context.Background(), "t9"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/tasks/t9" {
		t.Errorf("request = %s %s, want DELETE /tasks/t9", gotMethod, gotPath)
	}
}

func TestTaskClient_EmptyIDRejected(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	if err := client.DeleteTask(context.Background(), ""); err == nil {
		t.Error("DeleteTask(\"\") error = nil, want error")
	}
	if err := client.UpdateTask(context.Background(), "", task.Patch{}, "uid-1"); err == nil {
		t.Error("UpdateTask(\"\") error = nil, want error")
	}
	if hits.Load() != 0 {
		t.Errorf("server hit %d times, want 0", hits.Load())
	}
}

func TestTaskClient_ReorderTasks(t *testing.T) {
	t.Parallel()

	var gotPath string
	var body struct {
		Tasks []map[string]any `json:"tasks"`
	}
	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s, want PUT", r.Method)
		}
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	})

	err := client.ReorderTasks(context.Background(), task.CategoryInProgress, []task.Task{
		{ID: "b", Title: "B", Category: task.CategoryInProgress},
		{ID: "a", Title: "A", Category: task.CategoryInProgress},
	}, "uid-1")
	if err != nil {
		t.Fatalf("ReorderTasks() error = %v", err)
	}
	if gotPath != "/tasks/reorder/IN_PROGRESS" {
		t.Errorf("path = %q, want /tasks/reorder/IN_PROGRESS", gotPath)
	}
	if len(body.Tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(body.Tasks))
	}
	if body.Tasks[0]["_id"] != "b" || body.Tasks[1]["_id"] != "a" {
		t.Errorf("order = %v, want [b a]", body.Tasks)
	}
	for i, tk := range body.Tasks {
		if tk["userId"] != "uid-1" {
			t.Errorf("tasks[%d].userId = %v, want uid-1", i, tk["userId"])
		}
	}
}

func TestTaskClient_ReorderTasks_ServerErrorNotRetried(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.ReorderTasks(context.Background(), task.CategoryTodo, nil, "uid-1")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("ReorderTasks() error = %v, want ErrUnavailable", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want exactly 1", hits.Load())
	}
}

func TestTaskClient_ListActivities(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/activities" || r.URL.Query().Get("userId") != "uid-1" {
			t.Errorf("unexpected request: %s", r.URL.String())
		}
		writeJSON(t, w, []map[string]any{{
			"_id": "a1", "taskId": "t1", "action": "CREATE",
			"details": "Created task", "userId": "uid-1",
			"timestamp": "2026-02-01T10:00:00Z", "extra": true,
		}})
	})

	acts, err := client.ListActivities(context.Background(), "uid-1")
	if err != nil {
		t.Fatalf("ListActivities() error = %v", err)
	}
	if len(acts) != 1 || acts[0].Action != "CREATE" || acts[0].TaskID != "t1" {
		t.Errorf("activities = %+v, want one CREATE for t1", acts)
	}
}

func TestTaskClient_MalformedBody(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"not":"an array"`)
	})

	_, err := client.ListTasks(context.Background(), "uid-1")
	if err == nil || !strings.Contains(err.Error(), "decoding response") {
		t.Errorf("ListTasks() error = %v, want decoding error", err)
	}
}

func TestTaskClient_Health(t *testing.T) {
	t.Parallel()

	client := newTaskClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if got := client.Name(); got != "task-api-test" {
		t.Errorf("Name() = %q, want %q", got, "task-api-test")
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil for fresh client", err)
	}
}
