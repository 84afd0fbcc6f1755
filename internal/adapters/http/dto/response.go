// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskboard/internal/adapters/notify"
	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
	"github.com/jsamuelsen11/taskboard/internal/domain/session"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// TaskResponse is one card. Urgency is the card's visual class.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date,omitempty"`
	Urgency     string `json:"urgency,omitempty"`
	OwnerEmail  string `json:"owner_email,omitempty"`
}

// ToTaskResponse converts a domain Task, classifying its due date against now.
func ToTaskResponse(t *task.Task, now time.Time) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category.String(),
		OwnerEmail:  t.OwnerEmail,
		Urgency:     task.ClassifyDue(t.DueDate, now).ClassName(),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(task.DateLayout)
	}
	return resp
}

// ColumnResponse is one board column.
type ColumnResponse struct {
	Category string         `json:"category"`
	Title    string         `json:"title"`
	Tasks    []TaskResponse `json:"tasks"`
	Count    int            `json:"count"`
}

// BoardResponse lists the columns in board order.
type BoardResponse struct {
	Columns []ColumnResponse `json:"columns"`
	Count   int              `json:"count"`
}

// ToBoardResponse converts a board snapshot.
func ToBoardResponse(b task.Board, now time.Time) BoardResponse {
	cats := task.Categories()
	resp := BoardResponse{Columns: make([]ColumnResponse, len(cats))}
	for i, c := range cats {
		tasks := b.Column(c)
		items := make([]TaskResponse, len(tasks))
		for j := range tasks {
			items[j] = ToTaskResponse(&tasks[j], now)
		}
		resp.Columns[i] = ColumnResponse{
			Category: c.String(),
			Title:    c.Title(),
			Tasks:    items,
			Count:    len(items),
		}
		resp.Count += len(items)
	}
	return resp
}

// SessionResponse describes the signed-in user.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Loading       bool   `json:"loading"`
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
}

// ToSessionResponse converts a session state.
func ToSessionResponse(st session.State) SessionResponse {
	resp := SessionResponse{
		Authenticated: st.Authenticated(),
		Loading:       st.Loading,
	}
	if st.Session != nil {
		resp.UserID = st.Session.UserID
		resp.Email = st.Session.Email
		resp.Name = st.Session.Name()
	}
	return resp
}

// ActivityResponse is one audit record.
type ActivityResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id,omitempty"`
	Action    string `json:"action,omitempty"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ActivityListResponse lists audit records.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Count      int                `json:"count"`
}

// ToActivityListResponse converts activity records.
func ToActivityListResponse(records []activity.Activity) ActivityListResponse {
	items := make([]ActivityResponse, len(records))
	for i, r := range records {
		items[i] = ActivityResponse{
			ID:      r.ID,
			TaskID:  r.TaskID,
			Action:  r.Action,
			Details: r.Details,
		}
		if !r.Timestamp.IsZero() {
			items[i].Timestamp = r.Timestamp.Format(time.RFC3339)
		}
	}
	return ActivityListResponse{Activities: items, Count: len(items)}
}

// NotificationResponse is one toast.
type NotificationResponse struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// NotificationListResponse lists toasts in the order they were raised.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Count         int                    `json:"count"`
}

// ToNotificationListResponse converts drained notifications.
func ToNotificationListResponse(ns []notify.Notification) NotificationListResponse {
	items := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		items[i] = NotificationResponse{
			Level:   n.Level,
			Message: n.Message,
			Time:    n.Time.Format(time.RFC3339),
		}
	}
	return NotificationListResponse{Notifications: items, Count: len(items)}
}

// Health statuses.
const (
	HealthOK       = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
	HealthFailing  = "failing"
)

// CheckResponse is the outcome of one readiness check.
type CheckResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthResponse is the body of both health endpoints. Checks is omitted on
// liveness.
type HealthResponse struct {
	Status string                   `json:"status"`
	Checks map[string]CheckResponse `json:"checks,omitempty"`
}

// ToReadinessResponse folds registry results into a response and reports
// whether every check passed.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	checks := make(map[string]CheckResponse, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			healthy = false
			checks[name] = CheckResponse{Status: HealthFailing, Error: err.Error()}
			continue
		}
		checks[name] = CheckResponse{Status: HealthOK}
	}

	status := HealthReady
	if !healthy {
		status = HealthNotReady
	}
	return HealthResponse{Status: status, Checks: checks}, healthy
}
