package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskboard/internal/domain"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// CreateTaskRequest is the JSON body of POST /api/v1/tasks.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// Validate checks the wire formats. Length rules are left to the domain.
func (r *CreateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	checkCategory(fields, r.Category)
	checkDueDate(fields, r.DueDate)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToInput maps the request to a task form. Call Validate first.
func (r *CreateTaskRequest) ToInput() task.Input {
	in := task.Input{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Category != "" {
		in.Category, _ = task.ParseCategory(r.Category)
	}
	if r.DueDate != "" {
		d, _ := task.ParseDueDate(r.DueDate)
		in.DueDate = &d
	}
	return in
}

// UpdateTaskRequest is the JSON body of PATCH /api/v1/tasks/{id}. Absent
// fields are left unchanged; an empty due_date clears the due date.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// Validate checks the wire formats and that something changes.
func (r *UpdateTaskRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = domain.MsgMustNotEmpty
	}
	if r.Category != nil {
		if *r.Category == "" {
			fields["category"] = domain.MsgMustNotEmpty
		} else {
			checkCategory(fields, *r.Category)
		}
	}
	if r.DueDate != nil && *r.DueDate != "" {
		checkDueDate(fields, *r.DueDate)
	}
	if r.Title == nil && r.Description == nil && r.Category == nil && r.DueDate == nil {
		fields["body"] = "no fields to update"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch maps the request to a task patch. Call Validate first.
func (r *UpdateTaskRequest) ToPatch() task.Patch {
	p := task.Patch{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Category != nil {
		c, _ := task.ParseCategory(*r.Category)
		p.Category = &c
	}
	if r.DueDate != nil {
		if *r.DueDate == "" {
			p.ClearDueDate = true
		} else {
			d, _ := task.ParseDueDate(*r.DueDate)
			p.DueDate = &d
		}
	}
	return p
}

// PositionRequest addresses a slot on the board.
type PositionRequest struct {
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// MoveRequest is the JSON body of POST /api/v1/board/moves: the result of a
// drag gesture. A missing destination is a cancelled drop.
type MoveRequest struct {
	TaskID      string           `json:"task_id,omitempty"`
	Source      PositionRequest  `json:"source"`
	Destination *PositionRequest `json:"destination"`
}

// Validate checks that the categories parse. Index bounds are checked
// against the board by the domain.
func (r *MoveRequest) Validate() error {
	fields := make(map[string]string)

	if _, err := task.ParseCategory(r.Source.Category); err != nil {
		fields["source.category"] = fmt.Sprintf("invalid: %q", r.Source.Category)
	}
	if r.Destination != nil {
		if _, err := task.ParseCategory(r.Destination.Category); err != nil {
			fields["destination.category"] = fmt.Sprintf("invalid: %q", r.Destination.Category)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToDragResult maps the request to a drag result. Call Validate first.
func (r *MoveRequest) ToDragResult() task.DragResult {
	src, _ := task.ParseCategory(r.Source.Category)
	drag := task.DragResult{
		TaskID: r.TaskID,
		Source: task.Position{Category: src, Index: r.Source.Index},
	}
	if r.Destination != nil {
		dst, _ := task.ParseCategory(r.Destination.Category)
		drag.Destination = &task.Position{Category: dst, Index: r.Destination.Index}
	}
	return drag
}

// SignInRequest is the JSON body of POST /api/v1/session.
type SignInRequest struct {
	IDToken string `json:"id_token"`
}

// Validate checks that a token is present.
func (r *SignInRequest) Validate() error {
	if strings.TrimSpace(r.IDToken) == "" {
		return &domain.ValidationError{Fields: map[string]string{"id_token": domain.MsgRequired}}
	}
	return nil
}

func checkCategory(fields map[string]string, raw string) {
	if raw == "" {
		return
	}
	if _, err := task.ParseCategory(raw); err != nil {
		fields["category"] = fmt.Sprintf("invalid: %q", raw)
	}
}

func checkDueDate(fields map[string]string, raw string) {
	if raw == "" {
		return
	}
	if _, err := task.ParseDueDate(raw); err != nil {
		fields["due_date"] = fmt.Sprintf("must be YYYY-MM-DD, got %q", raw)
	}
}
