// Package task holds the task board domain: tasks, their categories, the
// grouped board state, and the pure move transition used for reordering.
package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Field limits enforced by the task form.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 200
)

// Task is a single card on the board. ID is assigned by the task API.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    Category
	DueDate     *time.Time
	OwnerID     string
	OwnerEmail  string
}

// Input is the data entered in the task form when creating a task.
type Input struct {
	Title       string
	Description string
	Category    Category
	DueDate     *time.Time
}

// Normalize trims text fields and defaults an empty category to TODO.
func (in *Input) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Category == "" {
		in.Category = CategoryTodo
	}
}

// Validate checks the form rules. Returns a *domain.ValidationError with
// per-field details, or nil if all rules pass.
func (in *Input) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(in.Title) == "" {
		fields["title"] = domain.MsgRequired
	} else if n := utf8.RuneCountInString(in.Title); n > MaxTitleLength {
		fields["title"] = fmt.Sprintf("must be at most %d characters, got %d", MaxTitleLength, n)
	}
	if n := utf8.RuneCountInString(in.Description); n > MaxDescriptionLength {
		fields["description"] = fmt.Sprintf("must be at most %d characters, got %d", MaxDescriptionLength, n)
	}
	if !in.Category.IsValid() {
		fields["category"] = fmt.Sprintf("invalid: %q", in.Category)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// NewTask is a create request: the form input tagged with the owner's identity.
type NewTask struct {
	Input
	OwnerID    string
	OwnerEmail string
}

// Patch carries only the fields changed in the edit form. Nil means
// "do not change this field"; ClearDueDate removes an existing due date.
type Patch struct {
	Title        *string
	Description  *string
	Category     *Category
	DueDate      *time.Time
	ClearDueDate bool
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil &&
		p.DueDate == nil && !p.ClearDueDate
}

// Validate checks that provided fields satisfy the same rules as Input.
func (p *Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil {
		if strings.TrimSpace(*p.Title) == "" {
			fields["title"] = domain.MsgMustNotEmpty
		} else if n := utf8.RuneCountInString(*p.Title); n > MaxTitleLength {
			fields["title"] = fmt.Sprintf("must be at most %d characters, got %d", MaxTitleLength, n)
		}
	}
	if p.Description != nil {
		if n := utf8.RuneCountInString(*p.Description); n > MaxDescriptionLength {
			fields["description"] = fmt.Sprintf("must be at most %d characters, got %d", MaxDescriptionLength, n)
		}
	}
	if p.Category != nil && !p.Category.IsValid() {
		fields["category"] = fmt.Sprintf("invalid: %q", *p.Category)
	}
	if p.DueDate != nil && p.ClearDueDate {
		fields["due_date"] = "cannot both set and clear"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
