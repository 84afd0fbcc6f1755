package task

import (
	"strconv"
	"time"

	domaintask "github.com/jsamuelsen11/taskboard/internal/domain/task"
)

// DateLayout is the wire format used when sending due dates.
const DateLayout = domaintask.DateLayout

// DueDateField is a due date in an update request. Clear marshals as null,
// otherwise Value is sent as a date string.
type DueDateField struct {
	Value string
	Clear bool
}

// MarshalJSON implements json.Marshaler.
func (f DueDateField) MarshalJSON() ([]byte, error) {
	if f.Clear {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(f.Value)), nil
}

// ToDomainTask converts an API TaskDTO to a domain Task. Unparseable due
// dates are dropped rather than failing the whole list.
func ToDomainTask(dto *TaskDTO) domaintask.Task {
	return domaintask.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    domaintask.Category(dto.Category),
		DueDate:     parseDueDate(dto.DueDate),
		OwnerID:     dto.UserID,
		OwnerEmail:  dto.UserEmail,
	}
}

// ToDomainTaskList converts a slice of API tasks to domain tasks, keeping
// server order.
func ToDomainTaskList(dtos []TaskDTO) []domaintask.Task {
	tasks := make([]domaintask.Task, len(dtos))
	for i := range dtos {
		tasks[i] = ToDomainTask(&dtos[i])
	}
	return tasks
}

// ToTaskDTO converts a domain Task to its wire form. A non-empty userID
// replaces the task's owner.
func ToTaskDTO(t *domaintask.Task, userID string) TaskDTO {
	owner := t.OwnerID
	if userID != "" {
		owner = userID
	}
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category.String(),
		DueDate:     formatDueDate(t.DueDate),
		UserID:      owner,
		UserEmail:   t.OwnerEmail,
	}
}

// ToCreateTaskRequest converts a create request to the POST body.
func ToCreateTaskRequest(t *domaintask.NewTask) CreateTaskRequestDTO {
	return CreateTaskRequestDTO{
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category.String(),
		DueDate:     formatDueDate(t.DueDate),
		UserID:      t.OwnerID,
		UserEmail:   t.OwnerEmail,
	}
}

// ToUpdateTaskRequest converts a patch to the PUT body. Fields the patch
// leaves nil are omitted.
func ToUpdateTaskRequest(p *domaintask.Patch, userID string) UpdateTaskRequestDTO {
	dto := UpdateTaskRequestDTO{
		Title:       p.Title,
		Description: p.Description,
		UserID:      userID,
	}
	if p.Category != nil {
		c := p.Category.String()
		dto.Category = &c
	}
	switch {
	case p.ClearDueDate:
		dto.DueDate = &DueDateField{Clear: true}
	case p.DueDate != nil:
		dto.DueDate = &DueDateField{Value: p.DueDate.Format(DateLayout)}
	}
	return dto
}

// ToReorderRequest converts an ordered category to the reorder body, every
// entry tagged with userID.
func ToReorderRequest(tasks []domaintask.Task, userID string) ReorderRequestDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i := range tasks {
		dtos[i] = ToTaskDTO(&tasks[i], userID)
	}
	return ReorderRequestDTO{Tasks: dtos}
}

func formatDueDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// parseDueDate accepts a bare date (taken as local midnight) or an RFC 3339
// timestamp. A timestamp contributes only its UTC calendar date, since the
// API stores form dates as UTC midnight.
func parseDueDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if d, err := time.ParseInLocation(DateLayout, *s, time.Local); err == nil {
		return &d
	}
	ts, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	y, m, d := ts.UTC().Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &day
}
