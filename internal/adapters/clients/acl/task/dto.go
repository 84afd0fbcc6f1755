// Package task implements the Anti-Corruption Layer translators for the
// remote task API's task resources.
package task

// TaskDTO matches the task document returned by the API. The identifier is
// the store's "_id"; dueDate is an ISO 8601 string or null.
type TaskDTO struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	DueDate     *string `json:"dueDate,omitempty"`
	UserID      string  `json:"userId,omitempty"`
	UserEmail   string  `json:"userEmail,omitempty"`
}

// CreateTaskRequestDTO is the body of POST /tasks.
type CreateTaskRequestDTO struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	DueDate     *string `json:"dueDate,omitempty"`
	UserID      string  `json:"userId"`
	UserEmail   string  `json:"userEmail,omitempty"`
}

// UpdateTaskRequestDTO is the body of PUT /tasks/{id}. Only changed fields
// are sent. DueDate has three states: nil (unchanged), a date string, or an
// explicit null (cleared).
type UpdateTaskRequestDTO struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Category    *string       `json:"category,omitempty"`
	DueDate     *DueDateField `json:"dueDate,omitempty"`
	UserID      string        `json:"userId"`
}

// ReorderRequestDTO is the body of PUT /tasks/reorder/{category}: the full
// ordered contents of the destination category.
type ReorderRequestDTO struct {
	Tasks []TaskDTO `json:"tasks"`
}
