package task

import (
	"fmt"
	"strings"
)

// Category is the status column a Task belongs to.
type Category string

const (
	CategoryTodo       Category = "TODO"
	CategoryInProgress Category = "IN_PROGRESS"
	CategoryDone       Category = "DONE"
)

// Categories returns every category in board order.
func Categories() []Category {
	return []Category{CategoryTodo, CategoryInProgress, CategoryDone}
}

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryTodo, CategoryInProgress, CategoryDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// Title returns the column heading shown to users.
func (c Category) Title() string {
	switch c {
	case CategoryTodo:
		return "To Do"
	case CategoryInProgress:
		return "In Progress"
	case CategoryDone:
		return "Done"
	default:
		return string(c)
	}
}

// ParseCategory resolves user input such as "todo", "in-progress" or
// "IN_PROGRESS" to a Category.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)

	switch norm {
	case "TODO", "TO_DO":
		return CategoryTodo, nil
	case "IN_PROGRESS", "INPROGRESS", "DOING":
		return CategoryInProgress, nil
	case "DONE":
		return CategoryDone, nil
	default:
		return "", fmt.Errorf("unknown category %q (want one of todo, in-progress, done)", s)
	}
}
