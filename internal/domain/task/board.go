package task

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// Board maps each category to its ordered tasks. Order within a column is
// the drag order. Every task on a board appears in exactly one column,
// exactly once.
//
// Board values are immutable from the outside: every method that changes
// the layout returns a new Board and leaves the receiver untouched.
type Board struct {
	columns map[Category][]Task
}

// Position addresses a slot on the board.
type Position struct {
	Category Category
	Index    int
}

// DragResult describes a finished drag gesture. A nil Destination means the
// card was dropped outside any column.
type DragResult struct {
	TaskID      string
	Source      Position
	Destination *Position
}

// NewBoard returns a board with all three columns empty.
func NewBoard() Board {
	cols := make(map[Category][]Task, len(Categories()))
	for _, c := range Categories() {
		cols[c] = []Task{}
	}
	return Board{columns: cols}
}

// Group builds a board from a flat task list, preserving list order within
// each column. Tasks whose category is not one of the board's columns are
// returned as rejected and left off the board.
func Group(tasks []Task) (Board, []Task) {
	b := NewBoard()
	var rejected []Task
	for _, t := range tasks {
		if !t.Category.IsValid() {
			rejected = append(rejected, t)
			continue
		}
		b.columns[t.Category] = append(b.columns[t.Category], t)
	}
	return b, rejected
}

// Column returns a copy of the tasks in category c.
func (b Board) Column(c Category) []Task {
	return slices.Clone(b.col(c))
}

// Len returns the total number of tasks on the board.
func (b Board) Len() int {
	n := 0
	for _, c := range Categories() {
		n += len(b.col(c))
	}
	return n
}

// IDs returns every task ID in board order.
func (b Board) IDs() []string {
	ids := make([]string, 0, b.Len())
	for _, c := range Categories() {
		for _, t := range b.col(c) {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Find locates a task by ID.
func (b Board) Find(id string) (Task, Position, bool) {
	for _, c := range Categories() {
		for i, t := range b.col(c) {
			if t.ID == id {
				return t, Position{Category: c, Index: i}, true
			}
		}
	}
	return Task{}, Position{}, false
}

// Clone returns a deep copy of the column slices.
func (b Board) Clone() Board {
	out := NewBoard()
	for _, c := range Categories() {
		out.columns[c] = slices.Clone(b.col(c))
	}
	return out
}

// Move removes the task at from and inserts it at to, keeping the relative
// order of every other task. When both positions share a category the move
// is a reposition within that column. The destination index is interpreted
// against the destination column after removal, so it may equal that
// column's length (append). The moved task takes the destination category.
func (b Board) Move(from, to Position) (Board, error) {
	if err := b.validateMove(from, to); err != nil {
		return Board{}, err
	}

	out := b.Clone()
	src := out.columns[from.Category]
	moved := src[from.Index]
	moved.Category = to.Category
	out.columns[from.Category] = slices.Delete(src, from.Index, from.Index+1)
	out.columns[to.Category] = slices.Insert(out.columns[to.Category], to.Index, moved)

	return out, nil
}

func (b Board) validateMove(from, to Position) error {
	fields := make(map[string]string)

	if !from.Category.IsValid() {
		fields["source.category"] = fmt.Sprintf("invalid: %q", from.Category)
	} else if from.Index < 0 || from.Index >= len(b.col(from.Category)) {
		fields["source.index"] = fmt.Sprintf("out of range: %d", from.Index)
	}

	if !to.Category.IsValid() {
		fields["destination.category"] = fmt.Sprintf("invalid: %q", to.Category)
	} else {
		limit := len(b.col(to.Category))
		if to.Category == from.Category {
			limit--
		}
		if to.Index < 0 || to.Index > limit {
			fields["destination.index"] = fmt.Sprintf("out of range: %d", to.Index)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (b Board) col(c Category) []Task {
	if b.columns == nil {
		return nil
	}
	return b.columns[c]
}
