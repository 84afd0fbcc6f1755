package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain"
)

// DateLayout is the form format of a due date.
const DateLayout = "2006-01-02"

// ParseDueDate reads a form due date as local midnight.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, &domain.ValidationError{
			Fields: map[string]string{"due_date": fmt.Sprintf("must be YYYY-MM-DD, got %q", s)},
		}
	}
	return d, nil
}
