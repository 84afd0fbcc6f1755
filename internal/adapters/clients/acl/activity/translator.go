package activity

import (
	"time"

	"github.com/jsamuelsen11/taskboard/internal/domain/activity"
)

// ToDomainActivity converts an API ActivityDTO to a domain Activity. The
// timestamp falls back to createdAt and is zero when neither parses.
func ToDomainActivity(dto *ActivityDTO) activity.Activity {
	ts, err := time.Parse(time.RFC3339, dto.Timestamp)
	if err != nil {
		ts, _ = time.Parse(time.RFC3339, dto.CreatedAt)
	}

	return activity.Activity{
		ID:        dto.ID,
		TaskID:    dto.TaskID,
		Action:    dto.Action,
		Details:   dto.Details,
		OwnerID:   dto.UserID,
		Timestamp: ts,
	}
}

// ToDomainActivityList converts a slice of API activities, keeping order.
func ToDomainActivityList(dtos []ActivityDTO) []activity.Activity {
	out := make([]activity.Activity, len(dtos))
	for i := range dtos {
		out[i] = ToDomainActivity(&dtos[i])
	}
	return out
}
