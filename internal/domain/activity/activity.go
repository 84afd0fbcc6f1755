// Package activity holds the audit records the task API keeps for each user.
package activity

import "time"

// Activity is one audit record. The task API owns its shape; fields it does
// not send are left empty.
type Activity struct {
	ID        string
	TaskID    string
	Action    string
	Details   string
	OwnerID   string
	Timestamp time.Time
}
