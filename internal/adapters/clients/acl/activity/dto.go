// Package activity implements the Anti-Corruption Layer translators for the
// remote task API's activity log.
package activity

// ActivityDTO matches an activity record returned by GET /activities.
// Unknown fields are ignored.
type ActivityDTO struct {
	ID        string `json:"_id"`
	TaskID    string `json:"taskId"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	UserID    string `json:"userId"`
	Timestamp string `json:"timestamp"`
	CreatedAt string `json:"createdAt"`
}
