package task

import "time"

// Urgency classifies a card by how close its due date is.
type Urgency string

const (
	UrgencyNone    Urgency = ""
	UrgencyOverdue Urgency = "overdue"
	UrgencySoon    Urgency = "soon"
	UrgencyNormal  Urgency = "normal"
)

// soonWindowDays is how many days ahead of today still count as "soon".
const soonWindowDays = 2

// ClassifyDue compares calendar days in now's location: a due date before
// today is overdue, today through today+2 is soon, anything later is normal.
// A nil due date has no urgency.
func ClassifyDue(due *time.Time, now time.Time) Urgency {
	if due == nil {
		return UrgencyNone
	}

	loc := now.Location()
	today := startOfDay(now)
	dueDay := startOfDay(due.In(loc))

	switch {
	case dueDay.Before(today):
		return UrgencyOverdue
	case !dueDay.After(today.AddDate(0, 0, soonWindowDays)):
		return UrgencySoon
	default:
		return UrgencyNormal
	}
}

// ClassName returns the visual class used by the card renderer.
func (u Urgency) ClassName() string {
	return string(u)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
