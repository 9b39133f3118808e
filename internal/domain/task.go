package domain

// Task is a checkable to-do owned by a TaskGroup. It has no end date or
// time; the grid gives it a fixed short visual duration.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	GroupID   string `json:"groupId"`
	Done      bool   `json:"done"`
	StartDate string `json:"startDate,omitempty"` // YYYY-MM-DD, empty = no date
	StartTime string `json:"startTime,omitempty"` // HH:MM
	Color     string `json:"color,omitempty"`     // empty = inherit group color
}

// HasDate reports whether the task is scheduled on a day at all.
func (t Task) HasDate() bool {
	return t.StartDate != ""
}

// Overdue reports whether the task is dated before today and still not
// done. today is a YYYY-MM-DD string in local time.
func (t Task) Overdue(today string) bool {
	return t.HasDate() && !t.Done && t.StartDate < today
}

// TaskPatch is a partial task update. Nil fields are left untouched.
// Date uses an empty string to clear the scheduled date.
type TaskPatch struct {
	Title   *string
	Done    *bool
	Date    *string // ISO date or date-time; "" clears
	GroupID *string
}

// HasChanges reports whether the patch updates anything.
func (p TaskPatch) HasChanges() bool {
	return p.Title != nil || p.Done != nil || p.Date != nil || p.GroupID != nil
}
