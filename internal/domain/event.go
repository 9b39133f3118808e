package domain

// Event is a calendar entry. Date and time-of-day parts are kept split,
// the way the editor edits them; DisplayRange and the wire codec combine
// them on demand.
//
// Invariants: CalendarID references an existing calendar (enforced by
// cascade delete, not by rejecting orphans), and an all-day event never
// carries StartTime/EndTime.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	CalendarID  string `json:"calendarId"`
	AllDay      bool   `json:"allDay"`
	StartDate   string `json:"startDate"`           // YYYY-MM-DD
	EndDate     string `json:"endDate,omitempty"`   // YYYY-MM-DD, empty = same as StartDate
	StartTime   string `json:"startTime,omitempty"` // HH:MM, empty when all-day
	EndTime     string `json:"endTime,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"` // empty = inherit calendar color
}

// EffectiveEndDate returns EndDate, falling back to StartDate.
func (e Event) EffectiveEndDate() string {
	if e.EndDate != "" {
		return e.EndDate
	}
	return e.StartDate
}
