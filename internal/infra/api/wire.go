package api

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// wireID decodes the backend's ids, which arrive as JSON numbers but
// are occasionally echoed as strings, into the string form used
// everywhere else. It marshals numeric ids back as numbers.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*w = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*w = wireID(n.String())
	return nil
}

func (w wireID) MarshalJSON() ([]byte, error) {
	s := string(w)
	if s == "" {
		return []byte("null"), nil
	}
	if !domain.IsTemporary(s) {
		// All digits; emit as the number the backend stores.
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// wireBool tolerates the backend's loose status column, which has held
// booleans, numbers and strings at different points of its life.
type wireBool bool

func (w *wireBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, string(b) == "null":
		*w = false
	case string(b) == "true":
		*w = true
	case string(b) == "false":
		*w = false
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch strings.ToLower(s) {
		case "true", "done", "completed", "1":
			*w = true
		default:
			*w = false
		}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*w = n.String() != "0"
	}
	return nil
}

func (w wireBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(w))
}

// eventWire is the event resource shape.
type eventWire struct {
	ID          wireID  `json:"id,omitempty"`
	CalendarID  wireID  `json:"calendar_id,omitempty"`
	Title       string  `json:"title"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	AllDay      *bool   `json:"all_day,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

func eventBody(e domain.Event) eventWire {
	start, end := e.WireDates()
	allDay := e.AllDay
	return eventWire{
		CalendarID:  wireID(e.CalendarID),
		Title:       e.Title,
		StartDate:   start,
		EndDate:     end,
		AllDay:      &allDay,
		Description: optString(e.Description),
		Color:       optString(e.Color),
	}
}

func eventFromWire(w eventWire) domain.Event {
	e := domain.Event{
		ID:          string(w.ID),
		CalendarID:  string(w.CalendarID),
		Title:       w.Title,
		Description: deref(w.Description),
		Color:       deref(w.Color),
	}
	if w.AllDay != nil {
		e.AllDay = *w.AllDay
	} else {
		// Older deployments have no all_day column; bare dates mean
		// all-day there.
		e.AllDay = !strings.Contains(w.StartDate, "T") &&
			!strings.Contains(w.StartDate, " ") &&
			!strings.Contains(w.EndDate, "T") &&
			!strings.Contains(w.EndDate, " ")
	}
	e.ApplyWireDates(w.StartDate, w.EndDate)
	return e
}

// taskWire is the task resource shape.
type taskWire struct {
	ID      wireID   `json:"id,omitempty"`
	GroupID wireID   `json:"task_group_id,omitempty"`
	Title   string   `json:"title"`
	Status  wireBool `json:"status"`
	Date    *string  `json:"date,omitempty"`
	Color   *string  `json:"color,omitempty"`
}

func taskBody(t domain.Task) taskWire {
	return taskWire{
		Title:  t.Title,
		Status: wireBool(t.Done),
		Date:   optString(domain.CombineStamp(t.StartDate, t.StartTime)),
		Color:  optString(t.Color),
	}
}

func taskFromWire(w taskWire) domain.Task {
	t := domain.Task{
		ID:      string(w.ID),
		GroupID: string(w.GroupID),
		Title:   w.Title,
		Done:    bool(w.Status),
		Color:   deref(w.Color),
	}
	t.StartDate, t.StartTime = domain.SplitStamp(deref(w.Date))
	// The backend pads date-only tasks to midnight.
	if t.StartTime == "00:00" {
		t.StartTime = ""
	}
	return t
}

// taskPatchWire carries only the fields the patch names.
type taskPatchWire struct {
	Title   *string  `json:"title,omitempty"`
	Status  *bool    `json:"status,omitempty"`
	Date    *string  `json:"date,omitempty"`
	GroupID *wireID  `json:"task_group_id,omitempty"`
}

func patchBody(p domain.TaskPatch) taskPatchWire {
	w := taskPatchWire{
		Title:  p.Title,
		Status: p.Done,
		Date:   p.Date,
	}
	if p.GroupID != nil {
		id := wireID(*p.GroupID)
		w.GroupID = &id
	}
	return w
}

// calendarWire is the calendar resource shape. The backend echoes
// "title" but its create route reads "name", so bodies carry both.
type calendarWire struct {
	ID    wireID  `json:"id,omitempty"`
	Title string  `json:"title,omitempty"`
	Name  string  `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

func calendarBody(c domain.Calendar) calendarWire {
	return calendarWire{
		Title: c.Title,
		Name:  c.Title,
		Color: optString(c.Color),
	}
}

func calendarFromWire(w calendarWire) domain.Calendar {
	title := w.Title
	if title == "" {
		title = w.Name
	}
	return domain.Calendar{
		ID:    string(w.ID),
		Title: title,
		Color: deref(w.Color),
	}
}

// groupWire is the task-group resource shape. The grouped list endpoint
// nests tasks inside each group; those are ignored here because tasks
// are fetched flat.
type groupWire struct {
	ID    wireID  `json:"id,omitempty"`
	Title string  `json:"title"`
	Color *string `json:"color,omitempty"`
}

func groupBody(g domain.TaskGroup) groupWire {
	return groupWire{
		Title: g.Title,
		Color: optString(g.Color),
	}
}

func groupFromWire(w groupWire) domain.TaskGroup {
	return domain.TaskGroup{
		ID:    string(w.ID),
		Title: w.Title,
		Color: deref(w.Color),
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
