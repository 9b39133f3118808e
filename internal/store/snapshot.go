// Package store holds the client-side normalized state: calendars, task
// groups, events and tasks, addressed by durable or temporary id. All
// mutation goes through declarative operations that return a fresh
// snapshot; nothing here performs I/O.
package store

import "github.com/TomasUhiaOtero/Kairos/internal/domain"

// Snapshot is an immutable view of the whole state. Operations never
// mutate in place; they copy the affected collection and return a new
// value, so a kept Snapshot doubles as a rollback point.
//
// Ids are compared as plain strings everywhere. Numeric server ids are
// normalized to string form at the wire boundary, so a lookup can never
// miss on a string/number type mismatch.
type Snapshot struct {
	Calendars  []domain.Calendar
	TaskGroups []domain.TaskGroup
	Events     []domain.Event
	Tasks      []domain.Task
}

// CalendarByID looks up a calendar.
func (s Snapshot) CalendarByID(id string) (domain.Calendar, bool) {
	for _, c := range s.Calendars {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Calendar{}, false
}

// GroupByID looks up a task group.
func (s Snapshot) GroupByID(id string) (domain.TaskGroup, bool) {
	for _, g := range s.TaskGroups {
		if g.ID == id {
			return g, true
		}
	}
	return domain.TaskGroup{}, false
}

// EventByID looks up an event.
func (s Snapshot) EventByID(id string) (domain.Event, bool) {
	for _, e := range s.Events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}

// TaskByID looks up a task.
func (s Snapshot) TaskByID(id string) (domain.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// AddCalendar appends a calendar.
func (s Snapshot) AddCalendar(c domain.Calendar) Snapshot {
	s.Calendars = append(copyOf(s.Calendars), c)
	return s
}

// UpdateCalendar replaces the calendar with the same id. Unknown ids are
// a no-op.
func (s Snapshot) UpdateCalendar(c domain.Calendar) Snapshot {
	out := copyOf(s.Calendars)
	for i := range out {
		if out[i].ID == c.ID {
			out[i] = c
		}
	}
	s.Calendars = out
	return s
}

// DeleteCalendar removes a calendar and cascades to its events.
func (s Snapshot) DeleteCalendar(id string) Snapshot {
	cals := make([]domain.Calendar, 0, len(s.Calendars))
	for _, c := range s.Calendars {
		if c.ID != id {
			cals = append(cals, c)
		}
	}
	events := make([]domain.Event, 0, len(s.Events))
	for _, e := range s.Events {
		if e.CalendarID != id {
			events = append(events, e)
		}
	}
	s.Calendars = cals
	s.Events = events
	return s
}

// AddTaskGroup appends a task group.
func (s Snapshot) AddTaskGroup(g domain.TaskGroup) Snapshot {
	s.TaskGroups = append(copyOf(s.TaskGroups), g)
	return s
}

// UpdateTaskGroup replaces the group with the same id.
func (s Snapshot) UpdateTaskGroup(g domain.TaskGroup) Snapshot {
	out := copyOf(s.TaskGroups)
	for i := range out {
		if out[i].ID == g.ID {
			out[i] = g
		}
	}
	s.TaskGroups = out
	return s
}

// DeleteTaskGroup removes a group and cascades to its tasks.
func (s Snapshot) DeleteTaskGroup(id string) Snapshot {
	groups := make([]domain.TaskGroup, 0, len(s.TaskGroups))
	for _, g := range s.TaskGroups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	tasks := make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.GroupID != id {
			tasks = append(tasks, t)
		}
	}
	s.TaskGroups = groups
	s.Tasks = tasks
	return s
}

// AddEvent appends an event.
func (s Snapshot) AddEvent(e domain.Event) Snapshot {
	s.Events = append(copyOf(s.Events), e)
	return s
}

// UpdateEvent replaces the event with the same id.
func (s Snapshot) UpdateEvent(e domain.Event) Snapshot {
	out := copyOf(s.Events)
	for i := range out {
		if out[i].ID == e.ID {
			out[i] = e
		}
	}
	s.Events = out
	return s
}

// UpsertEvent updates the event if present, otherwise adds it. Used by
// reconciliation, which does not always know whether the target exists.
func (s Snapshot) UpsertEvent(e domain.Event) Snapshot {
	if _, ok := s.EventByID(e.ID); ok {
		return s.UpdateEvent(e)
	}
	return s.AddEvent(e)
}

// DeleteEvent removes an event by id.
func (s Snapshot) DeleteEvent(id string) Snapshot {
	out := make([]domain.Event, 0, len(s.Events))
	for _, e := range s.Events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	s.Events = out
	return s
}

// AddTask appends a task.
func (s Snapshot) AddTask(t domain.Task) Snapshot {
	s.Tasks = append(copyOf(s.Tasks), t)
	return s
}

// UpdateTask replaces the task with the same id.
func (s Snapshot) UpdateTask(t domain.Task) Snapshot {
	out := copyOf(s.Tasks)
	for i := range out {
		if out[i].ID == t.ID {
			out[i] = t
		}
	}
	s.Tasks = out
	return s
}

// UpsertTask updates the task if present, otherwise adds it.
func (s Snapshot) UpsertTask(t domain.Task) Snapshot {
	if _, ok := s.TaskByID(t.ID); ok {
		return s.UpdateTask(t)
	}
	return s.AddTask(t)
}

// DeleteTask removes a task by id.
func (s Snapshot) DeleteTask(id string) Snapshot {
	out := make([]domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.Tasks = out
	return s
}

// ReplaceAll swaps in the complete remote state. Bulk hydration only;
// incremental reconciliation never needs a full re-fetch.
func (s Snapshot) ReplaceAll(calendars []domain.Calendar, events []domain.Event, groups []domain.TaskGroup, tasks []domain.Task) Snapshot {
	s.Calendars = copyOf(calendars)
	s.Events = copyOf(events)
	s.TaskGroups = copyOf(groups)
	s.Tasks = copyOf(tasks)
	return s
}

func copyOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
