package domain

import (
	"context"
	"time"
)

// RemoteAPI is the backend contract the mutation coordinator consumes.
// Implementations translate to the REST wire format; the coordinator
// only ever sees domain values with string ids. Echoed representations
// are authoritative and replace optimistic local state on success.
type RemoteAPI interface {
	ListCalendars(ctx context.Context) ([]Calendar, error)
	CreateCalendar(ctx context.Context, c Calendar) (Calendar, error)
	UpdateCalendar(ctx context.Context, c Calendar) (Calendar, error)
	DeleteCalendar(ctx context.Context, id string) error

	ListTaskGroups(ctx context.Context, userID string) ([]TaskGroup, error)
	CreateTaskGroup(ctx context.Context, g TaskGroup) (TaskGroup, error)
	UpdateTaskGroup(ctx context.Context, g TaskGroup) (TaskGroup, error)
	DeleteTaskGroup(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]Event, error)
	CreateEvent(ctx context.Context, e Event) (Event, error)
	UpdateEvent(ctx context.Context, id string, e Event) (Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListUserTasks(ctx context.Context, userID string) ([]Task, error)
	CreateTaskInGroup(ctx context.Context, userID, groupID string, t Task) (Task, error)
	UpdateUserTask(ctx context.Context, userID, id string, patch TaskPatch) (Task, error)
	DeleteUserTask(ctx context.Context, userID, id string) error
}

// Notifier surfaces transient, user-visible notifications. Failures are
// never blocking dialogs; rollback already restored a usable state.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
