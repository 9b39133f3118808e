// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockNotifier records notifications.
type MockNotifier struct {
	mu     sync.Mutex
	Infos  []string
	Errors []string
}

// Info records an informational notification.
func (m *MockNotifier) Info(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Infos = append(m.Infos, msg)
}

// Error records an error notification.
func (m *MockNotifier) Error(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, msg)
}

// MockRemote is an in-memory test double for domain.RemoteAPI. Created
// items get sequential numeric ids starting at 100. Every call is
// recorded in Calls as "Method id" so tests can assert on call counts
// and on which ids reached the backend.
type MockRemote struct {
	mu sync.Mutex

	Calendars map[string]domain.Calendar
	Groups    map[string]domain.TaskGroup
	Events    map[string]domain.Event
	Tasks     map[string]domain.Task

	nextID int

	ListErr           error
	CreateCalendarErr error
	UpdateCalendarErr error
	DeleteCalendarErr error
	CreateGroupErr    error
	UpdateGroupErr    error
	DeleteGroupErr    error
	CreateEventErr    error
	UpdateEventErr    error
	DeleteEventErr    error
	CreateTaskErr     error
	UpdateTaskErr     error
	DeleteTaskErr     error

	// DeleteTaskErrs fails DeleteUserTask for specific ids only, on top
	// of DeleteTaskErr.
	DeleteTaskErrs map[string]error

	// RejectGroupPatch makes UpdateUserTask answer a group-membership
	// patch with 405, the way backends that bind tasks to their creation
	// group do.
	RejectGroupPatch bool

	// Hooks run at the start of the matching call, before the mock takes
	// its lock. Tests use them to interleave another coordinator
	// operation with a call that is still in flight.
	CreateCalendarHook func()
	CreateGroupHook    func()
	UpdateEventHook    func()
	UpdateTaskHook     func()

	Calls []string
}

// NewMockRemote creates an empty MockRemote.
func NewMockRemote() *MockRemote {
	return &MockRemote{
		Calendars: make(map[string]domain.Calendar),
		Groups:    make(map[string]domain.TaskGroup),
		Events:    make(map[string]domain.Event),
		Tasks:     make(map[string]domain.Task),
		nextID:    100,
	}
}

// Ensure MockRemote implements domain.RemoteAPI.
var _ domain.RemoteAPI = (*MockRemote)(nil)

// CallsTo returns how many recorded calls hit the given method.
func (m *MockRemote) CallsTo(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.Calls {
		if len(c) >= len(method) && c[:len(method)] == method {
			n++
		}
	}
	return n
}

func (m *MockRemote) record(method, id string) {
	m.Calls = append(m.Calls, method+" "+id)
}

func (m *MockRemote) newID() string {
	id := strconv.Itoa(m.nextID)
	m.nextID++
	return id
}

// ListCalendars returns all calendars.
func (m *MockRemote) ListCalendars(_ context.Context) ([]domain.Calendar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListCalendars", "")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Calendar, 0, len(m.Calendars))
	for _, c := range m.Calendars {
		out = append(out, c)
	}
	return out, nil
}

// CreateCalendar stores the calendar under a fresh numeric id.
func (m *MockRemote) CreateCalendar(_ context.Context, c domain.Calendar) (domain.Calendar, error) {
	if m.CreateCalendarHook != nil {
		m.CreateCalendarHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateCalendar", c.ID)
	if m.CreateCalendarErr != nil {
		return domain.Calendar{}, m.CreateCalendarErr
	}
	c.ID = m.newID()
	m.Calendars[c.ID] = c
	return c, nil
}

// UpdateCalendar replaces the stored calendar.
func (m *MockRemote) UpdateCalendar(_ context.Context, c domain.Calendar) (domain.Calendar, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateCalendar", c.ID)
	if m.UpdateCalendarErr != nil {
		return domain.Calendar{}, m.UpdateCalendarErr
	}
	if _, ok := m.Calendars[c.ID]; !ok {
		return domain.Calendar{}, &domain.RemoteError{Status: 404, Message: "calendar not found"}
	}
	m.Calendars[c.ID] = c
	return c, nil
}

// DeleteCalendar removes a calendar.
func (m *MockRemote) DeleteCalendar(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteCalendar", id)
	if m.DeleteCalendarErr != nil {
		return m.DeleteCalendarErr
	}
	delete(m.Calendars, id)
	return nil
}

// ListTaskGroups returns all groups.
func (m *MockRemote) ListTaskGroups(_ context.Context, _ string) ([]domain.TaskGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListTaskGroups", "")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.TaskGroup, 0, len(m.Groups))
	for _, g := range m.Groups {
		out = append(out, g)
	}
	return out, nil
}

// CreateTaskGroup stores the group under a fresh numeric id.
func (m *MockRemote) CreateTaskGroup(_ context.Context, g domain.TaskGroup) (domain.TaskGroup, error) {
	if m.CreateGroupHook != nil {
		m.CreateGroupHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateTaskGroup", g.ID)
	if m.CreateGroupErr != nil {
		return domain.TaskGroup{}, m.CreateGroupErr
	}
	g.ID = m.newID()
	m.Groups[g.ID] = g
	return g, nil
}

// UpdateTaskGroup replaces the stored group.
func (m *MockRemote) UpdateTaskGroup(_ context.Context, g domain.TaskGroup) (domain.TaskGroup, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateTaskGroup", g.ID)
	if m.UpdateGroupErr != nil {
		return domain.TaskGroup{}, m.UpdateGroupErr
	}
	if _, ok := m.Groups[g.ID]; !ok {
		return domain.TaskGroup{}, &domain.RemoteError{Status: 404, Message: "group not found"}
	}
	m.Groups[g.ID] = g
	return g, nil
}

// DeleteTaskGroup removes a group.
func (m *MockRemote) DeleteTaskGroup(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteTaskGroup", id)
	if m.DeleteGroupErr != nil {
		return m.DeleteGroupErr
	}
	delete(m.Groups, id)
	return nil
}

// ListEvents returns all events.
func (m *MockRemote) ListEvents(_ context.Context) ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListEvents", "")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Event, 0, len(m.Events))
	for _, e := range m.Events {
		out = append(out, e)
	}
	return out, nil
}

// CreateEvent stores the event under a fresh numeric id.
func (m *MockRemote) CreateEvent(_ context.Context, e domain.Event) (domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateEvent", e.ID)
	if m.CreateEventErr != nil {
		return domain.Event{}, m.CreateEventErr
	}
	e.ID = m.newID()
	m.Events[e.ID] = e
	return e, nil
}

// UpdateEvent replaces the stored event.
func (m *MockRemote) UpdateEvent(_ context.Context, id string, e domain.Event) (domain.Event, error) {
	if m.UpdateEventHook != nil {
		m.UpdateEventHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateEvent", id)
	if m.UpdateEventErr != nil {
		return domain.Event{}, m.UpdateEventErr
	}
	if _, ok := m.Events[id]; !ok {
		return domain.Event{}, &domain.RemoteError{Status: 404, Message: "event not found"}
	}
	e.ID = id
	m.Events[id] = e
	return e, nil
}

// DeleteEvent removes an event.
func (m *MockRemote) DeleteEvent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteEvent", id)
	if m.DeleteEventErr != nil {
		return m.DeleteEventErr
	}
	delete(m.Events, id)
	return nil
}

// ListUserTasks returns all tasks.
func (m *MockRemote) ListUserTasks(_ context.Context, _ string) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListUserTasks", "")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		out = append(out, t)
	}
	return out, nil
}

// CreateTaskInGroup stores the task under a fresh numeric id, bound to
// groupID.
func (m *MockRemote) CreateTaskInGroup(_ context.Context, _, groupID string, t domain.Task) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateTaskInGroup", t.ID)
	if m.CreateTaskErr != nil {
		return domain.Task{}, m.CreateTaskErr
	}
	t.ID = m.newID()
	t.GroupID = groupID
	m.Tasks[t.ID] = t
	return t, nil
}

// UpdateUserTask applies the patch to the stored task.
func (m *MockRemote) UpdateUserTask(_ context.Context, _, id string, patch domain.TaskPatch) (domain.Task, error) {
	if m.UpdateTaskHook != nil {
		m.UpdateTaskHook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("UpdateUserTask", id)
	if m.UpdateTaskErr != nil {
		return domain.Task{}, m.UpdateTaskErr
	}
	if m.RejectGroupPatch && patch.GroupID != nil {
		return domain.Task{}, &domain.RemoteError{Status: 405, Message: "method not allowed"}
	}
	t, ok := m.Tasks[id]
	if !ok {
		return domain.Task{}, &domain.RemoteError{Status: 404, Message: "task not found"}
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}
	if patch.Date != nil {
		t.StartDate, t.StartTime = domain.SplitStamp(*patch.Date)
	}
	if patch.GroupID != nil {
		t.GroupID = *patch.GroupID
	}
	m.Tasks[id] = t
	return t, nil
}

// DeleteUserTask removes a task.
func (m *MockRemote) DeleteUserTask(_ context.Context, _, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteUserTask", id)
	if err := m.DeleteTaskErrs[id]; err != nil {
		return err
	}
	if m.DeleteTaskErr != nil {
		return m.DeleteTaskErr
	}
	delete(m.Tasks, id)
	return nil
}
