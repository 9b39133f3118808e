package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
	"github.com/TomasUhiaOtero/Kairos/internal/testutil"
)

func TestSaveCalendarCreate(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)

	cal, err := c.SaveCalendar(context.Background(), domain.Calendar{Title: "Personal", Color: "#3788d8"})
	require.NoError(t, err)
	assert.Equal(t, "100", cal.ID)
	assert.Contains(t, remote.Calendars, "100")

	_, err = c.SaveCalendar(context.Background(), domain.Calendar{Title: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestSaveCalendarPromotionRepointsEvents(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)
	tempID := domain.NewTemporaryID()
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddCalendar(domain.Calendar{ID: tempID, Title: "Personal"})
		return s.AddEvent(domain.Event{ID: "10", Title: "Dentista", CalendarID: tempID})
	}, tempID)
	remote.Events["10"] = domain.Event{ID: "10", Title: "Dentista"}

	cal, err := c.SaveCalendar(context.Background(), domain.Calendar{ID: tempID, Title: "Personal"})
	require.NoError(t, err)
	assert.Equal(t, "100", cal.ID)

	snap := c.Store().Current()
	_, ok := snap.CalendarByID(tempID)
	assert.False(t, ok, "temporary calendar replaced")
	ev, ok := snap.EventByID("10")
	require.True(t, ok)
	assert.Equal(t, "100", ev.CalendarID, "owned events follow the durable id")
}

func TestDeleteCalendarCascadesAndRollsBack(t *testing.T) {
	c, remote, notify := newTestCoordinator(t)
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddCalendar(domain.Calendar{ID: "1", Title: "Personal"})
		s = s.AddEvent(domain.Event{ID: "10", Title: "Dentista", CalendarID: "1"})
		s = s.AddEvent(domain.Event{ID: "11", Title: "Fisio", CalendarID: "1"})
		return s.AddEvent(domain.Event{ID: "12", Title: "Cena", CalendarID: "9"})
	})
	remote.Calendars["1"] = domain.Calendar{ID: "1", Title: "Personal"}

	remote.DeleteCalendarErr = errors.New("boom")
	err := c.DeleteCalendar(context.Background(), "1")
	require.Error(t, err)

	snap := c.Store().Current()
	_, ok := snap.CalendarByID("1")
	assert.True(t, ok, "failed delete restores the calendar")
	assert.Len(t, snap.Events, 3, "cascaded events restored too")
	require.Len(t, notify.Errors, 1)
	assert.Equal(t, "No se pudo eliminar el calendario", notify.Errors[0])

	remote.DeleteCalendarErr = nil
	require.NoError(t, c.DeleteCalendar(context.Background(), "1"))
	snap = c.Store().Current()
	assert.Empty(t, snap.Calendars)
	require.Len(t, snap.Events, 1, "only the foreign event survives the cascade")
	assert.Equal(t, "12", snap.Events[0].ID)
}

func TestSaveCalendarCreatePromotionKeepsInFlightChildren(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)

	// An optimistic event lands against the temporary calendar id while
	// the create round trip is still open.
	remote.CreateCalendarHook = func() {
		snap := c.Store().Current()
		require.Len(t, snap.Calendars, 1)
		temp := snap.Calendars[0].ID
		evID := domain.NewTemporaryID()
		c.Store().Apply(func(s store.Snapshot) store.Snapshot {
			return s.AddEvent(domain.Event{ID: evID, Title: "Dentista", CalendarID: temp})
		}, evID)
	}

	cal, err := c.SaveCalendar(context.Background(), domain.Calendar{Title: "Personal"})
	require.NoError(t, err)

	snap := c.Store().Current()
	require.Len(t, snap.Events, 1, "promotion must not cascade the in-flight child away")
	assert.Equal(t, cal.ID, snap.Events[0].CalendarID)
}

func TestDeleteCalendarDiscardsInFlightEventEcho(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddCalendar(domain.Calendar{ID: "1", Title: "Personal"})
		return s.AddEvent(domain.Event{ID: "10", Title: "Dentista", CalendarID: "1"})
	})
	remote.Calendars["1"] = domain.Calendar{ID: "1", Title: "Personal"}
	remote.Events["10"] = domain.Event{ID: "10", Title: "Dentista", CalendarID: "1"}

	// The calendar is deleted while the event update's round trip is
	// still open.
	remote.UpdateEventHook = func() {
		require.NoError(t, c.DeleteCalendar(context.Background(), "1"))
	}

	_, err := c.SaveEvent(context.Background(), SaveEventInput{Event: domain.Event{
		ID: "10", Title: "Dentista", CalendarID: "1",
		StartDate: "2025-08-26", EndDate: "2025-08-26", AllDay: true,
	}})
	require.NoError(t, err)

	snap := c.Store().Current()
	_, ok := snap.CalendarByID("1")
	assert.False(t, ok)
	_, ok = snap.EventByID("10")
	assert.False(t, ok, "late echo is stale once the cascade stamped the event")
}

func TestSaveTaskGroupPromotionRepointsTasks(t *testing.T) {
	c, _, _ := newTestCoordinator(t)
	tempID := domain.NewTemporaryID()
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddTaskGroup(domain.TaskGroup{ID: tempID, Title: "Casa"})
		return s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: tempID})
	}, tempID)

	g, err := c.SaveTaskGroup(context.Background(), domain.TaskGroup{ID: tempID, Title: "Casa"})
	require.NoError(t, err)
	assert.Equal(t, "100", g.ID)

	tk, ok := c.Store().Current().TaskByID("20")
	require.True(t, ok)
	assert.Equal(t, "100", tk.GroupID)
}

func TestDeleteTaskGroupCascadesAndRollsBack(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddTaskGroup(domain.TaskGroup{ID: "2", Title: "Casa"})
		s = s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"})
		return s.AddTask(domain.Task{ID: "21", Title: "Informe", GroupID: "5"})
	})
	remote.Groups["2"] = domain.TaskGroup{ID: "2", Title: "Casa"}

	remote.DeleteGroupErr = errors.New("boom")
	err := c.DeleteTaskGroup(context.Background(), "2")
	require.Error(t, err)
	snap := c.Store().Current()
	_, ok := snap.GroupByID("2")
	assert.True(t, ok)
	assert.Len(t, snap.Tasks, 2)

	remote.DeleteGroupErr = nil
	require.NoError(t, c.DeleteTaskGroup(context.Background(), "2"))
	snap = c.Store().Current()
	assert.Empty(t, snap.TaskGroups)
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "21", snap.Tasks[0].ID)
}

func TestSaveTaskGroupCreatePromotionKeepsInFlightChildren(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)

	remote.CreateGroupHook = func() {
		snap := c.Store().Current()
		require.Len(t, snap.TaskGroups, 1)
		temp := snap.TaskGroups[0].ID
		tkID := domain.NewTemporaryID()
		c.Store().Apply(func(s store.Snapshot) store.Snapshot {
			return s.AddTask(domain.Task{ID: tkID, Title: "Comprar pan", GroupID: temp})
		}, tkID)
	}

	g, err := c.SaveTaskGroup(context.Background(), domain.TaskGroup{Title: "Casa"})
	require.NoError(t, err)

	snap := c.Store().Current()
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, g.ID, snap.Tasks[0].GroupID)
}

func TestDeleteTaskGroupDiscardsInFlightTaskEcho(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddTaskGroup(domain.TaskGroup{ID: "2", Title: "Casa"})
		return s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"})
	})
	remote.Groups["2"] = domain.TaskGroup{ID: "2", Title: "Casa"}
	remote.Tasks["20"] = domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"}

	remote.UpdateTaskHook = func() {
		require.NoError(t, c.DeleteTaskGroup(context.Background(), "2"))
	}

	_, err := c.ToggleTask(context.Background(), "20")
	require.NoError(t, err)

	snap := c.Store().Current()
	_, ok := snap.GroupByID("2")
	assert.False(t, ok)
	_, ok = snap.TaskByID("20")
	assert.False(t, ok, "the cascaded task stays deleted")
}

func TestHydrate(t *testing.T) {
	c, remote, _ := newTestCoordinator(t)
	remote.Calendars["1"] = domain.Calendar{ID: "1", Title: "Personal"}
	remote.Groups["2"] = domain.TaskGroup{ID: "2", Title: "Casa"}
	remote.Events["10"] = domain.Event{ID: "10", Title: "Dentista", CalendarID: "1"}
	remote.Tasks["20"] = domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"}

	require.NoError(t, c.Hydrate(context.Background()))

	snap := c.Store().Current()
	assert.Len(t, snap.Calendars, 1)
	assert.Len(t, snap.TaskGroups, 1)
	assert.Len(t, snap.Events, 1)
	assert.Len(t, snap.Tasks, 1)
}

func TestHydrateFailureLeavesStoreUntouched(t *testing.T) {
	c, remote, notify := newTestCoordinator(t)
	c.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddEvent(domain.Event{ID: "10", Title: "Dentista", CalendarID: "1"})
	})
	remote.ListErr = errors.New("boom")

	err := c.Hydrate(context.Background())
	require.Error(t, err)
	assert.Len(t, c.Store().Current().Events, 1)
	require.Len(t, notify.Errors, 1)
	assert.Equal(t, "No se pudieron cargar los datos", notify.Errors[0])
}

// Ensure the notifier double satisfies the port.
var _ domain.Notifier = (*testutil.MockNotifier)(nil)
