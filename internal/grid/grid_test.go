package grid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
	"github.com/TomasUhiaOtero/Kairos/internal/testutil"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

func seededSnapshot() store.Snapshot {
	var s store.Snapshot
	s = s.AddCalendar(domain.Calendar{ID: "1", Title: "Personal", Color: "#3788d8"})
	s = s.AddTaskGroup(domain.TaskGroup{ID: "2", Title: "Casa", Color: "#16a34a"})
	s = s.AddEvent(domain.Event{
		ID: "10", Title: "Dentista", CalendarID: "1",
		StartDate: "2025-08-25", StartTime: "09:00", EndDate: "2025-08-25", EndTime: "10:00",
	})
	s = s.AddEvent(domain.Event{
		ID: "11", Title: "Viaje", CalendarID: "99", AllDay: true,
		StartDate: "2025-08-24", EndDate: "2025-08-26",
	})
	s = s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2", StartDate: "2025-08-25"})
	s = s.AddTask(domain.Task{ID: "21", Title: "Sin fecha", GroupID: "2"})
	return s
}

func TestProjectColorsAndFlags(t *testing.T) {
	items := Project(seededSnapshot())
	require.Len(t, items, 3, "dateless tasks stay off the grid")

	byID := map[string]Item{}
	for _, it := range items {
		byID[string(it.Kind)+it.ID] = it
	}

	ev := byID["event10"]
	assert.Equal(t, "#3788d830", ev.Palette.Background, "event fill is the calendar color, translucent")
	assert.Equal(t, "#3788d800", ev.Palette.Border)
	assert.Equal(t, "#3788d8", ev.Palette.Text)
	assert.True(t, ev.StartEditable)
	assert.True(t, ev.DurationEditable)
	assert.Equal(t, "2025-08-25T09:00", ev.Start)
	assert.Equal(t, "2025-08-25T10:00", ev.End)

	orphan := byID["event11"]
	assert.Equal(t, fallbackPalette, orphan.Palette, "unknown calendar renders grey")
	assert.Equal(t, "2025-08-26", orphan.End, "all-day end date is not advanced")

	tk := byID["task20"]
	assert.Equal(t, "#ffffff00", tk.Palette.Background, "task fill is transparent")
	assert.Equal(t, "#16a34a", tk.Palette.Border)
	assert.True(t, tk.StartEditable)
	assert.False(t, tk.DurationEditable, "tasks never resize")
	assert.True(t, tk.AllDay, "timeless task renders all-day")
}

func TestProjectOrdering(t *testing.T) {
	items := Project(seededSnapshot())
	assert.Equal(t, "11", items[0].ID)
	assert.Equal(t, "20", items[1].ID, "bare date sorts before timed stamps of the same day")
	assert.Equal(t, "10", items[2].ID)
}

func TestItemsOnSpansMultiDayEvents(t *testing.T) {
	snap := seededSnapshot()
	on := ItemsOn(snap, "2025-08-26")
	require.Len(t, on, 1)
	assert.Equal(t, "11", on[0].ID)

	on = ItemsOn(snap, "2025-08-25")
	assert.Len(t, on, 3)
}

func newGestures(t *testing.T) (*Gestures, *usecase.Coordinator, *testutil.MockRemote) {
	t.Helper()
	remote := testutil.NewMockRemote()
	coord := usecase.NewCoordinator(store.New(), remote, &testutil.MockNotifier{}, "7")
	return NewGestures(coord), coord, remote
}

func TestDropEventTranslatesToMove(t *testing.T) {
	g, coord, remote := newGestures(t)
	coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddEvent(domain.Event{
			ID: "10", Title: "Dentista", CalendarID: "1",
			StartDate: "2025-08-25", StartTime: "09:00", EndDate: "2025-08-25", EndTime: "10:00",
		})
	}, "10")
	remote.Events["10"] = domain.Event{ID: "10", Title: "Dentista"}

	err := g.Drop(context.Background(), KindEvent, "10", "2025-08-26T11:00", "2025-08-26T12:00", false)
	require.NoError(t, err)

	ev, ok := coord.Store().Current().EventByID("10")
	require.True(t, ok)
	assert.Equal(t, "2025-08-26", ev.StartDate)
	assert.Equal(t, "11:00", ev.StartTime)
	assert.Equal(t, "12:00", ev.EndTime)
}

func TestDropTaskKeepsGroup(t *testing.T) {
	g, coord, remote := newGestures(t)
	coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2", StartDate: "2025-08-25"})
	}, "20")
	remote.Tasks["20"] = domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"}

	err := g.Drop(context.Background(), KindTask, "20", "2025-08-27", "", false)
	require.NoError(t, err)

	tk, ok := coord.Store().Current().TaskByID("20")
	require.True(t, ok)
	assert.Equal(t, "2025-08-27", tk.StartDate)
	assert.Equal(t, "2", tk.GroupID)
	assert.Equal(t, 0, remote.CallsTo("CreateTaskInGroup"), "a date drop is a plain patch")
}

func TestToggleGesture(t *testing.T) {
	g, coord, remote := newGestures(t)
	coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"})
	}, "20")
	remote.Tasks["20"] = domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"}

	require.NoError(t, g.Toggle(context.Background(), "20"))
	tk, _ := coord.Store().Current().TaskByID("20")
	assert.True(t, tk.Done)
}

func TestDrafts(t *testing.T) {
	g, coord, _ := newGestures(t)
	coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddEvent(domain.Event{
			ID: "10", Title: "Dentista", CalendarID: "1",
			StartDate: "2025-08-25", StartTime: "09:00",
		})
	}, "10")

	d := g.DraftForDate("2025-08-30")
	assert.Equal(t, "2025-08-30", d.StartDate)
	assert.True(t, d.AllDay)
	assert.Empty(t, d.ID)

	d, ok := g.DraftForItem(KindEvent, "10")
	require.True(t, ok)
	assert.Equal(t, "Dentista", d.Title)
	assert.Equal(t, "2025-08-25", d.EndDate, "missing end falls back to start")

	_, ok = g.DraftForItem(KindTask, "404")
	assert.False(t, ok)
}
