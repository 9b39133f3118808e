package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/grid"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
	"github.com/TomasUhiaOtero/Kairos/internal/testutil"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

func newTestModel(t *testing.T) (*Model, *testutil.MockRemote) {
	t.Helper()
	remote := testutil.NewMockRemote()
	clock := &testutil.MockClock{NowTime: time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)}
	coord := usecase.NewCoordinator(store.New(), remote, &testutil.MockNotifier{}, "7")
	m := New(coord, grid.NewGestures(coord), clock)
	m.width = 120
	m.height = 40
	return m, remote
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNavigationKeys(t *testing.T) {
	m, _ := newTestModel(t)
	require.Equal(t, "2025-08-25", m.focus)

	m.Update(keyRune('l'))
	assert.Equal(t, "2025-08-26", m.focus)
	m.Update(keyRune('j'))
	assert.Equal(t, "2025-09-02", m.focus)
	m.Update(keyRune('k'))
	m.Update(keyRune('h'))
	assert.Equal(t, "2025-08-25", m.focus)

	m.Update(keyRune('L'))
	assert.Equal(t, "2025-09-25", m.focus)
	m.Update(keyRune('t'))
	assert.Equal(t, "2025-08-25", m.focus)
}

func TestNewTaskOpensEditor(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(keyRune('N'))
	require.Equal(t, ModeEditor, m.mode)
	assert.Equal(t, grid.KindTask, m.ed.draft.Kind)
	assert.Equal(t, "2025-08-25", m.ed.draft.StartDate)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, ModeMonth, m.mode)
}

func TestEditorSubmitCreatesEvent(t *testing.T) {
	m, _ := newTestModel(t)
	m.coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddCalendar(domain.Calendar{ID: "1", Title: "Personal", Color: "#3788d8"})
	}, "1")

	m.Update(keyRune('n'))
	require.Equal(t, ModeEditor, m.mode)
	for _, r := range "Dentista" {
		m.Update(keyRune(r))
	}

	// Enter through the remaining fields; the last one submits.
	var cmd tea.Cmd
	for i := 0; i < len(m.ed.inputs); i++ {
		_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.NotNil(t, cmd)
	require.Equal(t, ModeMonth, m.mode)

	msg := cmd()
	assert.IsType(t, MsgMutated{}, msg)

	snap := m.coord.Store().Current()
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "Dentista", snap.Events[0].Title)
	assert.Equal(t, "1", snap.Events[0].CalendarID)
	assert.True(t, snap.Events[0].AllDay)
}

func TestToggleKeyFlipsTask(t *testing.T) {
	m, remote := newTestModel(t)
	m.coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2", StartDate: "2025-08-25"})
	}, "20")
	remote.Tasks["20"] = domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"}

	_, cmd := m.Update(keyRune('x'))
	require.NotNil(t, cmd)
	assert.IsType(t, MsgMutated{}, cmd())

	tk, ok := m.coord.Store().Current().TaskByID("20")
	require.True(t, ok)
	assert.True(t, tk.Done)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, remote := newTestModel(t)
	m.coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		return s.AddEvent(domain.Event{ID: "10", Title: "Dentista", CalendarID: "1", StartDate: "2025-08-25", EndDate: "2025-08-25"})
	}, "10")
	remote.Events["10"] = domain.Event{ID: "10", Title: "Dentista"}

	m.Update(keyRune('d'))
	require.Equal(t, ModeConfirm, m.mode)

	// Escape keeps the event.
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeMonth, m.mode)
	assert.Len(t, m.coord.Store().Current().Events, 1)

	m.Update(keyRune('d'))
	_, cmd := m.Update(keyRune('y'))
	require.NotNil(t, cmd)
	cmd()
	assert.Empty(t, m.coord.Store().Current().Events)
}

func TestFlashLifecycle(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(MsgFlash{Text: "No se pudo guardar el evento", IsError: true})
	require.NotNil(t, cmd, "a flash schedules its own expiry")
	assert.Equal(t, "No se pudo guardar el evento", m.flash)
	assert.True(t, m.flashErr)

	m.Update(MsgClearFlash{})
	assert.Empty(t, m.flash)
}

func TestPickerReassignsTask(t *testing.T) {
	m, remote := newTestModel(t)
	m.coord.Store().Apply(func(s store.Snapshot) store.Snapshot {
		s = s.AddTaskGroup(domain.TaskGroup{ID: "2", Title: "Casa", Color: "#16a34a"})
		s = s.AddTaskGroup(domain.TaskGroup{ID: "3", Title: "Trabajo", Color: "#dc2626"})
		return s.AddTask(domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2", StartDate: "2025-08-25"})
	}, "20")
	remote.Tasks["20"] = domain.Task{ID: "20", Title: "Comprar pan", GroupID: "2"}

	m.Update(keyRune('g'))
	require.Equal(t, ModePicker, m.mode)
	require.Len(t, m.pickerOpts, 2)
	assert.Equal(t, 0, m.pickerCursor, "picker opens on the current group")

	m.Update(keyRune('j'))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	tk, ok := m.coord.Store().Current().TaskByID("20")
	require.True(t, ok)
	assert.Equal(t, "3", tk.GroupID)
}

func TestViewRendersWithoutSize(t *testing.T) {
	m, _ := newTestModel(t)
	m.width = 0
	assert.Equal(t, "Cargando...", m.View())
}
