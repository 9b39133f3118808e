package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TomasUhiaOtero/Kairos/internal/domain"
	"github.com/TomasUhiaOtero/Kairos/internal/grid"
	"github.com/TomasUhiaOtero/Kairos/internal/usecase"
)

// tickEvery keeps the header clock and the "today" highlight fresh.
const tickEvery = 30 * time.Second

// pickerOption is one row in the calendar/group picker.
type pickerOption struct {
	ID    string
	Title string
	Color string
}

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies
	coord    *usecase.Coordinator
	gestures *grid.Gestures
	clock    domain.Clock
	err      error

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	ed     editor

	// Picker state
	pickerOpts   []pickerOption
	pickerCursor int
	pickerItem   grid.Item

	// Navigation state
	focus    string // bare date the cursor is on
	today    string
	cursor   int // index into the focused day's items
	flash    string
	flashErr bool

	mode          Mode
	confirmAction ConfirmAction
	confirmItem   grid.Item
	width         int
	height        int
	hydrated      bool
}

// New creates a new TUI Model wired to the shared coordinator.
func New(coord *usecase.Coordinator, gestures *grid.Gestures, clock domain.Clock) *Model {
	today := todayOf(clock)
	return &Model{
		coord:    coord,
		gestures: gestures,
		clock:    clock,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		mode:     ModeMonth,
		focus:    today,
		today:    today,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.hydrate(), m.tick())
}

// hydrate returns a command that replaces the store with remote state.
func (m *Model) hydrate() tea.Cmd {
	return func() tea.Msg {
		if err := m.coord.Hydrate(context.Background()); err != nil {
			return MsgError{Err: err}
		}
		return MsgHydrated{}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return MsgTick{Now: t}
	})
}

// mutate wraps a coordinator call in a command. Rollback failures reach
// the status line through the notifier relay; anything else (validation,
// mostly) is flashed here so a rejected edit is never silent.
func (m *Model) mutate(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			var remote *domain.RemoteError
			if !errors.As(err, &remote) {
				return MsgFlash{Text: err.Error(), IsError: true}
			}
		}
		return MsgMutated{}
	}
}

// dayItems returns the projected items on the focused day.
func (m *Model) dayItems() []grid.Item {
	return grid.ItemsOn(m.coord.Store().Current(), m.focus)
}

// selectedItem returns the item under the cursor, if any.
func (m *Model) selectedItem() (grid.Item, bool) {
	items := m.dayItems()
	if len(items) == 0 {
		return grid.Item{}, false
	}
	if m.cursor >= len(items) {
		m.cursor = len(items) - 1
	}
	return items[m.cursor], true
}

// saveDraft turns the editor result into the right coordinator call.
func (m *Model) saveDraft(d grid.Draft) tea.Cmd {
	snap := m.coord.Store().Current()
	switch d.Kind {
	case grid.KindTask:
		parent := d.ParentID
		if parent == "" && len(snap.TaskGroups) > 0 {
			parent = snap.TaskGroups[0].ID
		}
		task := domain.Task{
			ID:        d.ID,
			GroupID:   parent,
			Title:     d.Title,
			StartDate: d.StartDate,
			StartTime: d.StartTime,
			Done:      d.Done,
		}
		if prior, ok := snap.TaskByID(d.ID); ok {
			task.Color = prior.Color
			task.Done = prior.Done
		}
		return m.mutate(func(ctx context.Context) error {
			_, err := m.coord.SaveTask(ctx, usecase.SaveTaskInput{Task: task})
			return err
		})
	default:
		parent := d.ParentID
		if parent == "" && len(snap.Calendars) > 0 {
			parent = snap.Calendars[0].ID
		}
		event := domain.Event{
			ID:         d.ID,
			CalendarID: parent,
			Title:      d.Title,
			StartDate:  d.StartDate,
			StartTime:  d.StartTime,
			EndDate:    d.EndDate,
			EndTime:    d.EndTime,
			AllDay:     d.AllDay,
		}
		if prior, ok := snap.EventByID(d.ID); ok {
			event.Description = prior.Description
			event.Color = prior.Color
		}
		return m.mutate(func(ctx context.Context) error {
			_, err := m.coord.SaveEvent(ctx, usecase.SaveEventInput{Event: event})
			return err
		})
	}
}

// deleteItem deletes the confirmed item.
func (m *Model) deleteItem(it grid.Item) tea.Cmd {
	return m.mutate(func(ctx context.Context) error {
		if it.Kind == grid.KindTask {
			return m.coord.DeleteTask(ctx, it.ID)
		}
		return m.coord.DeleteEvent(ctx, it.ID)
	})
}

// shiftItem moves the selected item by days whole days.
func (m *Model) shiftItem(it grid.Item, days int) tea.Cmd {
	snap := m.coord.Store().Current()
	return m.mutate(func(ctx context.Context) error {
		if it.Kind == grid.KindTask {
			t, ok := snap.TaskByID(it.ID)
			if !ok {
				return domain.ErrTaskNotFound
			}
			start := domain.CombineStamp(addDays(t.StartDate, days), t.StartTime)
			return m.gestures.Drop(ctx, grid.KindTask, it.ID, start, "", t.StartTime == "")
		}
		e, ok := snap.EventByID(it.ID)
		if !ok {
			return domain.ErrEventNotFound
		}
		start := domain.CombineStamp(addDays(e.StartDate, days), e.StartTime)
		end := domain.CombineStamp(addDays(e.EffectiveEndDate(), days), e.EndTime)
		return m.gestures.Drop(ctx, grid.KindEvent, it.ID, start, end, e.AllDay)
	})
}

// openPicker loads the calendar/group options for an item.
func (m *Model) openPicker(it grid.Item) {
	snap := m.coord.Store().Current()
	m.pickerOpts = m.pickerOpts[:0]
	current := ""
	if it.Kind == grid.KindTask {
		if t, ok := snap.TaskByID(it.ID); ok {
			current = t.GroupID
		}
		for _, g := range snap.TaskGroups {
			m.pickerOpts = append(m.pickerOpts, pickerOption{ID: g.ID, Title: g.Title, Color: g.Color})
		}
	} else {
		if e, ok := snap.EventByID(it.ID); ok {
			current = e.CalendarID
		}
		for _, c := range snap.Calendars {
			m.pickerOpts = append(m.pickerOpts, pickerOption{ID: c.ID, Title: c.Title, Color: c.Color})
		}
	}
	m.pickerCursor = 0
	for i, opt := range m.pickerOpts {
		if opt.ID == current {
			m.pickerCursor = i
		}
	}
	m.pickerItem = it
	m.mode = ModePicker
}

// applyPicker reparents the picked item. Tasks go through the
// compensated reassign path; events are a plain save with a new
// calendar id.
func (m *Model) applyPicker() tea.Cmd {
	if len(m.pickerOpts) == 0 {
		return nil
	}
	target := m.pickerOpts[m.pickerCursor].ID
	it := m.pickerItem
	snap := m.coord.Store().Current()

	if it.Kind == grid.KindTask {
		return m.mutate(func(ctx context.Context) error {
			_, err := m.coord.ReassignTask(ctx, it.ID, target)
			return err
		})
	}
	e, ok := snap.EventByID(it.ID)
	if !ok {
		return nil
	}
	e.CalendarID = target
	return m.mutate(func(ctx context.Context) error {
		_, err := m.coord.SaveEvent(ctx, usecase.SaveEventInput{Event: e})
		return err
	})
}
