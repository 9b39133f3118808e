package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TomasUhiaOtero/Kairos/internal/grid"
)

// flashWindow is how long a notification stays on the status line.
const flashWindow = 5 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case MsgHydrated:
		m.hydrated = true
		m.err = nil
		return m, nil

	case MsgMutated:
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil

	case MsgFlash:
		m.flash = msg.Text
		m.flashErr = msg.IsError
		return m, tea.Tick(flashWindow, func(time.Time) tea.Msg {
			return MsgClearFlash{}
		})

	case MsgClearFlash:
		m.flash = ""
		m.flashErr = false
		return m, nil

	case MsgTick:
		m.today = todayOf(m.clock)
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeEditor:
		return m.updateEditorKey(msg)
	case ModeConfirm:
		return m.updateConfirmKey(msg)
	case ModePicker:
		return m.updatePickerKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Escape, m.keys.Help, m.keys.Quit) {
			m.mode = ModeMonth
		}
		return m, nil
	case ModeMonth:
		return m.updateMonthKey(msg)
	}
	return m, nil
}

func (m *Model) updateMonthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.setFocus(addDays(m.focus, -7))
	case key.Matches(msg, m.keys.Down):
		m.setFocus(addDays(m.focus, 7))
	case key.Matches(msg, m.keys.Left):
		m.setFocus(addDays(m.focus, -1))
	case key.Matches(msg, m.keys.Right):
		m.setFocus(addDays(m.focus, 1))
	case key.Matches(msg, m.keys.PrevMonth):
		m.setFocus(addMonths(m.focus, -1))
	case key.Matches(msg, m.keys.NextMonth):
		m.setFocus(addMonths(m.focus, 1))
	case key.Matches(msg, m.keys.Today):
		m.setFocus(m.today)

	case key.Matches(msg, m.keys.NextItem):
		if n := len(m.dayItems()); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}

	case key.Matches(msg, m.keys.NewEvent):
		m.ed = newEditor(m.gestures.DraftForDate(m.focus))
		m.mode = ModeEditor

	case key.Matches(msg, m.keys.NewTask):
		d := grid.Draft{Kind: grid.KindTask, StartDate: m.focus}
		m.ed = newEditor(d)
		m.mode = ModeEditor

	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selectedItem(); ok {
			if d, found := m.gestures.DraftForItem(it.Kind, it.ID); found {
				m.ed = newEditor(d)
				m.mode = ModeEditor
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selectedItem(); ok {
			m.confirmAction = ConfirmDelete
			m.confirmItem = it
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selectedItem(); ok && it.Kind == grid.KindTask {
			id := it.ID
			return m, m.mutate(func(ctx context.Context) error {
				return m.gestures.Toggle(ctx, id)
			})
		}

	case key.Matches(msg, m.keys.ShiftFwd):
		if it, ok := m.selectedItem(); ok {
			return m, m.shiftItem(it, 1)
		}
	case key.Matches(msg, m.keys.ShiftBck):
		if it, ok := m.selectedItem(); ok {
			return m, m.shiftItem(it, -1)
		}

	case key.Matches(msg, m.keys.Reassign):
		if it, ok := m.selectedItem(); ok {
			m.openPicker(it)
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.hydrate()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
	}
	return m, nil
}

func (m *Model) setFocus(date string) {
	m.focus = date
	m.cursor = 0
}

func (m *Model) updateEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeMonth
		return m, nil
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyTab:
		if m.ed.next() {
			m.mode = ModeMonth
			return m, m.saveDraft(m.ed.result())
		}
		return m, nil
	case msg.Type == tea.KeyShiftTab:
		m.ed.prev()
		return m, nil
	}
	return m, m.ed.update(msg)
}

func (m *Model) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		it := m.confirmItem
		m.mode = ModeMonth
		m.confirmAction = ConfirmNone
		return m, m.deleteItem(it)
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.mode = ModeMonth
		m.confirmAction = ConfirmNone
	}
	return m, nil
}

func (m *Model) updatePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.pickerCursor < len(m.pickerOpts)-1 {
			m.pickerCursor++
		}
	case key.Matches(msg, m.keys.Edit):
		m.mode = ModeMonth
		return m, m.applyPicker()
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeMonth
	}
	return m, nil
}
