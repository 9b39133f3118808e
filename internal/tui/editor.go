package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/TomasUhiaOtero/Kairos/internal/grid"
)

// editorField indexes the editor's inputs. Events use all of them;
// tasks stop after fieldStartTime.
type editorField int

const (
	fieldTitle editorField = iota
	fieldStartDate
	fieldStartTime
	fieldEndDate
	fieldEndTime
)

var fieldLabels = [...]string{
	fieldTitle:     "Título",
	fieldStartDate: "Fecha inicio",
	fieldStartTime: "Hora inicio",
	fieldEndDate:   "Fecha fin",
	fieldEndTime:   "Hora fin",
}

// editor is the create/edit form state. It is rebuilt from a Draft each
// time the editor opens, so stale input never leaks between items.
type editor struct {
	draft  grid.Draft
	inputs []textinput.Model
	focus  editorField
}

func newEditor(draft grid.Draft) editor {
	n := int(fieldEndTime) + 1
	if draft.Kind == grid.KindTask {
		n = int(fieldStartTime) + 1
	}

	inputs := make([]textinput.Model, n)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Título"
	inputs[fieldTitle].SetValue(draft.Title)
	inputs[fieldStartDate].Placeholder = "AAAA-MM-DD"
	inputs[fieldStartDate].SetValue(draft.StartDate)
	inputs[fieldStartTime].Placeholder = "HH:MM (vacío = todo el día)"
	inputs[fieldStartTime].SetValue(draft.StartTime)
	if draft.Kind == grid.KindEvent {
		inputs[fieldEndDate].Placeholder = "AAAA-MM-DD"
		inputs[fieldEndDate].SetValue(draft.EndDate)
		inputs[fieldEndTime].Placeholder = "HH:MM"
		inputs[fieldEndTime].SetValue(draft.EndTime)
	}

	inputs[fieldTitle].Focus()
	return editor{draft: draft, inputs: inputs}
}

// next advances focus and reports whether it wrapped past the last
// field, which the caller treats as submit.
func (e *editor) next() bool {
	e.inputs[e.focus].Blur()
	e.focus++
	if int(e.focus) >= len(e.inputs) {
		e.focus = fieldTitle
		e.inputs[e.focus].Focus()
		return true
	}
	e.inputs[e.focus].Focus()
	return false
}

func (e *editor) prev() {
	e.inputs[e.focus].Blur()
	if e.focus == fieldTitle {
		e.focus = editorField(len(e.inputs) - 1)
	} else {
		e.focus--
	}
	e.inputs[e.focus].Focus()
}

func (e *editor) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd
}

// result folds the input values back into the draft.
func (e *editor) result() grid.Draft {
	d := e.draft
	d.Title = e.inputs[fieldTitle].Value()
	d.StartDate = e.inputs[fieldStartDate].Value()
	d.StartTime = e.inputs[fieldStartTime].Value()
	if d.Kind == grid.KindEvent {
		d.EndDate = e.inputs[fieldEndDate].Value()
		d.EndTime = e.inputs[fieldEndTime].Value()
		if d.EndDate == "" {
			d.EndDate = d.StartDate
		}
		d.AllDay = d.StartTime == "" && d.EndTime == ""
	}
	return d
}
