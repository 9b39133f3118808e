package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/TomasUhiaOtero/Kairos/internal/grid"
	"github.com/TomasUhiaOtero/Kairos/internal/store"
)

// itemsPerCell caps how many chips a day cell shows before "+n".
const itemsPerCell = 3

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Cargando..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeMonth, ModeEditor, ModeConfirm, ModePicker:
		content = m.viewMain()
	}
	return m.styles.App.Render(content)
}

func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewMonth())
	b.WriteString("\n")
	b.WriteString(m.viewAgenda())

	switch m.mode {
	case ModeMonth, ModeHelp:
	case ModeEditor:
		b.WriteString("\n")
		b.WriteString(m.viewEditor())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModePicker:
		b.WriteString("\n")
		b.WriteString(m.viewPicker())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("Kairos · " + monthTitle(m.focus))
	clock := m.styles.Footer.Render(m.clock.Now().Format("15:04"))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(clock) - 4
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + clock
}

// viewMonth renders the month grid, one row per week, Monday first.
func (m *Model) viewMonth() string {
	cellWidth := (m.width - 4) / 7
	if cellWidth < 10 {
		cellWidth = 10
	}
	inner := cellWidth - 2

	var b strings.Builder
	for i, name := range weekdayNames {
		pad := inner + 2 - len([]rune(name))
		if i == 6 {
			pad = 0
		}
		b.WriteString(m.styles.Weekday.Render(name))
		if pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteString("\n")

	snap := m.coord.Store().Current()
	days := monthGrid(m.focus)
	for week := 0; week < len(days)/7; week++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			date := days[week*7+col]
			cells = append(cells, m.viewDayCell(snap, date, inner))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewDayCell(snap store.Snapshot, date string, inner int) string {
	day := strings.TrimPrefix(date[8:], "0")
	num := m.styles.DayNumber.Render(day)
	if !sameMonth(date, m.focus) {
		num = m.styles.DayOther.Render(day)
	}

	lines := []string{num}
	items := grid.ItemsOn(snap, date)
	shown := items
	if len(shown) > itemsPerCell {
		shown = shown[:itemsPerCell]
	}
	for i, it := range shown {
		lines = append(lines, m.renderChip(it, inner, date == m.focus && i == m.cursor))
	}
	if extra := len(items) - len(shown); extra > 0 {
		lines = append(lines, m.styles.Footer.Render(fmt.Sprintf("+%d más", extra)))
	}
	for len(lines) < itemsPerCell+1 {
		lines = append(lines, "")
	}

	cell := m.styles.DayCell
	switch {
	case date == m.focus:
		cell = m.styles.DayFocused
	case date == m.today:
		cell = m.styles.DayToday
	}
	return cell.Width(inner).Render(strings.Join(lines, "\n"))
}

// renderChip renders one item line inside a day cell, colored with the
// projection's palette.
func (m *Model) renderChip(it grid.Item, width int, selected bool) string {
	marker := "·"
	if it.Kind == grid.KindTask {
		marker = "☐"
		if it.Done {
			marker = "☑"
		}
	}
	text := truncate(marker+" "+it.Title, width)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Palette.Text))
	switch {
	case it.Done:
		style = m.styles.ItemDone
	case it.Pending:
		style = m.styles.ItemPending
	}
	if selected {
		style = style.Reverse(true)
	}
	return style.Render(text)
}

// viewAgenda renders the HOY / ESTA SEMANA / SIN FECHA panels.
func (m *Model) viewAgenda() string {
	snap := m.coord.Store().Current()
	var b strings.Builder

	var overdue []grid.Item
	for _, t := range snap.Tasks {
		if t.Overdue(m.today) {
			overdue = append(overdue, grid.Item{
				Kind:  grid.KindTask,
				ID:    t.ID,
				Title: t.Title,
				Start: t.StartDate,
			})
		}
	}
	if len(overdue) > 0 {
		b.WriteString(m.styles.PanelTitle.Render(m.styles.ErrorMsg.Render("ATRASADAS")) + "\n")
		b.WriteString(m.viewAgendaItems(overdue))
	}

	b.WriteString(m.styles.PanelTitle.Render("HOY") + "\n")
	b.WriteString(m.viewAgendaItems(grid.ItemsOn(snap, m.today)))

	monday, sunday := weekRange(m.today)
	var week []grid.Item
	seen := map[string]bool{}
	for d := monday; d <= sunday; d = addDays(d, 1) {
		for _, it := range grid.ItemsOn(snap, d) {
			k := string(it.Kind) + it.ID
			if !seen[k] {
				seen[k] = true
				week = append(week, it)
			}
		}
	}
	b.WriteString(m.styles.PanelTitle.Render("ESTA SEMANA") + "\n")
	b.WriteString(m.viewAgendaItems(week))

	var dateless []grid.Item
	for _, t := range snap.Tasks {
		if !t.HasDate() {
			dateless = append(dateless, grid.Item{
				Kind:  grid.KindTask,
				ID:    t.ID,
				Title: t.Title,
				Done:  t.Done,
			})
		}
	}
	b.WriteString(m.styles.PanelTitle.Render("SIN FECHA") + "\n")
	b.WriteString(m.viewAgendaItems(dateless))

	return b.String()
}

func (m *Model) viewAgendaItems(items []grid.Item) string {
	if len(items) == 0 {
		return m.styles.PanelItem.Render(m.styles.Footer.Render("— nada —")) + "\n"
	}
	var b strings.Builder
	for _, it := range items {
		line := it.Title
		if it.Start != "" {
			line = it.Start + "  " + line
		}
		if it.Kind == grid.KindTask {
			box := "☐"
			if it.Done {
				box = "☑"
			}
			line = box + " " + line
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Palette.Text))
		if it.Done {
			style = m.styles.ItemDone
		}
		if it.Palette.Text == "" {
			style = m.styles.Footer
		}
		b.WriteString(m.styles.PanelItem.Render(style.Render(line)) + "\n")
	}
	return b.String()
}

func (m *Model) viewEditor() string {
	title := "Nuevo"
	if m.ed.draft.ID != "" {
		title = "Editar"
	}
	if m.ed.draft.Kind == grid.KindTask {
		title += " · tarea"
	} else {
		title += " · evento"
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(title) + "\n")
	for i, in := range m.ed.inputs {
		b.WriteString(m.styles.InputLabel.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString(m.styles.DialogPrompt.Render("enter siguiente · esc cancelar"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewConfirmDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("¿Eliminar \""+m.confirmItem.Title+"\"?") + "\n")
	b.WriteString(m.styles.DialogPrompt.Render("y confirmar · esc cancelar"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewPicker() string {
	label := "Calendario"
	if m.pickerItem.Kind == grid.KindTask {
		label = "Grupo"
	}
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(label+" para \""+m.pickerItem.Title+"\"") + "\n")
	for i, opt := range m.pickerOpts {
		cursor := "  "
		if i == m.pickerCursor {
			cursor = "> "
		}
		line := cursor + opt.Title
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(opt.Color))
		if i == m.pickerCursor {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line) + "\n")
	}
	b.WriteString(m.styles.DialogPrompt.Render("enter elegir · esc cancelar"))
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) viewHelp() string {
	return m.styles.Help.Render(m.help.FullHelpView(m.keys.FullHelp()))
}

func (m *Model) viewFooter() string {
	if m.flash != "" {
		style := m.styles.InfoMsg
		if m.flashErr {
			style = m.styles.ErrorMsg
		}
		return style.Render(m.flash)
	}
	if !m.hydrated {
		return m.styles.Footer.Render("Cargando datos del servidor...")
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
