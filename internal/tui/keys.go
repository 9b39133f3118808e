package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Day navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Month navigation
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding

	// Item selection within the focused day
	NextItem key.Binding

	// Editing
	NewEvent key.Binding
	NewTask  key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Toggle   key.Binding // Flip a task's done state
	ShiftFwd key.Binding // Move selected item one day forward
	ShiftBck key.Binding // Move selected item one day back
	Reassign key.Binding // Pick a new calendar/group for the item

	// View
	Refresh key.Binding
	Help    key.Binding

	// General
	Quit    key.Binding
	Escape  key.Binding
	Confirm key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "semana anterior"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "semana siguiente"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "día anterior"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "día siguiente"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("pgup", "H"),
			key.WithHelp("H", "mes anterior"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("pgdown", "L"),
			key.WithHelp("L", "mes siguiente"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "hoy"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "siguiente elemento"),
		),
		NewEvent: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "nuevo evento"),
		),
		NewTask: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "nueva tarea"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "editar"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "eliminar"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x", "completar"),
		),
		ShiftFwd: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "mover +1 día"),
		),
		ShiftBck: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "mover -1 día"),
		),
		Reassign: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "cambiar grupo"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "recargar"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ayuda"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "salir"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancelar"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirmar"),
		),
	}
}

// ShortHelp returns keybindings to show in the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.NewEvent, k.NewTask, k.Edit, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextItem},        // Navigation
		{k.PrevMonth, k.NextMonth, k.Today},                // Month
		{k.NewEvent, k.NewTask, k.Edit, k.Delete},          // Editing
		{k.Toggle, k.ShiftFwd, k.ShiftBck, k.Reassign},     // Item actions
		{k.Refresh, k.Help, k.Quit},                        // View & general
	}
}
