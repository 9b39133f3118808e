// Package tui provides the terminal user interface for Kairos: a month
// grid plus agenda panels, driven entirely by the shared store. Every
// edit goes through the mutation coordinator, so the grid updates
// optimistically and rolls back on remote failure like any other shell.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeMonth   Mode = iota // Default month-grid navigation
	ModeEditor              // Item editor (create or edit)
	ModeConfirm             // Confirmation dialog
	ModePicker              // Calendar/group picker for the selected item
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "month"
	case ModeEditor:
		return "editor"
	case ModeConfirm:
		return "confirm"
	case ModePicker:
		return "picker"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	return m == ModeEditor
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete the selected item
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "eliminar"
	}
	return ""
}
