package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	Today    lipgloss.Color
	Focus    lipgloss.Color
	OtherDay lipgloss.Color
	Done     lipgloss.Color
	Pending  lipgloss.Color
}{
	Primary:    lipgloss.Color("#3788D8"), // Calendar blue
	Secondary:  lipgloss.Color("#64748B"), // Slate
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	Today:    lipgloss.Color("#FFEAA7"), // Yellow highlight
	Focus:    lipgloss.Color("#74B9FF"), // Light blue
	OtherDay: lipgloss.Color("#636E72"), // Dimmed spill days
	Done:     lipgloss.Color("#636E72"), // Struck-through tasks
	Pending:  lipgloss.Color("#A29BFE"), // In-flight optimistic items
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header (month title + clock)
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Month grid
	Weekday     lipgloss.Style
	DayCell     lipgloss.Style
	DayFocused  lipgloss.Style
	DayToday    lipgloss.Style
	DayOther    lipgloss.Style
	DayNumber   lipgloss.Style
	ItemDone    lipgloss.Style
	ItemPending lipgloss.Style

	// Agenda panels
	PanelTitle lipgloss.Style
	PanelItem  lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style
	InputLabel  lipgloss.Style

	// Status line
	ErrorMsg  lipgloss.Style
	InfoMsg   lipgloss.Style
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Help
	Help lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Weekday: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		DayCell: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Muted),

		DayFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(Colors.Focus),

		DayToday: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(Colors.Today),

		DayOther: lipgloss.NewStyle().
			Foreground(Colors.OtherDay),

		DayNumber: lipgloss.NewStyle().
			Bold(true),

		ItemDone: lipgloss.NewStyle().
			Foreground(Colors.Done).
			Strikethrough(true),

		ItemPending: lipgloss.NewStyle().
			Foreground(Colors.Pending).
			Italic(true),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary).
			MarginTop(1),

		PanelItem: lipgloss.NewStyle().
			PaddingLeft(2),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(1, 2),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		InputPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		InputLabel: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Width(14),

		ErrorMsg: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),

		InfoMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		Help: lipgloss.NewStyle().
			Padding(1, 2),
	}
}
