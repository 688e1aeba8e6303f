package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Entry styles
	Entry = lipgloss.NewStyle()

	EntryFile = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	EntryCursor = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	EntryMarked = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Entry indicators
	CursorMark   = "▌"
	SelectedMark = "● "
	NoMark       = "  "

	// Filter prompt
	Prompt = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Counter = lipgloss.NewStyle().
		Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Filter matches inside an entry
	SearchMatch = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
