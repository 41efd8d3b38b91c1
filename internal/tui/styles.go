package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")

	// Invalid date cells, light-red on dark-red like the web grid
	InvalidFg = lipgloss.Color("#d32f2f")
	InvalidBg = lipgloss.Color("#ffebee")

	SuccessFg = lipgloss.Color("#95E1A3")
	WarnFg    = lipgloss.Color("#FFE66D")
)

// Styles
var (
	// Screen headers
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	// Welcome screen decoration
	BackgroundStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	// Grid rows
	RowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	RowSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	InvalidCellStyle = lipgloss.NewStyle().
				Foreground(InvalidFg).
				Background(InvalidBg).
				Bold(true)

	ManualRowStyle = lipgloss.NewStyle().
			Foreground(WarnFg)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessFg)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(InvalidFg)
)
