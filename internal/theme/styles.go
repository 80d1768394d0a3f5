package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)
)

// Table styles
var (
	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			Padding(0, 1)
)

// Pick status styles
var (
	ClosedStyle = lipgloss.NewStyle().
			Foreground(ColorClosed)

	NotPickedStyle = lipgloss.NewStyle().
			Foreground(ColorNotPicked)

	OpenStyle = lipgloss.NewStyle().
			Foreground(ColorOpen)

	PickedStyle = lipgloss.NewStyle().
			Foreground(ColorPicked)

	UnknownStyle = lipgloss.NewStyle().
			Foreground(ColorUnknown)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarn)
)
