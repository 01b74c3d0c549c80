package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorMuted   = lipgloss.Color("#626262")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF4672")
	ColorBorder  = lipgloss.Color("#3C3C3C")

	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(ColorPrimary).
			Padding(0, 1)

	GroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginTop(1)

	LabelStyle        = lipgloss.NewStyle().Width(32)
	FocusedLabelStyle = LabelStyle.Foreground(ColorPrimary).Bold(true)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Width(18)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	TableBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder)

	HelpStyle   = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
	StatusStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)
