package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared with the desktop dial.
var (
	colorAccent = lipgloss.Color("#7e5bef")
	colorMuted  = lipgloss.Color("#808080")
	colorLight  = lipgloss.Color("#ffffff")
)

var (
	appStyle       = lipgloss.NewStyle().Padding(1, 2)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	clockStyle     = lipgloss.NewStyle().Bold(true).Padding(1, 0)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLight).Background(colorAccent).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
	bannerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginTop(1)
)
