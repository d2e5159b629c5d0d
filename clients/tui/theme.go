// Package tui provides the interactive terminal todo list.
package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors (light/dark terminal detection).
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#6B21A8", Dark: "#D8A6FF"}
	ColorDone   = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#7EE2B8"}
	ColorError  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF6B6B"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
)

// Component styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			MarginBottom(1)

	InputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	InputFocusedBorderStyle = InputBorderStyle.
				BorderForeground(ColorAccent)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TaskStyle = lipgloss.NewStyle()

	CompletedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true)

	CheckedStyle = lipgloss.NewStyle().
			Foreground(ColorDone).
			Bold(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)
