package dialog

import "github.com/charmbracelet/lipgloss"

// Palette - Oasis Lagoon
var (
	ColorBg      = lipgloss.Color("#101825")
	ColorSurface = lipgloss.Color("#22385C")
	ColorBorder  = lipgloss.Color("#264870")
	ColorText    = lipgloss.Color("#D9E6FA")
	ColorAccent  = lipgloss.Color("#58B8FD")
	ColorCyan    = lipgloss.Color("#68C0B6")
	ColorComment = lipgloss.Color("#4D88A7")
)

// Dialog Styles
var (
	DialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCyan).
			Padding(0, 1)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)

	DialogTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DialogButtonStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorSurface).
				Padding(0, 1)

	// Focused button
	DialogButtonActiveStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorAccent).
				Bold(true).
				Padding(0, 1)

	DialogHintStyle = lipgloss.NewStyle().
			Foreground(ColorComment).
			Italic(true)

	DialogInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder)

	DialogInputFocusedStyle = DialogInputStyle.
				BorderForeground(ColorAccent)
)

// minButtonCells is the narrowest button caption area, so short captions
// like "OK" still give a comfortable target.
const minButtonCells = 6
