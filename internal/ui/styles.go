package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - single lime accent over grays.
const (
	ColorLime     = "154" // Primary accent - fastest row, headers
	ColorWhite    = "255" // Important text
	ColorGray     = "245" // Secondary text, labels
	ColorDarkGray = "238" // Table borders
	ColorRed      = "196" // Errors
	ColorYellow   = "220" // Warnings
)

// Styles holds the styles used for report rendering.
type Styles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Fastest lipgloss.Style
	Border  lipgloss.Style
	Label   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the colored styles.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)).Padding(0, 1),
		Cell:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)).Padding(0, 1),
		Fastest: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)).Padding(0, 1),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDarkGray)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
	}
}

// NoColorStyles returns unstyled equivalents for plain output.
func NoColorStyles() Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Header:  cell,
		Cell:    cell,
		Fastest: cell,
		Border:  lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
	}
}
