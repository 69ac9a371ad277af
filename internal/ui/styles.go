package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active tab
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "208" // Orange - warnings
	ColorBar       = "236" // Dark gray - header/footer bars
)

// Styles contains shared style definitions used across the chrome and pages.
var Styles = struct {
	Title     lipgloss.Style // Bold accent - page titles
	Section   lipgloss.Style // Section headers
	Normal    lipgloss.Style // Normal text
	Muted     lipgloss.Style // Dimmed text
	Hint      lipgloss.Style // Help/hint text
	Selected  lipgloss.Style // Highlighted/selected items
	Empty     lipgloss.Style // Empty state text
	ErrorText lipgloss.Style // Inline error text

	TabActive   lipgloss.Style // Active nav tab
	TabInactive lipgloss.Style // Inactive nav tab
	HeaderBar   lipgloss.Style // Header bar background
	FooterBar   lipgloss.Style // Footer bar background
	Box         lipgloss.Style // Standard bordered box
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	ErrorText: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Background(lipgloss.Color(ColorBar)).
		Bold(true).
		Padding(0, 1),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Background(lipgloss.Color(ColorBar)).
		Padding(0, 1),
	HeaderBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)),
	FooterBar: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorBar)).
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
}
