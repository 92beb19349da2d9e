package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the lipgloss styles used by the menu and scoreboard screens.
// The game board itself is colored per cell through core.Color.
type Theme struct {
	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemSolved  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuBest        lipgloss.Style

	// Scoreboard styles
	ScoreTitle     lipgloss.Style
	TableBorder    lipgloss.Color
	TableSelectedF lipgloss.Color
	TableSelectedB lipgloss.Color
	EmptyNotice    lipgloss.Style

	// Shared
	Controls lipgloss.Style
	Warning  lipgloss.Style
}

// DefaultTheme returns the default farmyard palette.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Yolk yellow
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
		MenuItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),            // Grass green
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuBest:        lipgloss.NewStyle().Foreground(lipgloss.Color("229")),

		ScoreTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).MarginBottom(1),
		TableBorder:    lipgloss.Color("240"),
		TableSelectedF: lipgloss.Color("229"),
		TableSelectedB: lipgloss.Color("94"), // Brown
		EmptyNotice:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),

		Controls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.MenuItemSolved = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.MenuBest = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.TableSelectedB = lipgloss.Color("238")
	theme.Warning = lipgloss.NewStyle().Underline(true)
	return theme
}

// ThemeByName returns a theme preset; unknown names fall back to the default.
func ThemeByName(name string) Theme {
	if name == "mono" || name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// Global theme variable (can be changed at startup)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
