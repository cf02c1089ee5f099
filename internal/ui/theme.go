// Package ui holds the terminal color theme shared by the console
// output. Styling is informational only: a theme change never affects
// harness results.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles used for console output.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Success styles positive outcomes, e.g. a solved part.
	Success lipgloss.Style
	// Warning styles non-fatal conditions, e.g. an unsolved part.
	Warning lipgloss.Style
	// Error styles failures.
	Error lipgloss.Style
	// Muted styles secondary information such as timings and skips.
	Muted lipgloss.Style
	// Bold styles emphasized values.
	Bold lipgloss.Style
}

var (
	// DarkTheme is the default theme, tuned for dark terminal
	// backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Bold:    lipgloss.NewStyle().Bold(true),
	}

	// PlainTheme disables all styling. Used when NO_COLOR is set or the
	// --no-color flag is provided.
	PlainTheme = Theme{
		Name:    "none",
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme. It honors the NO_COLOR convention
// (https://no-color.org) in addition to the explicit noColor flag.
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(PlainTheme)
		return
	}
	SetTheme(DarkTheme)
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// Current returns the active theme.
func Current() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}
