package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gubarz/mdjoin/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Diff styles
	Added   lipgloss.Style
	Removed lipgloss.Style
	Equal   lipgloss.Style

	// Chrome styles
	Header lipgloss.Style
	Help   lipgloss.Style
	Border lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Equal:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	added := parseANSIColor(config.GetColorAdded())
	removed := parseANSIColor(config.GetColorRemoved())
	header := parseANSIColor(config.GetColorHeader())
	dim := parseANSIColor(config.GetColorDim())

	s.Added = lipgloss.NewStyle().Foreground(added)
	s.Removed = lipgloss.NewStyle().Foreground(removed)
	s.Equal = lipgloss.NewStyle().Foreground(dim)
	s.Header = lipgloss.NewStyle().Bold(true).Foreground(header)
	s.Help = lipgloss.NewStyle().Foreground(dim)
	s.Border = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dim)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
