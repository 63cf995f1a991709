// Package tui provides interactive terminal UI components using BubbleTea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains reusable lipgloss styles for the TUI.
var Styles = struct {
	Title  lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
	Active lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	Active: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
}

// Run starts a BubbleTea program with the given model.
func Run(model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model)
	return p.Run()
}
