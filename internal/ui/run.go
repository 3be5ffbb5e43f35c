package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive UI and blocks until the user quits.
func Run(config Config) error {
	app := NewApp(config)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
