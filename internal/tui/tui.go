// Package tui is the interactive terminal client: login and registration,
// the leads list with its filter, sort and search controls, and the modal
// editors for leads, activities and notes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/api"
	"leadman-cli/internal/session"
)

// Run starts the interactive UI and blocks until the user quits.
func Run(client *api.Client, sess *session.Store) error {
	applyColorProfilePreference()
	m := newAppModel(client, sess)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
