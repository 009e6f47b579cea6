package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m appModel) updateConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	closeModal := func() {
		m.modal = modalNone
		m.confirmLeadID = ""
		m.confirmLeadName = ""
	}

	switch msg.String() {
	case "esc", "ctrl+g", "n":
		closeModal()
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case "y":
		id := m.confirmLeadID
		closeModal()
		return m, tea.Batch(deleteLeadCmd(m.client, id), m.spin.Tick)
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			id := m.confirmLeadID
			closeModal()
			return m, tea.Batch(deleteLeadCmd(m.client, id), m.spin.Tick)
		}
		closeModal()
		return m, nil
	}
	return m, nil
}

func (m appModel) renderConfirmDelete() string {
	// Avoid borders on the buttons: nested bordered components inside a
	// modal show background artifacts on some terminals.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render("Delete")
	cancel := btnBase.Render("Cancel")
	if m.confirmFocus == confirmFocusConfirm {
		confirm = btnActive.Render("Delete")
	} else {
		cancel = btnActive.Render("Cancel")
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	name := m.confirmLeadName
	if strings.TrimSpace(name) == "" {
		name = m.confirmLeadID
	}

	content := strings.Join([]string{
		"Are you sure you want to delete this lead?",
		styleMuted().Render(name),
		"",
		controls,
		"",
		styleMuted().Render("tab: focus   enter: select   y: delete   esc/n: cancel"),
	}, "\n")
	return renderModalBox(m.width, m.height, "Delete Lead", content)
}
