package tui

import "github.com/charmbracelet/lipgloss"

func (m appModel) View() string {
	// Route guard: while the session read is pending, render a neutral
	// placeholder and never redirect.
	if !m.sessionResolved {
		placeholder := styleMuted().Render("Checking session…")
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, placeholder)
		}
		return placeholder
	}

	switch m.view {
	case viewLogin, viewRegister:
		return m.renderAuth()
	case viewLeads:
		if !m.session.IsAuthenticated() {
			return m.renderAuth()
		}
		switch m.modal {
		case modalLeadForm:
			return m.renderLeadForm()
		case modalActivity:
			return m.renderActivityPanel()
		case modalConfirmDelete:
			return m.renderConfirmDelete()
		case modalNotes:
			return m.renderNotesModal()
		case modalSortBy:
			return renderModalBox(m.width, m.height, "Sort by", m.sortList.View()+"\n\n"+styleMuted().Render("enter: select   esc: cancel"))
		case modalStatusFilter:
			return renderModalBox(m.width, m.height, "Filter by status", m.statusList.View()+"\n\n"+styleMuted().Render("enter: select   esc: cancel"))
		case modalPriorityFilter:
			return renderModalBox(m.width, m.height, "Filter by priority", m.priorityList.View()+"\n\n"+styleMuted().Render("enter: select   esc: cancel"))
		}
		return m.renderLeads()
	}
	return ""
}
