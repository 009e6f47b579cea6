package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/model"
)

func (m appModel) updateLeadsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalLeadForm:
		return m.updateLeadFormKey(msg)
	case modalActivity:
		return m.updateActivityKey(msg)
	case modalConfirmDelete:
		return m.updateConfirmDeleteKey(msg)
	case modalNotes:
		switch msg.String() {
		case "esc", "ctrl+g", "q", "enter", "n":
			m.modal = modalNone
			m.notesLead = nil
		}
		return m, nil
	case modalSortBy, modalStatusFilter, modalPriorityFilter:
		return m.updatePickerKey(msg)
	}

	if m.searchInput.Focused() {
		return m.updateSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.leads)-1 {
			m.cursor++
		}
		return m, nil
	case "/":
		m.searchInput.Focus()
		return m, nil
	case "r":
		return m, m.startLeadsFetch()
	case "o":
		if m.query.Order == model.OrderAsc {
			m.query.Order = model.OrderDesc
		} else {
			m.query.Order = model.OrderAsc
		}
		return m, m.startLeadsFetch()
	case "s":
		m.modal = modalSortBy
		selectPickValue(&m.sortList, string(m.query.SortBy))
		return m, nil
	case "f":
		m.modal = modalStatusFilter
		selectPickValue(&m.statusList, string(m.query.Status))
		return m, nil
	case "p":
		m.modal = modalPriorityFilter
		selectPickValue(&m.priorityList, string(m.query.Priority))
		return m, nil
	case "a":
		m.form = newLeadForm(nil)
		m.modal = modalLeadForm
		return m, nil
	case "e":
		if lead, ok := m.selectedLead(); ok {
			m.form = newLeadForm(&lead)
			m.modal = modalLeadForm
		}
		return m, nil
	case "d":
		if lead, ok := m.selectedLead(); ok {
			m.confirmLeadID = lead.ID
			m.confirmLeadName = lead.Name
			m.confirmFocus = confirmFocusCancel
			m.modal = modalConfirmDelete
		}
		return m, nil
	case "n":
		if lead, ok := m.selectedLead(); ok && strings.TrimSpace(lead.Notes) != "" {
			l := lead
			m.notesLead = &l
			m.modal = modalNotes
		}
		return m, nil
	case "enter":
		// Opening the panel is a local selection; the network call is the
		// panel's own activity fetch.
		if lead, ok := m.selectedLead(); ok {
			m.panel = newActivityPanel(lead)
			m.modal = modalActivity
			return m, tea.Batch(fetchActivitiesCmd(m.client, lead.ID), m.spin.Tick)
		}
		return m, nil
	case "ctrl+l":
		if err := m.session.Logout(); err != nil {
			return m, m.showMinibuffer("Logout failed: " + err.Error())
		}
		m.leads = nil
		m.leadsLoaded = false
		m.leadsErr = ""
		m.cursor = 0
		m.view = viewLogin
		m.focusAuthField(0)
		return m, nil
	}
	return m, nil
}

func (m appModel) updateSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		// Blurring does not cancel a pending debounce tick; the term the
		// user stopped on still commits.
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}
	// The display value updated immediately; the committed value waits for
	// the quiet period.
	return m, tea.Batch(cmd, m.scheduleSearchDebounce())
}

func (m appModel) updatePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	active := m.activePickList()

	switch msg.String() {
	case "esc", "ctrl+g":
		m.modal = modalNone
		return m, nil
	case "enter":
		it, ok := active.SelectedItem().(pickItem)
		if !ok {
			m.modal = modalNone
			return m, nil
		}
		switch m.modal {
		case modalSortBy:
			m.query.SortBy = model.SortKey(it.value)
		case modalStatusFilter:
			m.query.Status = model.Status(it.value)
		case modalPriorityFilter:
			m.query.Priority = model.Priority(it.value)
		}
		m.modal = modalNone
		return m, m.startLeadsFetch()
	}

	var cmd tea.Cmd
	*active, cmd = active.Update(msg)
	return m, cmd
}

func (m *appModel) activePickList() *list.Model {
	switch m.modal {
	case modalStatusFilter:
		return &m.statusList
	case modalPriorityFilter:
		return &m.priorityList
	default:
		return &m.sortList
	}
}

func selectPickValue(l *list.Model, value string) {
	for i, it := range l.Items() {
		if p, ok := it.(pickItem); ok && p.value == value {
			l.Select(i)
			return
		}
	}
	l.Select(0)
}

func (m appModel) renderLeads() string {
	var b strings.Builder

	header := styleTitle().Render("Leads Management")
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n\n")

	if m.leadsErr != "" {
		b.WriteString(styleError().Render(m.leadsErr))
		b.WriteString("\n\n")
	}

	if m.leadsLoading && !m.leadsLoaded {
		b.WriteString(m.spin.View() + " Loading leads…\n")
	} else {
		b.WriteString(m.renderLeadsTable())
	}

	footer := styleMuted().Render("enter: activities  a: add  e: edit  d: delete  n: notes  /: search  s/o/f/p: sort+filters  r: reload  ctrl+l: logout  q: quit")
	status := ""
	if m.minibufferText != "" {
		status = "\n" + styleAccent().Render(m.minibufferText)
	} else if m.leadsLoading && m.leadsLoaded {
		status = "\n" + m.spin.View() + " refreshing…"
	}

	return b.String() + status + "\n" + footer
}

func (m appModel) renderControls() string {
	sort := fmt.Sprintf("sort: %s %s", m.query.SortBy, m.query.Order)
	status := "status: all"
	if m.query.Status != "" {
		status = "status: " + string(m.query.Status)
	}
	prio := "priority: all"
	if m.query.Priority != "" {
		prio = "priority: " + string(m.query.Priority)
	}
	controls := styleMuted().Render(sort + "   " + status + "   " + prio)
	return controls + "\n" + m.searchInput.View()
}

type leadColumns struct {
	name, email, phone, status, prio, date int
}

func (m appModel) leadColumnWidths() leadColumns {
	w := m.width - 2
	if w < 76 {
		w = 76
	}
	c := leadColumns{
		name:   w * 22 / 100,
		email:  w * 28 / 100,
		phone:  w * 16 / 100,
		status: 11,
		prio:   9,
	}
	c.date = w - c.name - c.email - c.phone - c.status - c.prio
	if c.date < 10 {
		c.date = 10
	}
	return c
}

func (m appModel) renderLeadsTable() string {
	c := m.leadColumnWidths()

	var b strings.Builder
	head := padCell("Name", c.name) + padCell("Email", c.email) + padCell("Phone", c.phone) +
		padCell("Status", c.status) + padCell("Priority", c.prio) + padCell("Date", c.date)
	b.WriteString(styleTableHeader().Render(head))
	b.WriteString("\n")

	if len(m.leads) == 0 {
		// A single placeholder row, never an empty table body.
		b.WriteString(styleMuted().Render("No leads found."))
		b.WriteString("\n")
		return b.String()
	}

	for i, lead := range m.leads {
		row := padCell(lead.Name, c.name) + padCell(lead.Email, c.email) + padCell(lead.Phone, c.phone) +
			padCell(string(lead.Status), c.status) + padCell(string(lead.Priority), c.prio) +
			padCell(model.FormatCreatedAt(lead.CreatedAt), c.date)
		if i == m.cursor {
			b.WriteString(styleSelectedRow().Render(row))
		} else {
			b.WriteString(row)
		}
		b.WriteString("\n")
		if strings.TrimSpace(lead.Notes) != "" {
			b.WriteString(styleNotesRow().Render(padCell("  Notes: "+firstLine(lead.Notes), c.name+c.email+c.phone+c.status+c.prio+c.date)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[:nl]
	}
	return s
}
