package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case spinner.TickMsg:
		if !m.busyAnywhere() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case sessionLoadedMsg:
		// Route guard: UNDETERMINED resolves exactly once per startup.
		m.sessionResolved = true
		if m.session.IsAuthenticated() {
			m.view = viewLeads
			return m, m.startLeadsFetch()
		}
		m.view = viewLogin
		return m, nil

	case loginDoneMsg:
		m.authBusy = false
		if msg.err != "" {
			m.authErr = msg.err
			return m, nil
		}
		if err := m.session.Login(msg.token); err != nil {
			m.authErr = "Could not persist session: " + err.Error()
			return m, nil
		}
		m.authErr = ""
		m.userInput.SetValue("")
		m.passInput.SetValue("")
		m.view = viewLeads
		return m, m.startLeadsFetch()

	case registerDoneMsg:
		m.authBusy = false
		if msg.err != "" {
			m.authErr = msg.err
			return m, nil
		}
		m.authErr = ""
		m.passInput.SetValue("")
		m.view = viewLogin
		m.focusAuthField(0)
		return m, m.showMinibuffer("Registration successful. You can now log in.")

	case leadsLoadedMsg:
		// No request sequencing: when two fetches overlap, the later arrival
		// wins, even if it answers the older query.
		m.leadsLoading = false
		if msg.err != "" {
			m.leads = nil
			m.leadsErr = "Failed to load leads. Please try again later."
			m.clampCursor()
			return m, nil
		}
		m.leads = msg.leads
		m.leadsLoaded = true
		m.leadsErr = ""
		m.clampCursor()
		return m, nil

	case leadSavedMsg:
		if m.form == nil {
			return m, nil
		}
		m.form.busy = false
		if msg.err != "" {
			m.form.err = msg.err
			return m, nil
		}
		m.form = nil
		m.modal = modalNone
		return m, tea.Batch(m.startLeadsFetch(), m.showMinibuffer("Lead saved"))

	case leadDeletedMsg:
		if msg.err != "" {
			return m, m.showMinibuffer("Failed to delete lead.")
		}
		return m, tea.Batch(m.startLeadsFetch(), m.showMinibuffer("Lead deleted"))

	case activitiesLoadedMsg:
		if m.panel == nil || m.panel.lead.ID != msg.leadID {
			return m, nil
		}
		m.panel.applyLoaded(msg)
		return m, nil

	case activityAddedMsg:
		if m.panel == nil || m.panel.lead.ID != msg.leadID {
			return m, nil
		}
		m.panel.busy = false
		if msg.err != "" {
			m.panel.err = "Failed to add activity."
			return m, nil
		}
		m.panel.clearInputs()
		m.panel.err = ""
		return m, fetchActivitiesCmd(m.client, m.panel.lead.ID)

	case activityDeletedMsg:
		if m.panel == nil || m.panel.lead.ID != msg.leadID {
			return m, nil
		}
		m.panel.busy = false
		if msg.err != "" {
			// A failed delete keeps the already-displayed rows.
			m.panel.err = "Failed to delete activity."
			return m, nil
		}
		m.panel.err = ""
		return m, fetchActivitiesCmd(m.client, m.panel.lead.ID)

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			// A later keystroke superseded this timer.
			return m, nil
		}
		committed := m.searchInput.Value()
		if m.query.Name == committed {
			return m, nil
		}
		m.query.Name = committed
		return m, m.startLeadsFetch()

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m appModel) busyAnywhere() bool {
	if m.leadsLoading || m.authBusy {
		return true
	}
	if m.form != nil && m.form.busy {
		return true
	}
	if m.panel != nil && (m.panel.busy || m.panel.loading) {
		return true
	}
	return false
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.debugKeyMsg(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While the session read is pending, authenticated status is undecided:
	// render the placeholder and swallow input rather than guessing.
	if !m.sessionResolved {
		return m, nil
	}

	switch m.view {
	case viewLogin, viewRegister:
		return m.updateAuthKey(msg)
	case viewLeads:
		// Guard re-evaluates on every protected interaction.
		if !m.session.IsAuthenticated() {
			m.view = viewLogin
			return m, nil
		}
		return m.updateLeadsKey(msg)
	}
	return m, nil
}

func (m *appModel) resizeLists() {
	w := modalBodyWidth(m.width)
	h := m.height - 12
	if h < 6 {
		h = 6
	}
	if h > 14 {
		h = 14
	}
	m.sortList.SetSize(w, h)
	m.statusList.SetSize(w, h)
	m.priorityList.SetSize(w, h)
}
