package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/api"
	"leadman-cli/internal/model"
	"leadman-cli/internal/session"
)

type appModel struct {
	client  *api.Client
	session *session.Store

	width  int
	height int

	view view
	// sessionResolved mirrors the session store's loading flag on the event
	// loop; the protected view must not render (or redirect) before it is set.
	sessionResolved bool

	// Login / register.
	userInput textinput.Model
	passInput textinput.Model
	authFocus int
	authBusy  bool
	authErr   string

	// Leads list controller state. leads holds the last successfully loaded
	// rows; they are replaced only when a response arrives.
	query        model.LeadQuery
	leads        []model.Lead
	leadsLoaded  bool
	leadsLoading bool
	leadsErr     string
	cursor       int

	searchInput textinput.Model
	searchSeq   int

	spin spinner.Model

	modal        modalKind
	sortList     list.Model
	statusList   list.Model
	priorityList list.Model

	form  *leadFormModel
	panel *activityPanel

	confirmLeadID   string
	confirmLeadName string
	confirmFocus    confirmModalFocus

	notesLead *model.Lead

	minibufferText string
	minibufferSeq  int
}

func newAppModel(client *api.Client, sess *session.Store) appModel {
	m := appModel{
		client:  client,
		session: sess,
		view:    viewLogin,
		query:   model.DefaultLeadQuery(),
	}

	m.userInput = textinput.New()
	m.userInput.Placeholder = "Username"
	m.userInput.CharLimit = 100
	m.userInput.Width = 32
	m.userInput.Focus()

	m.passInput = textinput.New()
	m.passInput.Placeholder = "Password"
	m.passInput.CharLimit = 100
	m.passInput.Width = 32
	m.passInput.EchoMode = textinput.EchoPassword
	m.passInput.EchoCharacter = '•'

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search by name…"
	m.searchInput.CharLimit = 100
	m.searchInput.Width = 28

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot

	m.sortList = newPickList("Sort by", sortPickItems())
	m.statusList = newPickList("Status filter", statusPickItems())
	m.priorityList = newPickList("Priority filter", priorityPickItems())

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(loadSessionCmd(m.session), m.spin.Tick, textinput.Blink)
}

// selectedLead returns the lead under the cursor.
func (m appModel) selectedLead() (model.Lead, bool) {
	if m.cursor < 0 || m.cursor >= len(m.leads) {
		return model.Lead{}, false
	}
	return m.leads[m.cursor], true
}

func (m *appModel) clampCursor() {
	if m.cursor >= len(m.leads) {
		m.cursor = len(m.leads) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
