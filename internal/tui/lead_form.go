package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/model"
)

const (
	formFieldName = iota
	formFieldEmail
	formFieldPhone
	formFieldStatus
	formFieldPriority
	formFieldNotes
	formFieldCount
)

// leadFormModel drives the create/edit modal. Create mode is the absence of
// a lead id; everything else is identical between the two modes.
type leadFormModel struct {
	leadID    string
	createdAt string

	nameInput  textinput.Model
	emailInput textinput.Model
	phoneInput textinput.Model
	notesInput textinput.Model
	status     model.Status
	priority   model.Priority

	focus int
	err   string
	busy  bool
}

func newLeadForm(lead *model.Lead) *leadFormModel {
	f := &leadFormModel{
		status:   model.StatusNew,
		priority: model.PriorityLow,
	}

	mk := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.Width = width
		return in
	}
	f.nameInput = mk("Name", 40)
	f.emailInput = mk("Email", 40)
	f.phoneInput = mk("Phone", 24)
	f.notesInput = mk("Notes", 56)

	if lead != nil {
		f.leadID = lead.ID
		f.createdAt = lead.CreatedAt
		f.nameInput.SetValue(lead.Name)
		f.emailInput.SetValue(lead.Email)
		f.phoneInput.SetValue(lead.Phone)
		f.notesInput.SetValue(lead.Notes)
		if lead.Status.Valid() {
			f.status = lead.Status
		}
		if lead.Priority.Valid() {
			f.priority = lead.Priority
		}
	}

	f.setFocus(formFieldName)
	return f
}

func (f *leadFormModel) editMode() bool { return f.leadID != "" }

func (f *leadFormModel) setFocus(i int) {
	f.focus = (i + formFieldCount) % formFieldCount
	for idx, in := range []*textinput.Model{&f.nameInput, &f.emailInput, &f.phoneInput, &f.notesInput} {
		field := []int{formFieldName, formFieldEmail, formFieldPhone, formFieldNotes}[idx]
		if field == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (f *leadFormModel) focusedInput() *textinput.Model {
	switch f.focus {
	case formFieldName:
		return &f.nameInput
	case formFieldEmail:
		return &f.emailInput
	case formFieldPhone:
		return &f.phoneInput
	case formFieldNotes:
		return &f.notesInput
	}
	return nil
}

func (f *leadFormModel) cycleEnum(dir int) {
	switch f.focus {
	case formFieldStatus:
		f.status = cycleStatus(f.status, dir)
	case formFieldPriority:
		f.priority = cyclePriority(f.priority, dir)
	}
}

func cycleStatus(s model.Status, dir int) model.Status {
	n := len(model.Statuses)
	for i, v := range model.Statuses {
		if v == s {
			return model.Statuses[((i+dir)%n+n)%n]
		}
	}
	return model.Statuses[0]
}

func cyclePriority(p model.Priority, dir int) model.Priority {
	n := len(model.Priorities)
	for i, v := range model.Priorities {
		if v == p {
			return model.Priorities[((i+dir)%n+n)%n]
		}
	}
	return model.Priorities[0]
}

// lead assembles the form's current field values.
func (f *leadFormModel) lead() model.Lead {
	return model.Lead{
		ID:        f.leadID,
		Name:      strings.TrimSpace(f.nameInput.Value()),
		Email:     strings.TrimSpace(f.emailInput.Value()),
		Phone:     strings.TrimSpace(f.phoneInput.Value()),
		Status:    f.status,
		Priority:  f.priority,
		Notes:     strings.TrimSpace(f.notesInput.Value()),
		CreatedAt: f.createdAt,
	}
}

func (m appModel) updateLeadFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		// Cancel is purely local.
		m.form = nil
		m.modal = modalNone
		return m, nil
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return m, nil
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return m, nil
	case "left":
		f.cycleEnum(-1)
		return m, nil
	case "right", "enter":
		if f.focus == formFieldStatus || f.focus == formFieldPriority {
			f.cycleEnum(1)
			return m, nil
		}
		if msg.String() == "enter" {
			return m.submitLeadForm()
		}
		return m, nil
	case "ctrl+s":
		return m.submitLeadForm()
	}

	if in := f.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) submitLeadForm() (tea.Model, tea.Cmd) {
	f := m.form
	if f == nil || f.busy {
		return m, nil
	}
	lead := f.lead()
	if lead.Name == "" || lead.Email == "" {
		f.err = "Please fill in name and email."
		return m, nil
	}
	f.err = ""
	f.busy = true
	return m, tea.Batch(saveLeadCmd(m.client, lead), m.spin.Tick)
}

func (m appModel) renderLeadForm() string {
	f := m.form
	if f == nil {
		return ""
	}

	title := "Add Lead"
	if f.editMode() {
		title = "Edit Lead"
	}

	label := func(field int, text string) string {
		if field == f.focus {
			return styleAccent().Render("▸ " + text)
		}
		return "  " + text
	}
	enumValue := func(field int, v string) string {
		if field == f.focus {
			return styleAccent().Render("◂ " + v + " ▸")
		}
		return v
	}

	lines := []string{
		label(formFieldName, "Name"),
		"  " + f.nameInput.View(),
		label(formFieldEmail, "Email"),
		"  " + f.emailInput.View(),
		label(formFieldPhone, "Phone"),
		"  " + f.phoneInput.View(),
		label(formFieldStatus, "Status") + "    " + enumValue(formFieldStatus, string(f.status)),
		label(formFieldPriority, "Priority") + "  " + enumValue(formFieldPriority, string(f.priority)),
		label(formFieldNotes, "Notes"),
		"  " + f.notesInput.View(),
	}

	var b strings.Builder
	if f.err != "" {
		b.WriteString(styleError().Render(f.err))
		b.WriteString("\n\n")
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	if f.busy {
		b.WriteString(m.spin.View() + " saving…")
	} else {
		b.WriteString(styleMuted().Render("ctrl+s: save   tab: next field   ←/→: change value   esc: cancel"))
	}

	return renderModalBox(m.width, m.height, title, b.String())
}
