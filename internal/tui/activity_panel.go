package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/model"
)

const (
	panelFocusList = iota
	panelFocusDescription
	panelFocusType
	panelFocusDate
	panelFocusCount
)

// activityPanel is the lead detail modal: the lead's activities plus the
// add-activity inputs. The panel shows nothing until its first successful
// fetch; after that, failed mutations keep the displayed rows.
type activityPanel struct {
	lead model.Lead

	acts    []model.Activity
	loaded  bool
	loading bool
	busy    bool
	err     string
	cursor  int

	descInput textinput.Model
	typeInput textinput.Model
	dateInput textinput.Model
	focus     int
}

func newActivityPanel(lead model.Lead) *activityPanel {
	p := &activityPanel{lead: lead, loading: true}

	mk := func(placeholder string, width int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		in.Width = width
		return in
	}
	p.descInput = mk("Description", 40)
	p.typeInput = mk("Type (e.g. call, meeting)", 28)
	p.dateInput = mk("Date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)", 40)

	return p
}

func (p *activityPanel) applyLoaded(msg activitiesLoadedMsg) {
	p.loading = false
	if msg.err != "" {
		p.err = "Failed to load activities."
		return
	}
	p.err = ""
	p.acts = msg.acts
	p.loaded = true
	if p.cursor >= len(p.acts) {
		p.cursor = len(p.acts) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *activityPanel) clearInputs() {
	p.descInput.SetValue("")
	p.typeInput.SetValue("")
	p.dateInput.SetValue("")
}

func (p *activityPanel) setFocus(i int) {
	p.focus = (i + panelFocusCount) % panelFocusCount
	for field, in := range map[int]*textinput.Model{
		panelFocusDescription: &p.descInput,
		panelFocusType:        &p.typeInput,
		panelFocusDate:        &p.dateInput,
	} {
		if field == p.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (p *activityPanel) focusedInput() *textinput.Model {
	switch p.focus {
	case panelFocusDescription:
		return &p.descInput
	case panelFocusType:
		return &p.typeInput
	case panelFocusDate:
		return &p.dateInput
	}
	return nil
}

func (m appModel) updateActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.panel
	if p == nil {
		m.modal = modalNone
		return m, nil
	}

	switch msg.String() {
	case "esc", "ctrl+g":
		// Closing is purely local.
		m.panel = nil
		m.modal = modalNone
		return m, nil
	case "tab":
		p.setFocus(p.focus + 1)
		return m, nil
	case "shift+tab":
		p.setFocus(p.focus - 1)
		return m, nil
	case "ctrl+s":
		return m.submitActivity()
	}

	if p.focus == panelFocusList {
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
			return m, nil
		case "down", "j":
			if p.cursor < len(p.acts)-1 {
				p.cursor++
			}
			return m, nil
		case "d":
			if p.busy || p.cursor < 0 || p.cursor >= len(p.acts) {
				return m, nil
			}
			p.busy = true
			return m, tea.Batch(deleteActivityCmd(m.client, p.lead.ID, p.acts[p.cursor].ID), m.spin.Tick)
		}
		return m, nil
	}

	if msg.String() == "enter" {
		if p.focus == panelFocusDate {
			return m.submitActivity()
		}
		p.setFocus(p.focus + 1)
		return m, nil
	}

	if in := p.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) submitActivity() (tea.Model, tea.Cmd) {
	p := m.panel
	if p == nil || p.busy {
		return m, nil
	}
	desc := strings.TrimSpace(p.descInput.Value())
	typ := strings.TrimSpace(p.typeInput.Value())
	date := strings.TrimSpace(p.dateInput.Value())
	if desc == "" || typ == "" || date == "" {
		// Required before any network call.
		p.err = "Please fill in all fields."
		return m, nil
	}
	p.err = ""
	p.busy = true
	a := model.Activity{
		LeadID:      p.lead.ID,
		Description: desc,
		Type:        typ,
		Date:        model.NormalizeActivityDate(date),
	}
	return m, tea.Batch(addActivityCmd(m.client, a), m.spin.Tick)
}

func (m appModel) renderActivityPanel() string {
	p := m.panel
	if p == nil {
		return ""
	}

	bodyW := modalBodyWidth(m.width)
	cDesc := bodyW * 45 / 100
	cType := bodyW * 20 / 100
	cDate := bodyW - cDesc - cType

	var b strings.Builder
	if p.err != "" {
		b.WriteString(styleError().Render(p.err))
		b.WriteString("\n\n")
	}

	switch {
	case p.loading && !p.loaded:
		b.WriteString(m.spin.View() + " Loading activities…\n")
	case len(p.acts) == 0:
		b.WriteString(styleMuted().Render("No activities yet."))
		b.WriteString("\n")
	default:
		head := padCell("Description", cDesc) + padCell("Type", cType) + padCell("Date", cDate)
		b.WriteString(styleTableHeader().Render(head))
		b.WriteString("\n")
		for i, a := range p.acts {
			row := padCell(a.Description, cDesc) + padCell(a.Type, cType) + padCell(a.Date, cDate)
			if p.focus == panelFocusList && i == p.cursor {
				b.WriteString(styleSelectedRow().Render(row))
			} else {
				b.WriteString(row)
			}
			b.WriteString("\n")
		}
	}

	focusLabel := func(field int, text string) string {
		if field == p.focus {
			return styleAccent().Render("▸ " + text)
		}
		return "  " + text
	}

	b.WriteString("\n")
	b.WriteString(styleTitle().Render("Add Activity"))
	b.WriteString("\n")
	b.WriteString(focusLabel(panelFocusDescription, p.descInput.View()))
	b.WriteString("\n")
	b.WriteString(focusLabel(panelFocusType, p.typeInput.View()))
	b.WriteString("\n")
	b.WriteString(focusLabel(panelFocusDate, p.dateInput.View()))
	b.WriteString("\n\n")
	if p.busy {
		b.WriteString(m.spin.View() + " working…")
	} else {
		b.WriteString(styleMuted().Render("tab: focus   d: delete selected   ctrl+s: add   esc: close"))
	}

	return renderModalBox(m.width, m.height, "Lead Details: "+p.lead.Name, b.String())
}
