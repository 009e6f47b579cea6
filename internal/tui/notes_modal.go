package tui

import "strings"

// renderNotesModal shows a lead's notes rendered as markdown. Many teams put
// lightweight markup in the notes field; plain text renders unchanged.
func (m appModel) renderNotesModal() string {
	if m.notesLead == nil {
		return ""
	}
	bodyW := modalBodyWidth(m.width)
	body := renderMarkdown(m.notesLead.Notes, bodyW)
	if strings.TrimSpace(body) == "" {
		body = styleMuted().Render("(no notes)")
	}
	content := body + "\n\n" + styleMuted().Render("esc: close")
	return renderModalBox(m.width, m.height, "Notes: "+m.notesLead.Name, content)
}
