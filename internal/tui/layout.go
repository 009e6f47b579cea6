package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// padCell forces a table cell to exactly width columns (ANSI-aware), with a
// single trailing space as the column gap.
func padCell(s string, width int) string {
	if width <= 1 {
		return " "
	}
	inner := width - 1
	w := xansi.StringWidth(s)
	if w > inner {
		if inner == 1 {
			s = xansi.Cut(s, 0, 1)
		} else {
			s = xansi.Cut(s, 0, inner-1) + "…"
		}
		w = xansi.StringWidth(s)
	}
	if w < inner {
		s += strings.Repeat(" ", inner-w)
	}
	return s + " "
}

func modalBodyWidth(width int) int {
	w := width - 10
	if w > 72 {
		w = 72
	}
	if w < 36 {
		w = 36
	}
	return w
}

// renderModalBox renders a titled modal centered in the window. Borders stay
// on the outer box only: nesting bordered components inside a colored modal
// shows background artifacts on some terminals.
func renderModalBox(width, height int, title, content string) string {
	bodyW := modalBodyWidth(width)

	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorModalHeaderFg).
		Width(bodyW).
		Render(title)

	body := lipgloss.NewStyle().Width(bodyW).Render(content)

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSelectedBorder).
		Render(head + "\n\n" + body)

	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
