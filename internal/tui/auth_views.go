package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *appModel) focusAuthField(i int) {
	m.authFocus = i
	if i == 0 {
		m.userInput.Focus()
		m.passInput.Blur()
	} else {
		m.userInput.Blur()
		m.passInput.Focus()
	}
}

func (m appModel) updateAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusAuthField((m.authFocus + 1) % 2)
		return m, nil
	case "shift+tab", "up":
		m.focusAuthField((m.authFocus + 1) % 2)
		return m, nil
	case "enter":
		if m.authFocus == 0 {
			m.focusAuthField(1)
			return m, nil
		}
		return m.submitAuth()
	case "ctrl+r":
		// Toggle between the login and register entry points.
		if m.view == viewLogin {
			m.view = viewRegister
		} else {
			m.view = viewLogin
		}
		m.authErr = ""
		m.focusAuthField(0)
		return m, nil
	case "esc":
		if m.view == viewRegister {
			m.view = viewLogin
			m.authErr = ""
			m.focusAuthField(0)
			return m, nil
		}
		return m, nil
	case "q":
		// "q" is a character here, not a quit key; fall through to the input.
	}

	var cmd tea.Cmd
	if m.authFocus == 0 {
		m.userInput, cmd = m.userInput.Update(msg)
	} else {
		m.passInput, cmd = m.passInput.Update(msg)
	}
	return m, cmd
}

func (m appModel) submitAuth() (tea.Model, tea.Cmd) {
	if m.authBusy {
		return m, nil
	}
	username := strings.TrimSpace(m.userInput.Value())
	password := m.passInput.Value()
	if username == "" || password == "" {
		m.authErr = "Please enter a username and password."
		return m, nil
	}
	m.authErr = ""
	m.authBusy = true
	if m.view == viewRegister {
		return m, tea.Batch(registerCmd(m.client, username, password), m.spin.Tick)
	}
	return m, tea.Batch(loginCmd(m.client, username, password), m.spin.Tick)
}

func (m appModel) renderAuth() string {
	title := "Login"
	action := "log in"
	alt := "ctrl+r: register instead"
	if m.view == viewRegister {
		title = "Register"
		action = "register"
		alt = "ctrl+r/esc: back to login"
	}

	var b strings.Builder
	b.WriteString(styleTitle().Render("Lead Manager — " + title))
	b.WriteString("\n\n")
	if m.authErr != "" {
		b.WriteString(styleError().Render(m.authErr))
		b.WriteString("\n\n")
	}
	b.WriteString("Username\n")
	b.WriteString(m.userInput.View())
	b.WriteString("\n\nPassword\n")
	b.WriteString(m.passInput.View())
	b.WriteString("\n\n")
	if m.authBusy {
		b.WriteString(m.spin.View() + " " + action + "…")
	} else {
		b.WriteString(styleMuted().Render("enter: " + action + "   tab: next field   " + alt + "   ctrl+c: quit"))
	}

	box := lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Render(b.String())

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
