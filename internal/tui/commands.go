package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/api"
	"leadman-cli/internal/model"
	"leadman-cli/internal/session"
)

const requestTimeout = 30 * time.Second

const searchDebounceDelay = 800 * time.Millisecond

// userMessage prefers the backend-provided error body over transport noise.
func userMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

func loadSessionCmd(s *session.Store) tea.Cmd {
	return func() tea.Msg {
		if err := s.Load(); err != nil {
			return sessionLoadedMsg{err: err.Error()}
		}
		return sessionLoadedMsg{}
	}
}

func loginCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		token, err := client.Login(ctx, username, password)
		if err != nil {
			return loginDoneMsg{err: userMessage(err, "Invalid username or password.")}
		}
		return loginDoneMsg{token: token}
	}
}

func registerCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.Register(ctx, username, password); err != nil {
			return registerDoneMsg{err: userMessage(err, "Registration failed. Please try again.")}
		}
		return registerDoneMsg{}
	}
}

// fetchLeadsCmd snapshots the current query; a later control change issues a
// new fetch rather than mutating this one. In-flight responses are not
// cancelled or sequence-numbered, so out-of-order arrival is last-write-wins.
func (m *appModel) fetchLeadsCmd() tea.Cmd {
	client := m.client
	q := m.query
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		leads, err := client.ListLeads(ctx, q)
		if err != nil {
			return leadsLoadedMsg{err: err.Error()}
		}
		return leadsLoadedMsg{leads: leads}
	}
}

// startLeadsFetch marks the list loading and returns the fetch command.
// Previously rendered rows stay visible until the response arrives.
func (m *appModel) startLeadsFetch() tea.Cmd {
	m.leadsLoading = true
	m.leadsErr = ""
	return tea.Batch(m.fetchLeadsCmd(), m.spin.Tick)
}

func saveLeadCmd(client *api.Client, lead model.Lead) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var err error
		if lead.ID == "" {
			_, err = client.CreateLead(ctx, lead)
		} else {
			_, err = client.UpdateLead(ctx, lead)
		}
		if err != nil {
			return leadSavedMsg{err: userMessage(err, "Failed to save lead.")}
		}
		return leadSavedMsg{}
	}
}

func deleteLeadCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.DeleteLead(ctx, id); err != nil {
			return leadDeletedMsg{err: err.Error()}
		}
		return leadDeletedMsg{}
	}
}

func fetchActivitiesCmd(client *api.Client, leadID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		acts, err := client.ListActivities(ctx, leadID)
		if err != nil {
			return activitiesLoadedMsg{leadID: leadID, err: err.Error()}
		}
		return activitiesLoadedMsg{leadID: leadID, acts: acts}
	}
}

func addActivityCmd(client *api.Client, a model.Activity) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if _, err := client.AddActivity(ctx, a); err != nil {
			return activityAddedMsg{leadID: a.LeadID, err: err.Error()}
		}
		return activityAddedMsg{leadID: a.LeadID}
	}
}

func deleteActivityCmd(client *api.Client, leadID, activityID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := client.DeleteActivity(ctx, activityID); err != nil {
			return activityDeletedMsg{leadID: leadID, err: err.Error()}
		}
		return activityDeletedMsg{leadID: leadID}
	}
}

func (m *appModel) scheduleSearchDebounce() tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	return tea.Tick(searchDebounceDelay, func(time.Time) tea.Msg { return searchDebounceMsg{seq: seq} })
}

func (m *appModel) showMinibuffer(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}
