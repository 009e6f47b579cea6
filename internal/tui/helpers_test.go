package tui

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/api"
	"leadman-cli/internal/model"
	"leadman-cli/internal/session"
)

// newTestModel builds an appModel against a throwaway backend and an
// isolated config dir. handler may be nil when the test never lets a
// network command run.
func newTestModel(t *testing.T, handler http.Handler) (appModel, *session.Store) {
	t.Helper()
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	if handler == nil {
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := api.New(srv.URL, 5*time.Second)
	sess := session.New()
	sess.OnChange(client.SetToken)

	return newAppModel(client, sess), sess
}

// resolveSession plays out the startup session read the way Init's command
// would deliver it.
func resolveSession(t *testing.T, m appModel) appModel {
	t.Helper()
	if err := m.session.Load(); err != nil {
		t.Fatalf("session load: %v", err)
	}
	mAny, _ := m.Update(sessionLoadedMsg{})
	return mAny.(appModel)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		mAny, _ := m.Update(keyRune(r))
		m = mAny.(appModel)
	}
	return m
}

func sampleLeads() []model.Lead {
	return []model.Lead{
		{ID: "1", Name: "Ada Lovelace", Email: "ada@example.com", Status: model.StatusNew, Priority: model.PriorityHigh, CreatedAt: "2025-05-01T10:00:00"},
		{ID: "2", Name: "Grace Hopper", Email: "grace@example.com", Status: model.StatusContacted, Priority: model.PriorityLow, Notes: "Prefers email contact", CreatedAt: "2025-05-02T10:00:00"},
		{ID: "3", Name: "Alan Kay", Email: "alan@example.com", Status: model.StatusQualified, Priority: model.PriorityMedium, CreatedAt: "2025-05-03T10:00:00"},
	}
}
