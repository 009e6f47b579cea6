package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadman-cli/internal/session"
)

// runCLI executes one command in-process against the given backend.
func runCLI(t *testing.T, handler http.Handler, args ...string) (string, string, error) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--api", srv.URL}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeEnvelope(t *testing.T, stdout string) map[string]any {
	t.Helper()
	var env map[string]any
	if err := json.Unmarshal([]byte(stdout), &env); err != nil {
		t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s", err, stdout)
	}
	if _, ok := env["data"]; !ok {
		t.Fatalf("expected envelope with data key, got: %s", stdout)
	}
	return env
}

func TestCLI_LoginStoresTokenAndLogoutClearsIt(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			w.Write([]byte("tok-cli"))
			return
		}
		http.NotFound(w, r)
	})

	stdout, stderr, err := runCLI(t, handler, "login", "--username", "ada", "--password", "pw")
	if err != nil {
		t.Fatalf("login failed: %v\nstderr: %s", err, stderr)
	}
	decodeEnvelope(t, stdout)

	sess := session.New()
	if err := sess.Load(); err != nil {
		t.Fatalf("session load: %v", err)
	}
	if sess.Token() != "tok-cli" {
		t.Fatalf("stored token = %q, want tok-cli", sess.Token())
	}

	if _, stderr, err = runCLI(t, handler, "logout"); err != nil {
		t.Fatalf("logout failed: %v\nstderr: %s", err, stderr)
	}
	fresh := session.New()
	if err := fresh.Load(); err != nil {
		t.Fatalf("session reload: %v", err)
	}
	if fresh.IsAuthenticated() {
		t.Fatal("logout must clear the durable token")
	}
}

func TestCLI_LoginErrorGoesToStderr(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
	})

	_, stderr, err := runCLI(t, handler, "login", "--username", "ada", "--password", "nope")
	if err == nil {
		t.Fatal("expected an error exit")
	}
	if !strings.Contains(stderr, "Invalid credentials") {
		t.Fatalf("stderr = %q, want the backend message", stderr)
	}
}

func TestCLI_LeadsListSendsControlsAndOmitsEmptyFilters(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	var gotQuery string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"id":"1","name":"Ada","email":"ada@example.com","status":"New","priority":"High"}]`))
	})

	stdout, stderr, err := runCLI(t, handler, "leads", "list", "--sort-by", "name", "--order", "asc", "--status", "New")
	if err != nil {
		t.Fatalf("leads list failed: %v\nstderr: %s", err, stderr)
	}
	decodeEnvelope(t, stdout)

	if !strings.Contains(gotQuery, "sortBy=name") || !strings.Contains(gotQuery, "order=asc") || !strings.Contains(gotQuery, "status=New") {
		t.Fatalf("query = %q", gotQuery)
	}
	if strings.Contains(gotQuery, "priority=") || strings.Contains(gotQuery, "name=") {
		t.Fatalf("empty filters must be omitted, query = %q", gotQuery)
	}
}

func TestCLI_LeadsListValidatesEnums(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	_, stderr, err := runCLI(t, http.NotFoundHandler(), "leads", "list", "--status", "BOGUS")
	if err == nil {
		t.Fatal("expected an error exit for an unknown status")
	}
	if !strings.Contains(stderr, "unknown status") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestCLI_LeadsListTableFormat(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"Ada Lovelace","email":"ada@example.com","status":"New","priority":"High","createdAt":"2025-05-01T10:00:00"}]`))
	})

	stdout, _, err := runCLI(t, handler, "--format", "table", "leads", "list")
	if err != nil {
		t.Fatalf("leads list failed: %v", err)
	}
	if !strings.Contains(stdout, "NAME") || !strings.Contains(stdout, "Ada Lovelace") {
		t.Fatalf("expected a table, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "01.05.2025") {
		t.Fatalf("expected the formatted date, got:\n%s", stdout)
	}
}

func TestCLI_ActivitiesAddNormalizesDate(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	var posted map[string]any
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/activities" {
			if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
				t.Errorf("decode body: %v", err)
			}
			json.NewEncoder(w).Encode(posted)
			return
		}
		http.NotFound(w, r)
	})

	stdout, stderr, err := runCLI(t, handler,
		"activities", "add", "--lead", "42", "--description", "Intro call", "--type", "Call", "--date", "2025-06-01")
	if err != nil {
		t.Fatalf("activities add failed: %v\nstderr: %s", err, stderr)
	}
	decodeEnvelope(t, stdout)

	if posted["date"] != "2025-06-01T00:00:00" {
		t.Fatalf("posted date = %v, want 2025-06-01T00:00:00", posted["date"])
	}
	if posted["leadId"] != "42" {
		t.Fatalf("posted leadId = %v", posted["leadId"])
	}
}

func TestCLI_DocsListsTopics(t *testing.T) {
	t.Setenv("LEADMAN_CONFIG_DIR", t.TempDir())

	stdout, _, err := runCLI(t, http.NotFoundHandler(), "docs")
	if err != nil {
		t.Fatalf("docs failed: %v", err)
	}
	env := decodeEnvelope(t, stdout)
	data, _ := env["data"].(map[string]any)
	topics, _ := data["topics"].([]any)
	if len(topics) == 0 {
		t.Fatalf("expected topics, got: %s", stdout)
	}
}
