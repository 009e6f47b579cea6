package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadman-cli/internal/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 5*time.Second)
}

func TestListLeads_QueryReflectsControlsAndOmitsEmptyFilters(t *testing.T) {
	t.Parallel()

	var gotQuery map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/leads" {
			t.Errorf("path = %q", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode([]model.Lead{})
	})

	q := model.DefaultLeadQuery()
	q.Status = model.StatusContacted
	if _, err := c.ListLeads(context.Background(), q); err != nil {
		t.Fatalf("ListLeads: %v", err)
	}

	if got := gotQuery["sortBy"]; len(got) != 1 || got[0] != "createdAt" {
		t.Fatalf("sortBy = %v", got)
	}
	if got := gotQuery["order"]; len(got) != 1 || got[0] != "desc" {
		t.Fatalf("order = %v", got)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != "Contacted" {
		t.Fatalf("status = %v", got)
	}
	if _, ok := gotQuery["priority"]; ok {
		t.Fatal("priority must be omitted when empty")
	}
	if _, ok := gotQuery["name"]; ok {
		t.Fatal("name must be omitted when empty")
	}
}

func TestSetToken_AttachesBearerToSubsequentRequests(t *testing.T) {
	t.Parallel()

	var auths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]model.Lead{})
	})

	ctx := context.Background()
	if _, err := c.ListLeads(ctx, model.DefaultLeadQuery()); err != nil {
		t.Fatalf("ListLeads: %v", err)
	}
	c.SetToken("tok-abc")
	if _, err := c.ListLeads(ctx, model.DefaultLeadQuery()); err != nil {
		t.Fatalf("ListLeads: %v", err)
	}
	c.SetToken("")
	if _, err := c.ListLeads(ctx, model.DefaultLeadQuery()); err != nil {
		t.Fatalf("ListLeads: %v", err)
	}

	want := []string{"", "Bearer tok-abc", ""}
	for i := range want {
		if auths[i] != want[i] {
			t.Fatalf("Authorization headers = %v; want %v", auths, want)
		}
	}
}

func TestLogin_AcceptsPlainAndQuotedTokenBodies(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"tok-plain", `"tok-quoted"`} {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/login" {
				t.Errorf("path = %q", r.URL.Path)
			}
			var creds struct{ Username, Password string }
			if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
				t.Errorf("decode credentials: %v", err)
			}
			if creds.Username != "alice" || creds.Password != "s3cret" {
				t.Errorf("credentials = %+v", creds)
			}
			_, _ = w.Write([]byte(body))
		})

		tok, err := c.Login(context.Background(), "alice", "s3cret")
		if err != nil {
			t.Fatalf("Login(%q): %v", body, err)
		}
		want := "tok-plain"
		if body != "tok-plain" {
			want = "tok-quoted"
		}
		if tok != want {
			t.Fatalf("token = %q; want %q", tok, want)
		}
	}
}

func TestLogin_SurfacesBackendErrorBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid username or password.", http.StatusUnauthorized)
	})

	_, err := c.Login(context.Background(), "alice", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", apiErr.StatusCode)
	}
	if apiErr.Error() != "Invalid username or password." {
		t.Fatalf("message = %q", apiErr.Error())
	}
}

func TestRegister_SuccessNeedsNoBody(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/register" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := c.Register(context.Background(), "bob", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
}

func TestDeleteActivity_NotFoundSurfacesMessage(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/activities/act-404" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		http.Error(w, "Activity not found", http.StatusNotFound)
	})

	err := c.DeleteActivity(context.Background(), "act-404")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Error() != "Activity not found" {
		t.Fatalf("message = %q", apiErr.Error())
	}
}

func TestAddActivity_PostsPayloadAndDecodesCreated(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var a model.Activity
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			t.Errorf("decode: %v", err)
		}
		if a.Date != "2025-06-01T00:00:00" {
			t.Errorf("date = %q", a.Date)
		}
		a.ID = "act-1"
		_ = json.NewEncoder(w).Encode(a)
	})

	created, err := c.AddActivity(context.Background(), model.Activity{
		LeadID:      "lead-1",
		Description: "intro call",
		Type:        "call",
		Date:        model.NormalizeActivityDate("2025-06-01"),
	})
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	if created.ID != "act-1" || created.LeadID != "lead-1" {
		t.Fatalf("created = %+v", created)
	}
}

func TestListActivities_FiltersByLeadID(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("leadId"); got != "lead-9" {
			t.Errorf("leadId = %q", got)
		}
		_ = json.NewEncoder(w).Encode([]model.Activity{{ID: "a1", LeadID: "lead-9"}})
	})

	acts, err := c.ListActivities(context.Background(), "lead-9")
	if err != nil {
		t.Fatalf("ListActivities: %v", err)
	}
	if len(acts) != 1 || acts[0].ID != "a1" {
		t.Fatalf("acts = %+v", acts)
	}
}

func TestUpdateLead_PutsToIDPath(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/leads/lead-7" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var l model.Lead
		_ = json.NewDecoder(r.Body).Decode(&l)
		_ = json.NewEncoder(w).Encode(l)
	})

	lead := model.Lead{ID: "lead-7", Name: "Acme", Email: "a@acme.io", Status: model.StatusNew, Priority: model.PriorityLow}
	if _, err := c.UpdateLead(context.Background(), lead); err != nil {
		t.Fatalf("UpdateLead: %v", err)
	}
}
