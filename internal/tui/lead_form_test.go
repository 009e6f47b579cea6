package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"leadman-cli/internal/model"
)

func TestLeadForm_AOpensCreateMode(t *testing.T) {
	m := leadsModel(t)

	mAny, _ := m.Update(keyRune('a'))
	m2 := mAny.(appModel)
	if m2.modal != modalLeadForm || m2.form == nil {
		t.Fatal("a must open the lead form")
	}
	if m2.form.editMode() {
		t.Fatal("a must open in create mode")
	}
	if got := m2.View(); !strings.Contains(got, "Add Lead") {
		t.Fatalf("expected Add Lead title, got %q", got)
	}
}

func TestLeadForm_EPrefillsSelectedLead(t *testing.T) {
	m := leadsModel(t)
	mAny, _ := m.Update(keyRune('j'))
	m2 := mAny.(appModel)

	mAny, _ = m2.Update(keyRune('e'))
	m3 := mAny.(appModel)
	if m3.form == nil || !m3.form.editMode() {
		t.Fatal("e must open the form in edit mode")
	}
	if m3.form.nameInput.Value() != "Grace Hopper" {
		t.Fatalf("prefilled name = %q", m3.form.nameInput.Value())
	}
	if m3.form.status != model.StatusContacted || m3.form.priority != model.PriorityLow {
		t.Fatalf("prefilled enums = %v/%v", m3.form.status, m3.form.priority)
	}
	if got := m3.View(); !strings.Contains(got, "Edit Lead") {
		t.Fatalf("expected Edit Lead title, got %q", got)
	}
}

func TestLeadForm_SubmitRequiresNameAndEmail(t *testing.T) {
	m := leadsModel(t)
	mAny, _ := m.Update(keyRune('a'))
	m2 := mAny.(appModel)

	mAny, cmd := m2.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m3 := mAny.(appModel)
	if cmd != nil {
		t.Fatal("an invalid form must not reach the network")
	}
	if m3.form.err != "Please fill in name and email." {
		t.Fatalf("form err = %q", m3.form.err)
	}
	if m3.form.busy {
		t.Fatal("an invalid form must not go busy")
	}
}

func TestLeadForm_ValidSubmitGoesBusy(t *testing.T) {
	m := leadsModel(t)
	mAny, _ := m.Update(keyRune('a'))
	m2 := typeString(t, mAny.(appModel), "Ada")
	mAny, _ = m2.Update(tea.KeyMsg{Type: tea.KeyTab})
	m3 := typeString(t, mAny.(appModel), "ada@example.com")

	mAny, cmd := m3.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m4 := mAny.(appModel)
	if cmd == nil || !m4.form.busy {
		t.Fatal("a valid submit must issue the save command")
	}
	if m4.form.err != "" {
		t.Fatalf("unexpected form err %q", m4.form.err)
	}
}

func TestLeadForm_EnumCyclesWrapAround(t *testing.T) {
	f := newLeadForm(nil)
	f.setFocus(formFieldStatus)

	f.cycleEnum(-1)
	if f.status != model.StatusClosed {
		t.Fatalf("cycling back from New should wrap to Closed, got %v", f.status)
	}
	f.cycleEnum(1)
	if f.status != model.StatusNew {
		t.Fatalf("cycling forward should return to New, got %v", f.status)
	}
}

func TestLeadForm_SaveSuccessClosesAndRefetches(t *testing.T) {
	m := leadsModel(t)
	mAny, _ := m.Update(keyRune('a'))
	m2 := mAny.(appModel)
	m2.form.busy = true

	mAny, cmd := m2.Update(leadSavedMsg{})
	m3 := mAny.(appModel)
	if m3.form != nil || m3.modal != modalNone {
		t.Fatal("a successful save must close the form")
	}
	if cmd == nil || !m3.leadsLoading {
		t.Fatal("a successful save must refetch the list")
	}
}

func TestLeadForm_SaveErrorKeepsFormOpen(t *testing.T) {
	m := leadsModel(t)
	mAny, _ := m.Update(keyRune('a'))
	m2 := mAny.(appModel)
	m2.form.busy = true

	mAny, _ = m2.Update(leadSavedMsg{err: "Email already exists"})
	m3 := mAny.(appModel)
	if m3.form == nil || m3.modal != modalLeadForm {
		t.Fatal("a failed save must keep the form open")
	}
	if m3.form.busy {
		t.Fatal("a response must clear the busy flag")
	}
	if m3.form.err != "Email already exists" {
		t.Fatalf("form err = %q", m3.form.err)
	}
}

func TestLeadForm_EscCancelsLocally(t *testing.T) {
	m := leadsModel(t)
	mAny, _ := m.Update(keyRune('a'))
	m2 := mAny.(appModel)

	mAny, cmd := m2.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m3 := mAny.(appModel)
	if m3.form != nil || m3.modal != modalNone {
		t.Fatal("esc must discard the form")
	}
	if cmd != nil {
		t.Fatal("cancel is purely local")
	}
}
