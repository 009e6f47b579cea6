package tui

import (
	"leadman-cli/internal/model"
)

type view int

const (
	viewLogin view = iota
	viewRegister
	viewLeads
)

type modalKind int

const (
	modalNone modalKind = iota
	modalSortBy
	modalStatusFilter
	modalPriorityFilter
	modalLeadForm
	modalActivity
	modalConfirmDelete
	modalNotes
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// sessionLoadedMsg resolves the undetermined auth state once the durable
// token file has been read.
type sessionLoadedMsg struct{ err string }

type loginDoneMsg struct {
	token string
	err   string
}

type registerDoneMsg struct{ err string }

type leadsLoadedMsg struct {
	leads []model.Lead
	err   string
}

// leadSavedMsg reports a create-or-update from the lead form.
type leadSavedMsg struct{ err string }

type leadDeletedMsg struct{ err string }

type activitiesLoadedMsg struct {
	leadID string
	acts   []model.Activity
	err    string
}

type activityAddedMsg struct {
	leadID string
	err    string
}

type activityDeletedMsg struct {
	leadID string
	err    string
}

// searchDebounceMsg fires after the search quiet period. seq guards against
// stale timers: every keystroke bumps searchSeq, so only the tick scheduled
// by the final keystroke commits the term.
type searchDebounceMsg struct{ seq int }

type minibufferClearMsg struct{ seq int }
