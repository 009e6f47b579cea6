package model

type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusQualified Status = "Qualified"
	StatusClosed    Status = "Closed"
)

// Statuses lists the closed status set in UI order.
var Statuses = []Status{StatusNew, StatusContacted, StatusQualified, StatusClosed}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

type Lead struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
	Notes    string   `json:"notes,omitempty"`
	// CreatedAt is kept as the backend's wire string; display formatting is
	// best-effort (the backend does not promise a timezone suffix).
	CreatedAt string `json:"createdAt,omitempty"`
}

type Activity struct {
	ID          string `json:"id"`
	LeadID      string `json:"leadId"`
	Description string `json:"description"`
	Type        string `json:"type"`
	// Date always carries a time component on the wire; see NormalizeActivityDate.
	Date string `json:"date"`
}
