package model

import (
	"net/url"
	"strings"
)

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByEmail     SortKey = "email"
	SortByStatus    SortKey = "status"
	SortByPriority  SortKey = "priority"
	SortByCreatedAt SortKey = "createdAt"
)

var SortKeys = []SortKey{SortByCreatedAt, SortByName, SortByEmail, SortByStatus, SortByPriority}

func (k SortKey) Valid() bool {
	for _, v := range SortKeys {
		if k == v {
			return true
		}
	}
	return false
}

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// LeadQuery is the list-query state for the leads endpoint. The zero value is
// not useful; use DefaultLeadQuery.
type LeadQuery struct {
	SortBy SortKey
	Order  string

	// Empty filter values mean "no constraint" and are omitted from the
	// request entirely (the backend treats an empty string as a literal
	// match value).
	Status   Status
	Priority Priority
	Name     string
}

func DefaultLeadQuery() LeadQuery {
	return LeadQuery{SortBy: SortByCreatedAt, Order: OrderDesc}
}

func (q LeadQuery) Values() url.Values {
	v := url.Values{}
	v.Set("sortBy", string(q.SortBy))
	v.Set("order", q.Order)
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Priority != "" {
		v.Set("priority", string(q.Priority))
	}
	if name := strings.TrimSpace(q.Name); name != "" {
		v.Set("name", name)
	}
	return v
}
