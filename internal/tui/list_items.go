package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"leadman-cli/internal/model"
)

// pickItem is a single choice in the sort/filter picker modals. An empty
// value on the filter pickers means "no constraint".
type pickItem struct {
	label string
	value string
}

func (i pickItem) Title() string       { return i.label }
func (i pickItem) Description() string { return "" }
func (i pickItem) FilterValue() string { return i.label }

func newPickList(title string, items []list.Item) list.Model {
	l := list.New(items, newCompactItemDelegate(), 0, 0)
	l.Title = title
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	return l
}

func sortPickItems() []list.Item {
	labels := map[model.SortKey]string{
		model.SortByCreatedAt: "Date",
		model.SortByName:      "Name",
		model.SortByEmail:     "Email",
		model.SortByStatus:    "Status",
		model.SortByPriority:  "Priority",
	}
	items := make([]list.Item, 0, len(model.SortKeys))
	for _, k := range model.SortKeys {
		items = append(items, pickItem{label: labels[k], value: string(k)})
	}
	return items
}

func statusPickItems() []list.Item {
	items := []list.Item{pickItem{label: "All"}}
	for _, s := range model.Statuses {
		items = append(items, pickItem{label: string(s), value: string(s)})
	}
	return items
}

func priorityPickItems() []list.Item {
	items := []list.Item{pickItem{label: "All"}}
	for _, p := range model.Priorities {
		items = append(items, pickItem{label: string(p), value: string(p)})
	}
	return items
}
