package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"leadman-cli/internal/model"
)

func newLeadsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Lead commands",
	}
	cmd.AddCommand(newLeadsListCmd(app))
	cmd.AddCommand(newLeadsCreateCmd(app))
	cmd.AddCommand(newLeadsUpdateCmd(app))
	cmd.AddCommand(newLeadsDeleteCmd(app))
	return cmd
}

func newLeadsListCmd(app *App) *cobra.Command {
	var sortBy, order, status, priority, name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := model.DefaultLeadQuery()
			if sortBy != "" {
				k := model.SortKey(sortBy)
				if !k.Valid() {
					return writeErr(cmd, fmt.Errorf("unknown sort key: %s", sortBy))
				}
				q.SortBy = k
			}
			switch order {
			case "", model.OrderAsc, model.OrderDesc:
				if order != "" {
					q.Order = order
				}
			default:
				return writeErr(cmd, fmt.Errorf("unknown order: %s (want asc|desc)", order))
			}
			if status != "" {
				s := model.Status(status)
				if !s.Valid() {
					return writeErr(cmd, fmt.Errorf("unknown status: %s", status))
				}
				q.Status = s
			}
			if priority != "" {
				p := model.Priority(priority)
				if !p.Valid() {
					return writeErr(cmd, fmt.Errorf("unknown priority: %s", priority))
				}
				q.Priority = p
			}
			q.Name = name

			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			leads, err := client.ListLeads(context.Background(), q)
			if err != nil {
				return writeErr(cmd, err)
			}

			rows := make([][]string, 0, len(leads))
			for _, l := range leads {
				rows = append(rows, []string{l.ID, l.Name, l.Email, l.Phone, string(l.Status), string(l.Priority), model.FormatCreatedAt(l.CreatedAt)})
			}
			header := []string{"ID", "NAME", "EMAIL", "PHONE", "STATUS", "PRIORITY", "CREATED"}
			return writeTable(cmd, app, header, rows, map[string]any{"data": leads})
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort key (createdAt|name|email|status|priority)")
	cmd.Flags().StringVar(&order, "order", "", "Sort order (asc|desc)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&priority, "priority", "", "Filter by priority")
	cmd.Flags().StringVar(&name, "name", "", "Filter by name (substring)")
	return cmd
}

func newLeadsCreateCmd(app *App) *cobra.Command {
	var lead model.Lead
	var status, priority string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := leadFromFlags(lead, status, priority)
			if err != nil {
				return writeErr(cmd, err)
			}
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			created, err := client.CreateLead(context.Background(), l)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}

	cmd.Flags().StringVar(&lead.Name, "name", "", "Lead name")
	cmd.Flags().StringVar(&lead.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&lead.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&status, "status", string(model.StatusNew), "Status")
	cmd.Flags().StringVar(&priority, "priority", string(model.PriorityMedium), "Priority")
	cmd.Flags().StringVar(&lead.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLeadsUpdateCmd(app *App) *cobra.Command {
	var lead model.Lead
	var status, priority string

	cmd := &cobra.Command{
		Use:   "update <lead-id>",
		Short: "Update a lead (full replacement)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := leadFromFlags(lead, status, priority)
			if err != nil {
				return writeErr(cmd, err)
			}
			l.ID = args[0]
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			updated, err := client.UpdateLead(context.Background(), l)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": updated})
		},
	}

	cmd.Flags().StringVar(&lead.Name, "name", "", "Lead name")
	cmd.Flags().StringVar(&lead.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&lead.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&status, "status", string(model.StatusNew), "Status")
	cmd.Flags().StringVar(&priority, "priority", string(model.PriorityMedium), "Priority")
	cmd.Flags().StringVar(&lead.Notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLeadsDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <lead-id>",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.DeleteLead(context.Background(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"id": args[0], "status": "deleted"}})
		},
	}
	return cmd
}

func leadFromFlags(lead model.Lead, status, priority string) (model.Lead, error) {
	s := model.Status(status)
	if !s.Valid() {
		return model.Lead{}, fmt.Errorf("unknown status: %s", status)
	}
	p := model.Priority(priority)
	if !p.Valid() {
		return model.Lead{}, fmt.Errorf("unknown priority: %s", priority)
	}
	lead.Status = s
	lead.Priority = p
	return lead, nil
}
