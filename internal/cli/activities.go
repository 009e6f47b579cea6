package cli

import (
	"context"

	"github.com/spf13/cobra"

	"leadman-cli/internal/model"
)

func newActivitiesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "Activity commands",
	}
	cmd.AddCommand(newActivitiesListCmd(app))
	cmd.AddCommand(newActivitiesAddCmd(app))
	cmd.AddCommand(newActivitiesDeleteCmd(app))
	return cmd
}

func newActivitiesListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <lead-id>",
		Short: "List a lead's activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			acts, err := client.ListActivities(context.Background(), args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			rows := make([][]string, 0, len(acts))
			for _, a := range acts {
				rows = append(rows, []string{a.ID, a.Type, a.Date, a.Description})
			}
			header := []string{"ID", "TYPE", "DATE", "DESCRIPTION"}
			return writeTable(cmd, app, header, rows, map[string]any{"data": acts})
		},
	}
	return cmd
}

func newActivitiesAddCmd(app *App) *cobra.Command {
	var a model.Activity

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an activity on a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Date = model.NormalizeActivityDate(a.Date)
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			created, err := client.AddActivity(context.Background(), a)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": created})
		},
	}

	cmd.Flags().StringVar(&a.LeadID, "lead", "", "Lead id")
	cmd.Flags().StringVar(&a.Description, "description", "", "What happened")
	cmd.Flags().StringVar(&a.Type, "type", "", "Activity type (e.g. Call, Email, Meeting)")
	cmd.Flags().StringVar(&a.Date, "date", "", "Date (YYYY-MM-DD or full timestamp)")
	_ = cmd.MarkFlagRequired("lead")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newActivitiesDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <activity-id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.DeleteActivity(context.Background(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"id": args[0], "status": "deleted"}})
		},
	}
	return cmd
}
