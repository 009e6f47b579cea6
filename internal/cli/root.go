package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"leadman-cli/internal/api"
	"leadman-cli/internal/config"
	"leadman-cli/internal/format"
	"leadman-cli/internal/session"
	"leadman-cli/internal/tui"
)

type App struct {
	APIBaseURL string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "leadman",
		Short:        "Lead manager CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  leadman

  # Scriptable commands
  leadman login --username ada --password secret
  leadman leads list --status New --sort-by name --order asc
  leadman activities add --lead 42 --description "Intro call" --type Call --date 2025-06-01
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIBaseURL, "api", "", "API base URL (overrides LEADMAN_API_URL)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("LEADMAN_FORMAT", "json"), "Output format (json|table)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newLeadsCmd(app))
	cmd.AddCommand(newActivitiesCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(app *App) error {
	client, sess, err := connect(app)
	if err != nil {
		return err
	}
	return tui.Run(client, sess)
}

// connect builds the API client and the session store shared by every
// command. The durable token (if any) is loaded eagerly so scriptable
// commands are authenticated without extra steps.
func connect(app *App) (*api.Client, *session.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	base := cfg.APIBaseURL
	if app.APIBaseURL != "" {
		base = app.APIBaseURL
	}
	client := api.New(base, cfg.Timeout)

	sess := session.New()
	sess.OnChange(client.SetToken)
	if err := sess.Load(); err != nil {
		return nil, nil, err
	}
	return client, sess, nil
}

// writeOut emits the command payload as JSON. Commands with a natural
// tabular shape go through writeTable instead.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}

// writeTable honors --format: a plain aligned table when requested,
// otherwise the same JSON envelope as writeOut.
func writeTable(cmd *cobra.Command, app *App, header []string, rows [][]string, v any) error {
	if app.Format == format.Table {
		return format.WriteTable(cmd.OutOrStdout(), header, rows)
	}
	return writeOut(cmd, app, v)
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}
