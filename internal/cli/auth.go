package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, sess, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			token, err := client.Login(context.Background(), username, password)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.Login(token); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"username": username, "status": "logged in"}})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := client.Register(context.Background(), username, password); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"username": username, "status": "registered"}})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := sess.Logout(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]string{"status": "logged out"}})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show whether a session token is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, sess, err := connect(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !sess.IsAuthenticated() {
				return writeErr(cmd, errors.New("not logged in; run `leadman login`"))
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]bool{"authenticated": true}})
		},
	}
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
