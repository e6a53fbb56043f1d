package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/eventify/eventify-client/internal/app"
	"github.com/eventify/eventify-client/internal/config"
	"github.com/eventify/eventify-client/internal/domain"
	"github.com/eventify/eventify-client/internal/version"
	"github.com/spf13/cobra"
)

func signupRequest(name, email, password, role string) domain.SignupRequest {
	return domain.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     domain.Role(role),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "eventify",
		Short:         "Command-line client for the Eventify platform",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newLoginCmd(),
		newSignupCmd(),
		newLogoutCmd(),
		newEventsCmd(),
		newTasksCmd(),
		newMessagesCmd(),
		newNotificationsCmd(),
		newUsersCmd(),
		newStatsCmd(),
		newChatCmd(),
	)
	return root
}

// buildApp wires config, logger and stores, then restores a persisted
// session when one exists. Commands that need authentication fail later
// with ErrNotAuthenticated if restoration found nothing.
func buildApp() (*app.Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	a, err := app.New(cfg, newLogger(cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	if cfg.SessionKey != "" {
		_, _ = a.RestoreSession()
	}
	return a, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLoginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend and keep the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			session, err := a.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", session.Name, session.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newSignupCmd() *cobra.Command {
	var name, email, password, role string
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			req := signupRequest(name, email, password, role)
			if err := a.Signup(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "account created, log in to continue")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", "participant", "requested role")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the session and clear all cached collections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if err := a.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}
