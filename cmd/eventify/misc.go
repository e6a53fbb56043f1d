package main

import (
	"fmt"
	"strings"

	"github.com/eventify/eventify-client/internal/derive"
	"github.com/eventify/eventify-client/internal/domain"
	"github.com/spf13/cobra"
)

func newMessagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Direct messages",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "inbox",
			Short: "Show the inbox grouped into conversations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				inbox, err := a.Messages.LoadInbox(cmd.Context())
				if err != nil {
					return err
				}
				session, _ := a.Session()
				return printJSON(derive.Conversations(inbox, session.UserID))
			},
		},
		&cobra.Command{
			Use:   "conversation USER_ID",
			Short: "Show the conversation with one user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				msgs, err := a.Messages.LoadConversation(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(msgs)
			},
		},
		&cobra.Command{
			Use:   "send USER_ID CONTENT...",
			Short: "Send a direct message",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				msg, err := a.Messages.Send(cmd.Context(), args[0], strings.Join(args[1:], " "))
				if err != nil {
					return err
				}
				return printJSON(msg)
			},
		},
	)
	return cmd
}

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Notifications",
	}
	var unreadOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			items, err := a.Notifications.Load(cmd.Context())
			if err != nil {
				return err
			}
			if unreadOnly {
				kept := items[:0]
				for _, it := range items {
					if !it.Read {
						kept = append(kept, it)
					}
				}
				items = kept
			}
			return printJSON(items)
		},
	}
	list.Flags().BoolVar(&unreadOnly, "unread", false, "only unread notifications")
	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "read NOTIFICATION_ID",
			Short: "Mark one notification as read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				if _, err := a.Notifications.Load(cmd.Context()); err != nil {
					return err
				}
				if err := a.Notifications.MarkRead(cmd.Context(), args[0]); err != nil {
					return err
				}
				unread := derive.UnreadNotifications(a.Notifications.Snapshot())
				fmt.Fprintf(cmd.OutOrStdout(), "marked read, %d unread left\n", unread)
				return nil
			},
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Poll for notifications until interrupted",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				if _, err := a.Notifications.Load(cmd.Context()); err != nil {
					return err
				}
				a.Notifications.Subscribe(func() {
					unread := derive.UnreadNotifications(a.Notifications.Snapshot())
					fmt.Fprintf(cmd.OutOrStdout(), "%d notification(s), %d unread\n",
						len(a.Notifications.Snapshot()), unread)
				})
				a.RunNotificationPoller(cmd.Context())
				return nil
			},
		},
	)
	return cmd
}

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User administration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List users, falling back to participant enrichment",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				if _, err := a.Events.Load(cmd.Context()); err != nil {
					return err
				}
				failures, err := a.RefreshUsers(cmd.Context())
				if err != nil {
					return err
				}
				if len(failures) > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d event(s) could not be enriched\n", len(failures))
				}
				return printJSON(a.Users.Snapshot())
			},
		},
		&cobra.Command{
			Use:   "delete USER_ID",
			Short: "Delete a user",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := buildApp()
				if err != nil {
					return err
				}
				if err := a.Users.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "user deleted")
				return nil
			},
		},
		newUsersProfileCmd(),
	)
	return cmd
}

func newUsersProfileCmd() *cobra.Command {
	var req domain.UpdateProfileRequest
	var emailPrefs, pushPrefs bool
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the current user's profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("notify-email") || cmd.Flags().Changed("notify-push") {
				req.Preferences = &domain.NotificationPreferences{Email: emailPrefs, Push: pushPrefs}
			}
			user, err := a.Client().UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.AvatarURL, "avatar", "", "avatar image url")
	cmd.Flags().BoolVar(&emailPrefs, "notify-email", true, "receive email notifications")
	cmd.Flags().BoolVar(&pushPrefs, "notify-push", true, "receive push notifications")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Derived admin statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if _, err := a.Events.Load(cmd.Context()); err != nil {
				return err
			}
			if _, err := a.RefreshUsers(cmd.Context()); err != nil {
				return err
			}
			return printJSON(a.Stats())
		},
	}
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat MESSAGE...",
		Short: "One assistant turn",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			reply, err := a.Chat.Send(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}
