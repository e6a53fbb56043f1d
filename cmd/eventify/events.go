package main

import (
	"fmt"

	"github.com/eventify/eventify-client/internal/derive"
	"github.com/eventify/eventify-client/internal/domain"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse and manage events",
	}
	cmd.AddCommand(
		newEventsListCmd(),
		newEventsGetCmd(),
		newEventsCreateCmd(),
		newEventsUpdateCmd(),
		newEventsDeleteCmd(),
		newEventsJoinCmd(),
		newEventsLeaveCmd(),
		newEventsParticipantsCmd(),
	)
	return cmd
}

func newEventsListCmd() *cobra.Command {
	var search string
	var logistics, communication, joined bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, optionally scoped to the current user's role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			events, err := a.Events.Load(cmd.Context())
			if err != nil {
				return err
			}
			session, _ := a.Session()
			switch {
			case logistics:
				events = derive.LogisticsEvents(events, session.UserID)
			case communication:
				events = derive.CommunicationEvents(events, session.UserID)
			case joined:
				events = derive.JoinedEvents(events, session.UserID)
			}
			return printJSON(derive.SearchEvents(events, search))
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "substring filter over title and description")
	cmd.Flags().BoolVar(&logistics, "logistics", false, "only events where I have a logistics role")
	cmd.Flags().BoolVar(&communication, "communication", false, "only events where I have a communication role")
	cmd.Flags().BoolVar(&joined, "joined", false, "only events I joined")
	return cmd
}

func newEventsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Fetch one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			event, err := a.Events.LoadByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(event)
		},
	}
}

func eventRequestFlags(cmd *cobra.Command, req *domain.EventRequest) {
	cmd.Flags().StringVar(&req.Title, "title", "", "event title")
	cmd.Flags().StringVar(&req.Description, "description", "", "event description")
	cmd.Flags().StringVar(&req.Date, "date", "", "event date (ISO)")
	cmd.Flags().StringVar(&req.Location, "location", "", "event location")
	cmd.Flags().StringVar(&req.LogisticManager, "logistic-manager", "", "logistics manager user id")
	cmd.Flags().StringSliceVar(&req.LogisticStaff, "logistic-staff", nil, "logistics staff user ids")
	cmd.Flags().StringVar(&req.CommunicationManager, "communication-manager", "", "communication manager user id")
	cmd.Flags().StringSliceVar(&req.CommunicationStaff, "communication-staff", nil, "communication staff user ids")
}

func newEventsCreateCmd() *cobra.Command {
	var req domain.EventRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			created, err := a.Events.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			// The store does not insert optimistically; reload for the
			// server-computed fields.
			if _, err := a.Events.Load(cmd.Context()); err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	eventRequestFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEventsUpdateCmd() *cobra.Command {
	var req domain.EventRequest
	cmd := &cobra.Command{
		Use:   "update EVENT_ID",
		Short: "Replace an event's mutable fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			updated, err := a.Events.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}
	eventRequestFlags(cmd, &req)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newEventsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EVENT_ID",
		Short: "Delete an event and its cached tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if err := a.Events.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "event deleted")
			return nil
		},
	}
}

func newEventsJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join EVENT_ID",
		Short: "Register as a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if err := a.Events.Join(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "joined")
			return nil
		},
	}
}

func newEventsLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave EVENT_ID",
		Short: "Withdraw from an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if err := a.Events.Leave(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "left")
			return nil
		},
	}
}

func newEventsParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants EVENT_ID",
		Short: "List an event's participants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			users, err := a.Events.Participants(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(users)
		},
	}
}
