package main

import (
	"fmt"
	"time"

	"github.com/eventify/eventify-client/internal/derive"
	"github.com/eventify/eventify-client/internal/domain"
	"github.com/spf13/cobra"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage per-event tasks",
	}
	cmd.AddCommand(
		newTasksListCmd(),
		newTasksCreateCmd(),
		newTasksStatusCmd(),
		newTasksDeleteCmd(),
		newTasksBucketsCmd(),
	)
	return cmd
}

func newTasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list EVENT_ID",
		Short: "List one event's tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			tasks, err := a.Tasks.LoadForEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(tasks)
		},
	}
}

func newTasksCreateCmd() *cobra.Command {
	var req domain.TaskRequest
	var status string
	cmd := &cobra.Command{
		Use:   "create EVENT_ID",
		Short: "Create a task under an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			req.Status = domain.TaskStatus(status)
			created, err := a.Tasks.Create(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			if _, err := a.Tasks.LoadForEvent(cmd.Context(), args[0]); err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "task title")
	cmd.Flags().StringVar(&req.Description, "description", "", "task description")
	cmd.Flags().StringVar(&status, "status", string(domain.TaskPending), "initial status")
	cmd.Flags().StringVar(&req.AssignedTo, "assignee", "", "assignee user id")
	cmd.Flags().StringVar(&req.DueDate, "due", "", "due date (ISO)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status EVENT_ID TASK_ID NEW_STATUS",
		Short: "Change one task's status, keeping its other fields",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			eventID, taskID, status := args[0], args[1], args[2]
			tasks, err := a.Tasks.LoadForEvent(cmd.Context(), eventID)
			if err != nil {
				return err
			}
			for _, t := range tasks {
				if t.ID == taskID {
					updated, err := a.Tasks.PatchStatus(cmd.Context(), t, domain.TaskStatus(status))
					if err != nil {
						return err
					}
					return printJSON(updated)
				}
			}
			return fmt.Errorf("task %s not found in event %s", taskID, eventID)
		},
	}
}

func newTasksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EVENT_ID TASK_ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			if err := a.Tasks.Delete(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "task deleted")
			return nil
		},
	}
}

// newTasksBucketsCmd surfaces the overdue/today classification for the
// tasks assigned to the current user across their logistics events.
func newTasksBucketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buckets",
		Short: "Show my overdue and due-today tasks",
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
			mine := derive.LogisticsEvents(events, session.UserID)
			order := make([]string, 0, len(mine))
			for _, e := range mine {
				order = append(order, e.ID)
				if _, err := a.Tasks.LoadForEvent(cmd.Context(), e.ID); err != nil {
					return err
				}
			}
			assigned := derive.AssignedTasks(a.Tasks.Snapshot(), order, session.UserID)
			buckets := derive.BucketTasks(assigned, time.Now())
			return printJSON(map[string][]domain.Task{
				"overdue": buckets.Overdue,
				"today":   buckets.Today,
			})
		},
	}
}
