package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

func (c *Client) CreateTask(ctx context.Context, eventID string, in domain.TaskRequest) (domain.Task, error) {
	if eventID == "" {
		return domain.Task{}, fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	var out domain.Task
	resp, err := req.SetBody(in).SetResult(&out).Post(c.routes.CreateTask(eventID))
	if err := c.finish(resp, err); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

func (c *Client) GetTasksForEvent(ctx context.Context, eventID string) ([]domain.Task, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Task
	resp, err := req.SetResult(&out).Get(c.routes.TasksForEvent(eventID))
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTask(ctx context.Context, eventID, taskID string, in domain.TaskRequest) (domain.Task, error) {
	if taskID == "" {
		return domain.Task{}, fmt.Errorf("task id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	var out domain.Task
	resp, err := req.SetBody(in).SetResult(&out).Put(c.routes.UpdateTask(eventID, taskID))
	if err := c.finish(resp, err); err != nil {
		return domain.Task{}, err
	}
	return out, nil
}

func (c *Client) DeleteTask(ctx context.Context, eventID, taskID string) error {
	if taskID == "" {
		return fmt.Errorf("task id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete(c.routes.DeleteTask(eventID, taskID))
	return c.finish(resp, err)
}
