package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

func (c *Client) GetEvents(ctx context.Context) ([]domain.Event, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Event
	resp, err := req.SetResult(&out).Get("/api/events")
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	var out domain.Event
	resp, err := req.SetResult(&out).Get("/api/events/" + id)
	if err := c.finish(resp, err); err != nil {
		return domain.Event{}, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, in domain.EventRequest) (domain.Event, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	var out domain.Event
	resp, err := req.SetBody(in).SetResult(&out).Post("/api/events")
	if err := c.finish(resp, err); err != nil {
		return domain.Event{}, err
	}
	return out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in domain.EventRequest) (domain.Event, error) {
	if id == "" {
		return domain.Event{}, fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.Event{}, err
	}
	var out domain.Event
	resp, err := req.SetBody(in).SetResult(&out).Put("/api/events/" + id)
	if err := c.finish(resp, err); err != nil {
		return domain.Event{}, err
	}
	return out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete("/api/events/" + id)
	return c.finish(resp, err)
}

func (c *Client) JoinEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Post("/api/events/" + id + "/join")
	return c.finish(resp, err)
}

func (c *Client) LeaveEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete("/api/events/" + id + "/join")
	return c.finish(resp, err)
}

func (c *Client) GetParticipants(ctx context.Context, eventID string) ([]domain.User, error) {
	if eventID == "" {
		return nil, fmt.Errorf("event id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.User
	resp, err := req.SetResult(&out).Get("/api/events/" + eventID + "/participants")
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
