package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

func (c *Client) GetNotifications(ctx context.Context) ([]domain.Notification, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Notification
	resp, err := req.SetResult(&out).Get("/api/notifications")
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("notification id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Put("/api/notifications/" + id + "/read")
	return c.finish(resp, err)
}
