package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

func (c *Client) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.User
	resp, err := req.SetResult(&out).Get("/api/users")
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("user id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete("/api/users/" + id)
	return c.finish(resp, err)
}

func (c *Client) UpdateProfile(ctx context.Context, in domain.UpdateProfileRequest) (domain.User, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.User{}, err
	}
	var out domain.User
	resp, err := req.SetBody(in).SetResult(&out).Put("/api/users/me")
	if err := c.finish(resp, err); err != nil {
		return domain.User{}, err
	}
	return out, nil
}
