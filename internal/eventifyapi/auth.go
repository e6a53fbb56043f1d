package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

// Login exchanges credentials for a bearer token and installs it on the
// client so subsequent calls are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	if email == "" || password == "" {
		return domain.LoginResponse{}, fmt.Errorf("email and password are required")
	}
	var out domain.LoginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(domain.LoginRequest{Email: email, Password: password}).
		SetResult(&out).
		Post("/api/auth/login")
	if err := c.finish(resp, err); err != nil {
		return domain.LoginResponse{}, err
	}
	c.SetToken(out.Token)
	return out, nil
}

func (c *Client) Signup(ctx context.Context, req domain.SignupRequest) error {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fmt.Errorf("name, email and password are required")
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/signup")
	return c.finish(resp, err)
}
