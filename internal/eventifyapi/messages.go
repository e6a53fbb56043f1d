package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

func (c *Client) SendMessage(ctx context.Context, in domain.SendMessageRequest) (domain.Message, error) {
	if in.ReceiverID == "" || in.Content == "" {
		return domain.Message{}, fmt.Errorf("receiver id and content are required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.Message{}, err
	}
	var out domain.Message
	resp, err := req.SetBody(in).SetResult(&out).Post(c.routes.SendMessage())
	if err := c.finish(resp, err); err != nil {
		return domain.Message{}, err
	}
	return out, nil
}

func (c *Client) GetInbox(ctx context.Context) ([]domain.Message, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Message
	resp, err := req.SetResult(&out).Get(c.routes.Inbox())
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetConversation(ctx context.Context, otherUserID string) ([]domain.Message, error) {
	if otherUserID == "" {
		return nil, fmt.Errorf("other user id is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Message
	resp, err := req.SetResult(&out).Get(c.routes.Conversation(otherUserID))
	if err := c.finish(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}
