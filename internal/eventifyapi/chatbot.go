package eventifyapi

import (
	"context"
	"fmt"

	"github.com/eventify/eventify-client/internal/domain"
)

func (c *Client) Chat(ctx context.Context, in domain.ChatRequest) (domain.ChatResponse, error) {
	if in.Message == "" {
		return domain.ChatResponse{}, fmt.Errorf("message is required")
	}
	req, err := c.newRequest(ctx)
	if err != nil {
		return domain.ChatResponse{}, err
	}
	var out domain.ChatResponse
	resp, err := req.SetBody(in).SetResult(&out).Post("/api/chatbot/chat")
	if err := c.finish(resp, err); err != nil {
		return domain.ChatResponse{}, err
	}
	return out, nil
}
