package store

import (
	"context"
	"sync"

	"github.com/eventify/eventify-client/internal/domain"
)

const chatGreeting = "Hi! I'm the Eventify assistant. How can I help you today?"

type ChatAPI interface {
	Chat(ctx context.Context, in domain.ChatRequest) (domain.ChatResponse, error)
}

// ChatMessage is one rendered line of the assistant conversation.
type ChatMessage struct {
	Text     string `json:"text"`
	FromUser bool   `json:"fromUser"`
}

// ChatSession keeps the local transcript with the assistant. Unlike the
// other stores it appends rather than reloads; the transcript only exists
// client-side.
type ChatSession struct {
	api ChatAPI

	notifier
	mu       sync.RWMutex
	messages []ChatMessage
}

func NewChatSession(api ChatAPI) *ChatSession {
	return &ChatSession{api: api, messages: []ChatMessage{{Text: chatGreeting}}}
}

// Send records the user's line, performs one assistant turn and records the
// reply. On failure an apology line is appended and the error is still
// returned to the caller.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	history := s.history()
	s.append(ChatMessage{Text: text, FromUser: true})

	resp, err := s.api.Chat(ctx, domain.ChatRequest{Message: text, History: history})
	if err != nil {
		s.append(ChatMessage{Text: "Sorry, I could not process that. Please try again."})
		return "", err
	}
	s.append(ChatMessage{Text: resp.Response})
	return resp.Response, nil
}

func (s *ChatSession) history() []domain.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatTurn, 0, len(s.messages))
	for _, m := range s.messages {
		role := "assistant"
		if m.FromUser {
			role = "user"
		}
		out = append(out, domain.ChatTurn{Role: role, Content: m.Text})
	}
	return out
}

func (s *ChatSession) append(msg ChatMessage) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()
	s.notify()
}

func (s *ChatSession) Transcript() []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *ChatSession) Reset() {
	s.mu.Lock()
	s.messages = []ChatMessage{{Text: chatGreeting}}
	s.mu.Unlock()
	s.notify()
}
