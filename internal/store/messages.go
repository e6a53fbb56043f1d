package store

import (
	"context"
	"sync"

	"github.com/eventify/eventify-client/internal/domain"
)

type MessageAPI interface {
	SendMessage(ctx context.Context, in domain.SendMessageRequest) (domain.Message, error)
	GetInbox(ctx context.Context) ([]domain.Message, error)
	GetConversation(ctx context.Context, otherUserID string) ([]domain.Message, error)
}

// MessageStore holds the inbox plus the one conversation currently open.
type MessageStore struct {
	api MessageAPI

	notifier
	mu           sync.RWMutex
	inbox        []domain.Message
	conversation []domain.Message
	otherUserID  string
}

func NewMessageStore(api MessageAPI) *MessageStore {
	return &MessageStore{api: api}
}

func (s *MessageStore) LoadInbox(ctx context.Context) ([]domain.Message, error) {
	items, err := s.api.GetInbox(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.inbox = items
	s.mu.Unlock()
	s.notify()
	return s.Inbox(), nil
}

func (s *MessageStore) LoadConversation(ctx context.Context, otherUserID string) ([]domain.Message, error) {
	items, err := s.api.GetConversation(ctx, otherUserID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.conversation = items
	s.otherUserID = otherUserID
	s.mu.Unlock()
	s.notify()
	return s.Conversation(), nil
}

// Send appends the server's echo of the message to the open conversation.
func (s *MessageStore) Send(ctx context.Context, receiverID, content string) (domain.Message, error) {
	msg, err := s.api.SendMessage(ctx, domain.SendMessageRequest{ReceiverID: receiverID, Content: content})
	if err != nil {
		return domain.Message{}, err
	}
	s.mu.Lock()
	s.conversation = append(s.conversation, msg)
	s.mu.Unlock()
	s.notify()
	return msg, nil
}

func (s *MessageStore) Inbox() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.inbox))
	copy(out, s.inbox)
	return out
}

func (s *MessageStore) Conversation() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.conversation))
	copy(out, s.conversation)
	return out
}

func (s *MessageStore) ConversationWith() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.otherUserID
}

func (s *MessageStore) ClearConversation() {
	s.mu.Lock()
	s.conversation = nil
	s.otherUserID = ""
	s.mu.Unlock()
	s.notify()
}

func (s *MessageStore) ClearAll() {
	s.mu.Lock()
	s.inbox = nil
	s.conversation = nil
	s.otherUserID = ""
	s.mu.Unlock()
	s.notify()
}
