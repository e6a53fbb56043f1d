package store

import (
	"context"
	"sync"

	"github.com/eventify/eventify-client/internal/domain"
)

type NotificationAPI interface {
	GetNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

type NotificationStore struct {
	api NotificationAPI

	notifier
	mu    sync.RWMutex
	items []domain.Notification
}

func NewNotificationStore(api NotificationAPI) *NotificationStore {
	return &NotificationStore{api: api}
}

func (s *NotificationStore) Load(ctx context.Context) ([]domain.Notification, error) {
	items, err := s.api.GetNotifications(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.notify()
	return s.Snapshot(), nil
}

// MarkRead flips exactly one cached notification's read flag once the
// backend confirms.
func (s *NotificationStore) MarkRead(ctx context.Context, id string) error {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *NotificationStore) Snapshot() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *NotificationStore) ClearAll() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.notify()
}
