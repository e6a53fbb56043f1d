package store

import (
	"context"
	"sync"

	"github.com/eventify/eventify-client/internal/domain"
)

type UserAPI interface {
	GetAllUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserStore struct {
	api UserAPI

	notifier
	mu    sync.RWMutex
	users []domain.User
}

func NewUserStore(api UserAPI) *UserStore {
	return &UserStore{api: api}
}

func (s *UserStore) Load(ctx context.Context) ([]domain.User, error) {
	items, err := s.api.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.users = items
	s.mu.Unlock()
	s.notify()
	return s.Snapshot(), nil
}

// Install replaces the collection with a locally assembled user set, e.g.
// the result of participant enrichment when the bulk listing endpoint is
// role-restricted.
func (s *UserStore) Install(users []domain.User) {
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	s.notify()
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *UserStore) Snapshot() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) ClearAll() {
	s.mu.Lock()
	s.users = nil
	s.mu.Unlock()
	s.notify()
}
