package store

import (
	"context"
	"sync"

	"github.com/eventify/eventify-client/internal/domain"
)

type EventAPI interface {
	GetEvents(ctx context.Context) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.Event, error)
	CreateEvent(ctx context.Context, in domain.EventRequest) (domain.Event, error)
	UpdateEvent(ctx context.Context, id string, in domain.EventRequest) (domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	JoinEvent(ctx context.Context, id string) error
	LeaveEvent(ctx context.Context, id string) error
	GetParticipants(ctx context.Context, eventID string) ([]domain.User, error)
}

// TaskInvalidator lets the event store drop an event's task cache entry when
// the event itself is deleted.
type TaskInvalidator interface {
	Clear(eventID string)
}

type EventStore struct {
	api   EventAPI
	tasks TaskInvalidator

	notifier
	mu       sync.RWMutex
	events   []domain.Event
	selected *domain.Event
}

func NewEventStore(api EventAPI, tasks TaskInvalidator) *EventStore {
	return &EventStore{api: api, tasks: tasks}
}

// Load replaces the whole collection with the remote result. On error the
// previous collection is kept.
func (s *EventStore) Load(ctx context.Context) ([]domain.Event, error) {
	items, err := s.api.GetEvents(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.events = items
	s.mu.Unlock()
	s.notify()
	return s.Snapshot(), nil
}

// LoadByID fetches one event and makes it the current selection.
func (s *EventStore) LoadByID(ctx context.Context, id string) (domain.Event, error) {
	item, err := s.api.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}
	s.mu.Lock()
	s.selected = &item
	s.mu.Unlock()
	s.notify()
	return item, nil
}

// Create does not insert the returned event locally; callers re-issue Load
// so server-computed fields never diverge from the cached copy.
func (s *EventStore) Create(ctx context.Context, in domain.EventRequest) (domain.Event, error) {
	return s.api.CreateEvent(ctx, in)
}

// Update patches the returned event into the collection by id when cached.
func (s *EventStore) Update(ctx context.Context, id string, in domain.EventRequest) (domain.Event, error) {
	item, err := s.api.UpdateEvent(ctx, id, in)
	if err != nil {
		return domain.Event{}, err
	}
	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i] = item
			break
		}
	}
	if s.selected != nil && s.selected.ID == id {
		s.selected = &item
	}
	s.mu.Unlock()
	s.notify()
	return item, nil
}

// Delete removes the event locally on success and drops its task cache entry.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.events[:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.events = kept
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
	s.mu.Unlock()
	if s.tasks != nil {
		s.tasks.Clear(id)
	}
	s.notify()
	return nil
}

// Join registers the current user as a participant. The participant list is
// server-owned, so the local copy is refreshed by the next Load.
func (s *EventStore) Join(ctx context.Context, id string) error {
	return s.api.JoinEvent(ctx, id)
}

func (s *EventStore) Leave(ctx context.Context, id string) error {
	return s.api.LeaveEvent(ctx, id)
}

func (s *EventStore) Participants(ctx context.Context, eventID string) ([]domain.User, error) {
	return s.api.GetParticipants(ctx, eventID)
}

// Snapshot returns a copy of the cached collection in server order.
func (s *EventStore) Snapshot() []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *EventStore) Selected() (domain.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return domain.Event{}, false
	}
	return *s.selected, true
}

func (s *EventStore) ClearAll() {
	s.mu.Lock()
	s.events = nil
	s.selected = nil
	s.mu.Unlock()
	s.notify()
}
