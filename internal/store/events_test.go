package store

import (
	"context"
	"errors"
	"testing"

	"github.com/eventify/eventify-client/internal/domain"
)

type fakeEventAPI struct {
	getEvents       func(ctx context.Context) ([]domain.Event, error)
	getEvent        func(ctx context.Context, id string) (domain.Event, error)
	createEvent     func(ctx context.Context, in domain.EventRequest) (domain.Event, error)
	updateEvent     func(ctx context.Context, id string, in domain.EventRequest) (domain.Event, error)
	deleteEvent     func(ctx context.Context, id string) error
	joinEvent       func(ctx context.Context, id string) error
	leaveEvent      func(ctx context.Context, id string) error
	getParticipants func(ctx context.Context, eventID string) ([]domain.User, error)
}

func (f *fakeEventAPI) GetEvents(ctx context.Context) ([]domain.Event, error) {
	return f.getEvents(ctx)
}

func (f *fakeEventAPI) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	return f.getEvent(ctx, id)
}

func (f *fakeEventAPI) CreateEvent(ctx context.Context, in domain.EventRequest) (domain.Event, error) {
	return f.createEvent(ctx, in)
}

func (f *fakeEventAPI) UpdateEvent(ctx context.Context, id string, in domain.EventRequest) (domain.Event, error) {
	return f.updateEvent(ctx, id, in)
}

func (f *fakeEventAPI) DeleteEvent(ctx context.Context, id string) error {
	return f.deleteEvent(ctx, id)
}

func (f *fakeEventAPI) JoinEvent(ctx context.Context, id string) error {
	return f.joinEvent(ctx, id)
}

func (f *fakeEventAPI) LeaveEvent(ctx context.Context, id string) error {
	return f.leaveEvent(ctx, id)
}

func (f *fakeEventAPI) GetParticipants(ctx context.Context, eventID string) ([]domain.User, error) {
	return f.getParticipants(ctx, eventID)
}

type fakeInvalidator struct {
	cleared []string
}

func (f *fakeInvalidator) Clear(eventID string) { f.cleared = append(f.cleared, eventID) }

func TestEventStoreLoadReplaces(t *testing.T) {
	first := []domain.Event{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}
	second := []domain.Event{{ID: "e4"}}
	calls := 0
	api := &fakeEventAPI{getEvents: func(context.Context) ([]domain.Event, error) {
		calls++
		if calls == 1 {
			return first, nil
		}
		return second, nil
	}}
	s := NewEventStore(api, nil)

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if got := s.Snapshot(); len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	got := s.Snapshot()
	if len(got) != 1 || got[0].ID != "e4" {
		t.Fatalf("second load must replace, got %+v", got)
	}
}

func TestEventStoreLoadErrorKeepsCollection(t *testing.T) {
	calls := 0
	api := &fakeEventAPI{getEvents: func(context.Context) ([]domain.Event, error) {
		calls++
		if calls == 1 {
			return []domain.Event{{ID: "e1"}}, nil
		}
		return nil, errors.New("network down")
	}}
	s := NewEventStore(api, nil)

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := s.Load(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if got := s.Snapshot(); len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("failed load must not touch the cache, got %+v", got)
	}
}

func TestEventStoreConcurrentLoadsLastCompletedWins(t *testing.T) {
	release := make(chan struct{})
	calls := make(chan int, 2)
	n := 0
	api := &fakeEventAPI{getEvents: func(context.Context) ([]domain.Event, error) {
		n++
		id := n
		calls <- id
		if id == 1 {
			// First request stalls until the second has been installed.
			<-release
			return []domain.Event{{ID: "stale"}}, nil
		}
		return []domain.Event{{ID: "fresh"}}, nil
	}}
	s := NewEventStore(api, nil)

	done := make(chan struct{})
	go func() {
		_, _ = s.Load(context.Background())
		close(done)
	}()
	<-calls

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	<-calls
	close(release)
	<-done

	got := s.Snapshot()
	if len(got) != 1 || got[0].ID != "stale" {
		t.Fatalf("last completed load must win, got %+v", got)
	}
}

func TestEventStoreCreateDoesNotInsert(t *testing.T) {
	api := &fakeEventAPI{createEvent: func(_ context.Context, in domain.EventRequest) (domain.Event, error) {
		return domain.Event{ID: "e9", Title: in.Title}, nil
	}}
	s := NewEventStore(api, nil)

	created, err := s.Create(context.Background(), domain.EventRequest{Title: "gala"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "e9" {
		t.Fatalf("unexpected created event: %+v", created)
	}
	if got := s.Snapshot(); len(got) != 0 {
		t.Fatalf("create must not insert locally, got %+v", got)
	}
}

func TestEventStoreUpdatePatchesInPlace(t *testing.T) {
	api := &fakeEventAPI{
		getEvents: func(context.Context) ([]domain.Event, error) {
			return []domain.Event{{ID: "e1", Title: "old"}, {ID: "e2"}}, nil
		},
		getEvent: func(_ context.Context, id string) (domain.Event, error) {
			return domain.Event{ID: id, Title: "old"}, nil
		},
		updateEvent: func(_ context.Context, id string, in domain.EventRequest) (domain.Event, error) {
			return domain.Event{ID: id, Title: in.Title}, nil
		},
	}
	s := NewEventStore(api, nil)
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := s.LoadByID(context.Background(), "e1"); err != nil {
		t.Fatalf("load by id: %v", err)
	}

	if _, err := s.Update(context.Background(), "e1", domain.EventRequest{Title: "new"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := s.Snapshot()
	if len(got) != 2 || got[0].Title != "new" || got[1].ID != "e2" {
		t.Fatalf("update must patch by id, got %+v", got)
	}
	sel, ok := s.Selected()
	if !ok || sel.Title != "new" {
		t.Fatalf("selection must track the update, got %+v ok=%v", sel, ok)
	}
}

func TestEventStoreDeleteClearsTasks(t *testing.T) {
	inv := &fakeInvalidator{}
	api := &fakeEventAPI{
		getEvents: func(context.Context) ([]domain.Event, error) {
			return []domain.Event{{ID: "e1"}, {ID: "e2"}}, nil
		},
		getEvent: func(_ context.Context, id string) (domain.Event, error) {
			return domain.Event{ID: id}, nil
		},
		deleteEvent: func(context.Context, string) error { return nil },
	}
	s := NewEventStore(api, inv)
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := s.LoadByID(context.Background(), "e1"); err != nil {
		t.Fatalf("load by id: %v", err)
	}

	if err := s.Delete(context.Background(), "e1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got := s.Snapshot()
	if len(got) != 1 || got[0].ID != "e2" {
		t.Fatalf("delete must remove by id, got %+v", got)
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("deleting the selected event must clear the selection")
	}
	if len(inv.cleared) != 1 || inv.cleared[0] != "e1" {
		t.Fatalf("delete must invalidate the task cache entry, got %v", inv.cleared)
	}
}

func TestEventStoreDeleteErrorKeepsCollection(t *testing.T) {
	api := &fakeEventAPI{
		getEvents: func(context.Context) ([]domain.Event, error) {
			return []domain.Event{{ID: "e1"}}, nil
		},
		deleteEvent: func(context.Context, string) error { return errors.New("forbidden") },
	}
	s := NewEventStore(api, &fakeInvalidator{})
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Delete(context.Background(), "e1"); err == nil {
		t.Fatal("expected an error")
	}
	if got := s.Snapshot(); len(got) != 1 {
		t.Fatalf("failed delete must not touch the cache, got %+v", got)
	}
}

func TestEventStoreNotifiesListeners(t *testing.T) {
	api := &fakeEventAPI{getEvents: func(context.Context) ([]domain.Event, error) {
		return []domain.Event{{ID: "e1"}}, nil
	}}
	s := NewEventStore(api, nil)
	fired := 0
	s.Subscribe(func() { fired++ })

	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	s.ClearAll()
	if fired != 2 {
		t.Fatalf("expected 2 notifications, got %d", fired)
	}
}
