package store

import (
	"context"
	"sync"

	"github.com/eventify/eventify-client/internal/domain"
)

type TaskAPI interface {
	CreateTask(ctx context.Context, eventID string, in domain.TaskRequest) (domain.Task, error)
	GetTasksForEvent(ctx context.Context, eventID string) ([]domain.Task, error)
	UpdateTask(ctx context.Context, eventID, taskID string, in domain.TaskRequest) (domain.Task, error)
	DeleteTask(ctx context.Context, eventID, taskID string) error
}

// TaskCache maps event ids to that event's ordered task list. Entries are
// installed and invalidated per event; loading one event never touches the
// others.
type TaskCache struct {
	api TaskAPI

	notifier
	mu      sync.RWMutex
	byEvent map[string][]domain.Task
}

func NewTaskCache(api TaskAPI) *TaskCache {
	return &TaskCache{api: api, byEvent: make(map[string][]domain.Task)}
}

func (s *TaskCache) LoadForEvent(ctx context.Context, eventID string) ([]domain.Task, error) {
	items, err := s.api.GetTasksForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.byEvent[eventID] = items
	s.mu.Unlock()
	s.notify()
	return s.TasksFor(eventID), nil
}

// Create does not insert locally; callers reload the event's list.
func (s *TaskCache) Create(ctx context.Context, eventID string, in domain.TaskRequest) (domain.Task, error) {
	return s.api.CreateTask(ctx, eventID, in)
}

// Update patches the returned task in place inside its event's list.
func (s *TaskCache) Update(ctx context.Context, eventID, taskID string, in domain.TaskRequest) (domain.Task, error) {
	item, err := s.api.UpdateTask(ctx, eventID, taskID, in)
	if err != nil {
		return domain.Task{}, err
	}
	s.patch(eventID, taskID, item)
	return item, nil
}

// PatchStatus rebuilds a full task body from the cached task with only the
// status replaced. The remote contract needs the whole task on update, so a
// partial request would silently drop description, assignee and due date.
func (s *TaskCache) PatchStatus(ctx context.Context, task domain.Task, status domain.TaskStatus) (domain.Task, error) {
	req := domain.TaskRequest{
		Title:       task.Title,
		Description: task.Description,
		Status:      status,
		DueDate:     task.DueDate,
	}
	if task.AssignedTo != nil {
		req.AssignedTo = task.AssignedTo.ID
	}
	return s.Update(ctx, task.EventID, task.ID, req)
}

func (s *TaskCache) Delete(ctx context.Context, eventID, taskID string) error {
	if err := s.api.DeleteTask(ctx, eventID, taskID); err != nil {
		return err
	}
	s.mu.Lock()
	list, ok := s.byEvent[eventID]
	if ok {
		kept := list[:0]
		for _, t := range list {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		s.byEvent[eventID] = kept
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

func (s *TaskCache) patch(eventID, taskID string, item domain.Task) {
	s.mu.Lock()
	if list, ok := s.byEvent[eventID]; ok {
		for i := range list {
			if list[i].ID == taskID {
				list[i] = item
				break
			}
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Clear drops one event's cached list, leaving all other entries untouched.
func (s *TaskCache) Clear(eventID string) {
	s.mu.Lock()
	delete(s.byEvent, eventID)
	s.mu.Unlock()
	s.notify()
}

func (s *TaskCache) ClearAll() {
	s.mu.Lock()
	s.byEvent = make(map[string][]domain.Task)
	s.mu.Unlock()
	s.notify()
}

func (s *TaskCache) TasksFor(eventID string) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.byEvent[eventID]
	if !ok {
		return nil
	}
	out := make([]domain.Task, len(list))
	copy(out, list)
	return out
}

// Snapshot returns a copy of the whole event-to-tasks mapping.
func (s *TaskCache) Snapshot() map[string][]domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]domain.Task, len(s.byEvent))
	for id, list := range s.byEvent {
		cp := make([]domain.Task, len(list))
		copy(cp, list)
		out[id] = cp
	}
	return out
}
