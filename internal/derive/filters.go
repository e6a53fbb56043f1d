// Package derive computes read-only views from store snapshots: role-scoped
// event filters, task buckets, admin statistics and conversation groupings.
// Nothing here mutates or caches; every function recomputes from scratch.
package derive

import (
	"strings"

	"github.com/eventify/eventify-client/internal/domain"
)

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// LogisticsEvents keeps events where the user is the logistics manager or
// appears in the logistics staff list. A nil staff list counts as empty.
func LogisticsEvents(events []domain.Event, userID string) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if e.LogisticManager == userID || contains(e.LogisticStaff, userID) {
			out = append(out, e)
		}
	}
	return out
}

// CommunicationEvents is the communication-role counterpart of
// LogisticsEvents.
func CommunicationEvents(events []domain.Event, userID string) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if e.CommunicationManager == userID || contains(e.CommunicationStaff, userID) {
			out = append(out, e)
		}
	}
	return out
}

// OrganizedEvents keeps events the user created or co-organizes.
func OrganizedEvents(events []domain.Event, userID string) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if (e.CreatedBy != nil && e.CreatedBy.ID == userID) || contains(e.Organizers, userID) {
			out = append(out, e)
		}
	}
	return out
}

// JoinedEvents keeps events whose participant list contains the user.
func JoinedEvents(events []domain.Event, userID string) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if contains(e.Participants, userID) {
			out = append(out, e)
		}
	}
	return out
}

// MatchesSearch reports whether the query is a case-insensitive substring of
// the event's title or description. An empty query matches everything.
func MatchesSearch(e domain.Event, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	return e.Description != "" && strings.Contains(strings.ToLower(e.Description), q)
}

// SearchEvents applies MatchesSearch over a collection.
func SearchEvents(events []domain.Event, query string) []domain.Event {
	var out []domain.Event
	for _, e := range events {
		if MatchesSearch(e, query) {
			out = append(out, e)
		}
	}
	return out
}

// AssignedTasks flattens the per-event task cache down to the tasks assigned
// to one user, iterating events in the order given.
func AssignedTasks(tasksByEvent map[string][]domain.Task, eventOrder []string, userID string) []domain.Task {
	var out []domain.Task
	for _, eventID := range eventOrder {
		for _, t := range tasksByEvent[eventID] {
			if t.AssignedTo != nil && t.AssignedTo.ID == userID {
				out = append(out, t)
			}
		}
	}
	return out
}
