package derive

import (
	"context"

	"github.com/eventify/eventify-client/internal/domain"
)

type ParticipantFetcher interface {
	GetParticipants(ctx context.Context, eventID string) ([]domain.User, error)
}

// EnrichmentFailure records one event whose participant fetch failed.
type EnrichmentFailure struct {
	EventID string
	Err     error
}

// EnrichmentResult is the merged user set plus the per-event failures, so
// callers can tell an incomplete aggregate from a complete one instead of
// losing the failures silently.
type EnrichmentResult struct {
	Users    []domain.User
	Failures []EnrichmentFailure
}

// Partial reports whether at least one per-event fetch failed.
func (r EnrichmentResult) Partial() bool { return len(r.Failures) > 0 }

// EnrichParticipants fetches each event's participant details and merges
// them by user id, first occurrence wins. Events are visited in the given
// order, so the merged set is deterministic.
func EnrichParticipants(ctx context.Context, api ParticipantFetcher, events []domain.Event) EnrichmentResult {
	seen := make(map[string]struct{})
	var result EnrichmentResult
	for _, e := range events {
		users, err := api.GetParticipants(ctx, e.ID)
		if err != nil {
			result.Failures = append(result.Failures, EnrichmentFailure{EventID: e.ID, Err: err})
			continue
		}
		for _, u := range users {
			if _, ok := seen[u.ID]; ok {
				continue
			}
			seen[u.ID] = struct{}{}
			result.Users = append(result.Users, u)
		}
	}
	return result
}
