package derive

import "github.com/eventify/eventify-client/internal/domain"

// ComputeStats derives the admin dashboard numbers from the current event
// and user snapshots.
//
// TotalUsers is the size of the union of every participant id across events
// and every id in the loaded user collection, so it can run ahead of or
// behind the role breakdown until enrichment completes. TotalParticipants
// sums participant-list sizes without deduplication: one person joined to
// two events counts twice. UsersByRole groups the loaded user collection
// only.
func ComputeStats(events []domain.Event, users []domain.User) domain.AdminStats {
	unique := make(map[string]struct{})
	totalParticipants := 0
	for _, e := range events {
		totalParticipants += len(e.Participants)
		for _, id := range e.Participants {
			unique[id] = struct{}{}
		}
	}
	byRole := make(map[domain.Role]int)
	for _, u := range users {
		unique[u.ID] = struct{}{}
		byRole[u.Role]++
	}
	return domain.AdminStats{
		TotalUsers:        len(unique),
		TotalEvents:       len(events),
		TotalParticipants: totalParticipants,
		UsersByRole:       byRole,
	}
}

// UnreadNotifications counts cached notifications still flagged unread.
func UnreadNotifications(items []domain.Notification) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}
