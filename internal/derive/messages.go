package derive

import (
	"sort"

	"github.com/eventify/eventify-client/internal/domain"
)

// Conversations groups an inbox snapshot into per-counterpart threads for
// the given user. Threads are ordered by their latest message, newest first;
// unread counts only cover messages addressed to the user.
func Conversations(inbox []domain.Message, userID string) []domain.Conversation {
	byOther := make(map[string]*domain.Conversation)
	var order []string
	for i := range inbox {
		msg := inbox[i]
		other := msg.Sender
		if msg.Sender.ID == userID {
			other = msg.Receiver
		}
		conv, ok := byOther[other.ID]
		if !ok {
			conv = &domain.Conversation{OtherUser: other}
			byOther[other.ID] = conv
			order = append(order, other.ID)
		}
		if conv.LastMessage == nil || msg.CreatedAt >= conv.LastMessage.CreatedAt {
			last := msg
			conv.LastMessage = &last
		}
		if msg.Receiver.ID == userID && !msg.Read {
			conv.UnreadCount++
		}
	}
	out := make([]domain.Conversation, 0, len(byOther))
	for _, id := range order {
		out = append(out, *byOther[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].LastMessage, out[j].LastMessage
		if li == nil || lj == nil {
			return lj == nil && li != nil
		}
		return li.CreatedAt > lj.CreatedAt
	})
	return out
}

// UnreadMessages counts inbox messages addressed to the user and not yet
// read.
func UnreadMessages(inbox []domain.Message, userID string) int {
	n := 0
	for _, m := range inbox {
		if m.Receiver.ID == userID && !m.Read {
			n++
		}
	}
	return n
}
