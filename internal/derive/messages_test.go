package derive

import (
	"testing"

	"github.com/eventify/eventify-client/internal/domain"
)

func ref(id string) domain.UserRef { return domain.UserRef{ID: id, Name: "user " + id} }

func TestConversations(t *testing.T) {
	t.Parallel()
	me := "me"
	inbox := []domain.Message{
		{ID: "m1", Sender: ref("alice"), Receiver: ref(me), Content: "hi", CreatedAt: "2026-03-01T10:00:00Z"},
		{ID: "m2", Sender: ref(me), Receiver: ref("alice"), Content: "hey", CreatedAt: "2026-03-01T10:05:00Z"},
		{ID: "m3", Sender: ref("bob"), Receiver: ref(me), Content: "yo", CreatedAt: "2026-03-02T08:00:00Z"},
		{ID: "m4", Sender: ref("alice"), Receiver: ref(me), Content: "?", CreatedAt: "2026-03-01T11:00:00Z"},
	}
	convs := Conversations(inbox, me)
	if len(convs) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(convs))
	}
	// bob's thread is newer and sorts first.
	if convs[0].OtherUser.ID != "bob" || convs[1].OtherUser.ID != "alice" {
		t.Fatalf("unexpected ordering: %s, %s", convs[0].OtherUser.ID, convs[1].OtherUser.ID)
	}
	alice := convs[1]
	if alice.LastMessage == nil || alice.LastMessage.ID != "m4" {
		t.Fatalf("unexpected last message: %+v", alice.LastMessage)
	}
	// m1 and m4 are unread and addressed to me; m2 is outgoing.
	if alice.UnreadCount != 2 {
		t.Fatalf("alice unread = %d", alice.UnreadCount)
	}
	if convs[0].UnreadCount != 1 {
		t.Fatalf("bob unread = %d", convs[0].UnreadCount)
	}
}

func TestConversationsReadMessagesNotCounted(t *testing.T) {
	t.Parallel()
	inbox := []domain.Message{
		{ID: "m1", Sender: ref("alice"), Receiver: ref("me"), Read: true, CreatedAt: "2026-03-01T10:00:00Z"},
	}
	convs := Conversations(inbox, "me")
	if len(convs) != 1 || convs[0].UnreadCount != 0 {
		t.Fatalf("unexpected conversations: %+v", convs)
	}
}

func TestUnreadMessages(t *testing.T) {
	t.Parallel()
	inbox := []domain.Message{
		{Sender: ref("alice"), Receiver: ref("me")},
		{Sender: ref("me"), Receiver: ref("alice")},
		{Sender: ref("bob"), Receiver: ref("me"), Read: true},
	}
	if n := UnreadMessages(inbox, "me"); n != 1 {
		t.Fatalf("UnreadMessages = %d", n)
	}
}
