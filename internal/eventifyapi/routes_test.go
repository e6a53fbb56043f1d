package eventifyapi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoutesFor(t *testing.T) {
	t.Parallel()

	rs, err := RoutesFor("")
	require.NoError(t, err)
	require.Equal(t, "v2", rs.Name())

	rs, err = RoutesFor("v1")
	require.NoError(t, err)
	require.Equal(t, "v1", rs.Name())

	_, err = RoutesFor("v3")
	require.ErrorContains(t, err, "unknown api version")
}

func TestNestedRoutePaths(t *testing.T) {
	t.Parallel()
	rs := nestedRoutes{}
	require.Equal(t, "/api/events/e1/tasks", rs.CreateTask("e1"))
	require.Equal(t, "/api/events/e1/tasks/t1", rs.UpdateTask("e1", "t1"))
	require.Equal(t, "/api/events/e1/tasks/t1", rs.DeleteTask("e1", "t1"))
	require.Equal(t, "/api/messages/send", rs.SendMessage())
	require.Equal(t, "/api/messages/inbox", rs.Inbox())
	require.Equal(t, "/api/messages/conversation/u1", rs.Conversation("u1"))
}

func TestFlatRoutePaths(t *testing.T) {
	t.Parallel()
	rs := flatRoutes{}
	require.Equal(t, "/api/events/e1/tasks", rs.TasksForEvent("e1"))
	require.Equal(t, "/api/events/tasks/t1", rs.UpdateTask("e1", "t1"))
	require.Equal(t, "/api/events/tasks/t1", rs.DeleteTask("e1", "t1"))
	require.Equal(t, "/api/messages", rs.SendMessage())
	require.Equal(t, "/api/messages", rs.Inbox())
	require.Equal(t, "/api/messages/u1", rs.Conversation("u1"))
}
