package eventifyapi

import "fmt"

// RouteSet abstracts the two backend route generations that coexist in the
// wild: the original nested task/message paths and the flattened ones that
// replaced them. One implementation per backend version, chosen at
// configuration time.
type RouteSet interface {
	Name() string

	CreateTask(eventID string) string
	TasksForEvent(eventID string) string
	UpdateTask(eventID, taskID string) string
	DeleteTask(eventID, taskID string) string

	SendMessage() string
	Inbox() string
	Conversation(otherUserID string) string
}

func RoutesFor(apiVersion string) (RouteSet, error) {
	switch apiVersion {
	case "", "v2":
		return flatRoutes{}, nil
	case "v1":
		return nestedRoutes{}, nil
	default:
		return nil, fmt.Errorf("unknown api version: %s", apiVersion)
	}
}

// nestedRoutes is the first backend generation: tasks fully scoped under
// their event, message verbs spelled out in the path.
type nestedRoutes struct{}

func (nestedRoutes) Name() string { return "v1" }

func (nestedRoutes) CreateTask(eventID string) string {
	return "/api/events/" + eventID + "/tasks"
}

func (nestedRoutes) TasksForEvent(eventID string) string {
	return "/api/events/" + eventID + "/tasks"
}

func (nestedRoutes) UpdateTask(eventID, taskID string) string {
	return "/api/events/" + eventID + "/tasks/" + taskID
}

func (nestedRoutes) DeleteTask(eventID, taskID string) string {
	return "/api/events/" + eventID + "/tasks/" + taskID
}

func (nestedRoutes) SendMessage() string { return "/api/messages/send" }

func (nestedRoutes) Inbox() string { return "/api/messages/inbox" }

func (nestedRoutes) Conversation(otherUserID string) string {
	return "/api/messages/conversation/" + otherUserID
}

// flatRoutes is the current generation: task mutation addressed by task id
// alone, message collection at the bare resource path.
type flatRoutes struct{}

func (flatRoutes) Name() string { return "v2" }

func (flatRoutes) CreateTask(eventID string) string {
	return "/api/events/" + eventID + "/tasks"
}

func (flatRoutes) TasksForEvent(eventID string) string {
	return "/api/events/" + eventID + "/tasks"
}

func (flatRoutes) UpdateTask(_, taskID string) string {
	return "/api/events/tasks/" + taskID
}

func (flatRoutes) DeleteTask(_, taskID string) string {
	return "/api/events/tasks/" + taskID
}

func (flatRoutes) SendMessage() string { return "/api/messages" }

func (flatRoutes) Inbox() string { return "/api/messages" }

func (flatRoutes) Conversation(otherUserID string) string {
	return "/api/messages/" + otherUserID
}
