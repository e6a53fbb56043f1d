package domain

type Role string

const (
	RoleParticipant   Role = "participant"
	RoleOrganizer     Role = "organizer"
	RoleLogistics     Role = "logistics"
	RoleCommunication Role = "communication"
	RoleAdmin         Role = "admin"
)

type EventVisibility string

const (
	VisibilityPublic  EventVisibility = "public"
	VisibilityPrivate EventVisibility = "private"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCancelled EventStatus = "cancelled"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
	// TaskLate is the server-side terminal marker; the client additionally
	// derives an overdue classification from due dates (see derive package).
	TaskLate TaskStatus = "late"
)

type NotificationType string

const (
	NotificationTaskReminder           NotificationType = "task_reminder"
	NotificationRegistrationValidation NotificationType = "registration_validation"
	NotificationScheduleChange         NotificationType = "schedule_change"
	NotificationDelayAlert             NotificationType = "delay_alert"
)

// UserRef is the embedded shape the backend uses when a user appears inside
// another entity (event creator, task assignee, message endpoints).
type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type NotificationPreferences struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type User struct {
	ID          string                   `json:"_id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Role        Role                     `json:"role"`
	AvatarURL   string                   `json:"avatarUrl,omitempty"`
	Preferences *NotificationPreferences `json:"notificationPreferences,omitempty"`
	CreatedAt   string                   `json:"createdAt,omitempty"`
	UpdatedAt   string                   `json:"updatedAt,omitempty"`
}

// Event participants are raw user ids. Participant detail objects are only
// ever obtained from the per-event participants endpoint.
type Event struct {
	ID                   string          `json:"_id"`
	Title                string          `json:"title"`
	Description          string          `json:"description,omitempty"`
	Date                 string          `json:"date"`
	Location             string          `json:"location,omitempty"`
	CreatedBy            *UserRef        `json:"createdBy,omitempty"`
	Organizers           []string        `json:"organizers,omitempty"`
	LogisticManager      string          `json:"logisticManager,omitempty"`
	LogisticStaff        []string        `json:"logisticStaff,omitempty"`
	CommunicationManager string          `json:"communicationManager,omitempty"`
	CommunicationStaff   []string        `json:"communicationStaff,omitempty"`
	Participants         []string        `json:"participants,omitempty"`
	Visibility           EventVisibility `json:"visibility,omitempty"`
	Status               EventStatus     `json:"status,omitempty"`
	CreatedAt            string          `json:"createdAt,omitempty"`
	UpdatedAt            string          `json:"updatedAt,omitempty"`
}

type EventRequest struct {
	Title                string          `json:"title"`
	Description          string          `json:"description,omitempty"`
	Date                 string          `json:"date"`
	Location             string          `json:"location,omitempty"`
	Organizers           []string        `json:"organizers,omitempty"`
	LogisticManager      string          `json:"logisticManager,omitempty"`
	LogisticStaff        []string        `json:"logisticStaff,omitempty"`
	CommunicationManager string          `json:"communicationManager,omitempty"`
	CommunicationStaff   []string        `json:"communicationStaff,omitempty"`
	Visibility           EventVisibility `json:"visibility,omitempty"`
	Status               EventStatus     `json:"status,omitempty"`
}

type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	AssignedTo  *UserRef   `json:"assignedTo,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
	EventID     string     `json:"event"`
	CreatedBy   *UserRef   `json:"createdBy,omitempty"`
	CreatedAt   string     `json:"createdAt,omitempty"`
	UpdatedAt   string     `json:"updatedAt,omitempty"`
}

// TaskRequest is a full task body; the backend does not accept partial
// patches, so status-only mutations rebuild the request from the cached task.
type TaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	DueDate     string     `json:"dueDate,omitempty"`
}

type Message struct {
	ID        string  `json:"_id"`
	Sender    UserRef `json:"sender"`
	Receiver  UserRef `json:"receiver"`
	Content   string  `json:"content"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// Conversation is a derived grouping of inbox messages by the other party.
type Conversation struct {
	OtherUser   UserRef  `json:"otherUser"`
	LastMessage *Message `json:"lastMessage,omitempty"`
	UnreadCount int      `json:"unreadCount"`
}

type Notification struct {
	ID        string           `json:"_id"`
	Receiver  string           `json:"receiver"`
	Sender    string           `json:"sender,omitempty"`
	Type      NotificationType `json:"type"`
	EventID   string           `json:"event,omitempty"`
	TaskID    string           `json:"task,omitempty"`
	Message   string           `json:"message,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt string           `json:"createdAt,omitempty"`
	UpdatedAt string           `json:"updatedAt,omitempty"`
}

// AdminStats is derived client-side from the event and user stores; it is
// never fetched from the backend.
type AdminStats struct {
	TotalUsers        int          `json:"totalUsers"`
	TotalEvents       int          `json:"totalEvents"`
	TotalParticipants int          `json:"totalParticipants"`
	UsersByRole       map[Role]int `json:"usersByRole,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

type UpdateProfileRequest struct {
	Name        string                   `json:"name,omitempty"`
	AvatarURL   string                   `json:"avatarUrl,omitempty"`
	Preferences *NotificationPreferences `json:"notificationPreferences,omitempty"`
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"conversationHistory,omitempty"`
}

type ChatUserContext struct {
	Role              Role `json:"role"`
	EventsCount       int  `json:"eventsCount"`
	PendingTasksCount int  `json:"pendingTasksCount"`
}

type ChatResponse struct {
	Response       string           `json:"response"`
	ConversationID int64            `json:"conversationId,omitempty"`
	Source         string           `json:"source,omitempty"`
	UserContext    *ChatUserContext `json:"userContext,omitempty"`
}
