package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserDeleted    EventType = "user_deleted"
	EventAuthorCreated  EventType = "author_created"
	EventBookCreated    EventType = "book_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   *int64      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	UserID int64 `json:"user_id"`
}

// AuthorCreatedPayload payload.
type AuthorCreatedPayload struct {
	AuthorID int64  `json:"author_id"`
	Name     string `json:"name"`
}

// BookCreatedPayload payload.
type BookCreatedPayload struct {
	BookID   int64  `json:"book_id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	AuthorID int64  `json:"author_id"`
}
