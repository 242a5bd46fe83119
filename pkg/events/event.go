package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Lifecycle event codes published on the bus.
const (
	TypeUserCreated        = "USER_CREATED"
	TypeUserDeleted        = "USER_DELETED"
	TypeSessionInitialized = "SESSION_INITIALIZED"
	TypeSessionCleared     = "SESSION_CLEARED"
	TypeReportGenerated    = "REPORT_GENERATED"
)

func NewUserCreated(userID string) Event {
	return BaseEvent{
		Type:       TypeUserCreated,
		Data:       map[string]interface{}{"user_id": userID},
		OccurredAt: time.Now(),
	}
}

func NewUserDeleted(userID string) Event {
	return BaseEvent{
		Type:       TypeUserDeleted,
		Data:       map[string]interface{}{"user_id": userID},
		OccurredAt: time.Now(),
	}
}

func NewSessionInitialized(userID string) Event {
	return BaseEvent{
		Type:       TypeSessionInitialized,
		Data:       map[string]interface{}{"user_id": userID},
		OccurredAt: time.Now(),
	}
}

func NewSessionCleared(userID string) Event {
	return BaseEvent{
		Type:       TypeSessionCleared,
		Data:       map[string]interface{}{"user_id": userID},
		OccurredAt: time.Now(),
	}
}

func NewReportGenerated(userID, dateRange string) Event {
	return BaseEvent{
		Type:       TypeReportGenerated,
		Data:       map[string]interface{}{"user_id": userID, "date_range": dateRange},
		OccurredAt: time.Now(),
	}
}
