package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one persisted turn of the durable chat log. The in-memory
// session transcript is rebuilt separately; this log is append-only.
type ChatMessage struct {
	Id        uuid.UUID
	UserID    string
	Sender    string
	Message   string
	Timestamp time.Time
}
