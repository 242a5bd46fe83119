package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    string    `gorm:"type:varchar(100);not null;index:idx_chat_user_ts,priority:1"`
	Sender    string    `gorm:"type:varchar(20);not null"`
	Message   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"not null;index:idx_chat_user_ts,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_history"
}
