package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	UserID  string `json:"user_id" validate:"required,min=1"`
	Message string `json:"message" validate:"required,min=1"`
}

type SendChatResponse struct {
	MessageID   uuid.UUID `json:"message_id"`
	UserID      string    `json:"user_id"`
	UserMessage string    `json:"user_message"`
	Response    string    `json:"response"`
	Timestamp   time.Time `json:"timestamp"`
}

type InitializeSessionResponse struct {
	MessageID      uuid.UUID `json:"message_id"`
	UserID         string    `json:"user_id"`
	WelcomeMessage string    `json:"welcome_message"`
	Timestamp      time.Time `json:"timestamp"`
}

type ChatHistoryItem struct {
	MessageID uuid.UUID `json:"message_id"`
	UserID    string    `json:"user_id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatHistoryResponse struct {
	UserID        string            `json:"user_id"`
	Messages      []ChatHistoryItem `json:"messages"`
	TotalMessages int               `json:"total_messages"`
}

type ClearSessionResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}
