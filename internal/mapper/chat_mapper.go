package mapper

import (
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}

	return &entity.ChatMessage{
		Id:        msg.Id,
		UserID:    msg.UserID,
		Sender:    msg.Sender,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
	}
}

func (m *ChatMapper) ToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}

	return &model.ChatMessage{
		Id:        msg.Id,
		UserID:    msg.UserID,
		Sender:    msg.Sender,
		Message:   msg.Message,
		Timestamp: msg.Timestamp,
	}
}
