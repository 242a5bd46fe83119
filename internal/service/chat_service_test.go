package service

import (
	"context"
	"testing"
	"time"

	"ai-healthassist-be/internal/constant"
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(sessions *fakeSessionManager) (IChatService, *fakeUow) {
	factory, uow := newFakeFactory()
	uow.profiles.items = []*entity.UserProfile{testProfile("u1")}
	return NewChatService(factory, sessions, nil, noopLogger{}), uow
}

func TestSendMessagePersistsBothTurns(t *testing.T) {
	svc, uow := newTestChatService(&fakeSessionManager{reply: "That sounds rough."})

	res, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		UserID: "u1", Message: "I feel dizzy",
	})
	require.NoError(t, err)

	assert.Equal(t, "I feel dizzy", res.UserMessage)
	assert.Equal(t, "That sounds rough.", res.Response)

	require.Len(t, uow.chats.items, 2)
	assert.Equal(t, constant.ChatSenderUser, uow.chats.items[0].Sender)
	assert.Equal(t, constant.ChatSenderAssistant, uow.chats.items[1].Sender)
	assert.Equal(t, uow.chats.items[1].Id, res.MessageID)
}

func TestSendMessageUnknownUser(t *testing.T) {
	svc, _ := newTestChatService(&fakeSessionManager{reply: "ok"})

	_, err := svc.SendMessage(context.Background(), &dto.SendChatRequest{
		UserID: "ghost", Message: "hello",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetHistoryChronological(t *testing.T) {
	svc, uow := newTestChatService(&fakeSessionManager{})

	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		uow.chats.items = append(uow.chats.items, &entity.ChatMessage{
			Id: uuid.New(), UserID: "u1", Sender: constant.ChatSenderUser,
			Message:   string(rune('a' + i)),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}

	history, err := svc.GetHistory(context.Background(), "u1", 3, 0)
	require.NoError(t, err)

	// The newest three messages, flipped back to chronological order.
	require.Len(t, history.Messages, 3)
	assert.Equal(t, "b", history.Messages[0].Message)
	assert.Equal(t, "c", history.Messages[1].Message)
	assert.Equal(t, "d", history.Messages[2].Message)
	assert.Equal(t, 3, history.TotalMessages)
}

func TestClearHistoryReportsCount(t *testing.T) {
	sessions := &fakeSessionManager{}
	svc, uow := newTestChatService(sessions)

	for i := 0; i < 3; i++ {
		uow.chats.items = append(uow.chats.items, &entity.ChatMessage{
			Id: uuid.New(), UserID: "u1", Sender: constant.ChatSenderUser, Message: "x",
		})
	}

	res, err := svc.ClearHistory(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.DeletedCount)
	assert.Equal(t, "Cleared 3 messages", res.Message)
	assert.Empty(t, uow.chats.items)
	assert.Equal(t, []string{"u1"}, sessions.cleared)
}

func TestInitializeChatPersistsWelcome(t *testing.T) {
	svc, uow := newTestChatService(&fakeSessionManager{})

	res, err := svc.InitializeChat(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "Hey Maya! How are you feeling today?", res.WelcomeMessage)
	require.Len(t, uow.chats.items, 1)
	assert.Equal(t, constant.ChatSenderAssistant, uow.chats.items[0].Sender)
	assert.Equal(t, res.WelcomeMessage, uow.chats.items[0].Message)
}
