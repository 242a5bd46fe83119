package service

import (
	"context"
	"fmt"
	"time"

	"ai-healthassist-be/internal/constant"
	"ai-healthassist-be/internal/dto"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/internal/repository/specification"
	"ai-healthassist-be/internal/repository/unitofwork"
	"ai-healthassist-be/pkg/events"
	pktNats "ai-healthassist-be/pkg/nats"
)

type IChatService interface {
	SendMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userID string, limit, skip int) (*dto.ChatHistoryResponse, error)
	ClearHistory(ctx context.Context, userID string) (*dto.ClearSessionResponse, error)
	InitializeChat(ctx context.Context, userID string) (*dto.InitializeSessionResponse, error)
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   ISessionManager
	publisher  *pktNats.Publisher
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessions ISessionManager,
	publisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		sessions:   sessions,
		publisher:  publisher,
		log:        log,
	}
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := s.findProfile(ctx, uow, req.UserID)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UTC()

	userMsg := &entity.ChatMessage{
		UserID:    req.UserID,
		Sender:    constant.ChatSenderUser,
		Message:   req.Message,
		Timestamp: timestamp,
	}
	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		return nil, apperr.Upstream("save user message", err)
	}

	reply, err := s.sessions.Converse(ctx, profile, req.Message)
	if err != nil {
		return nil, err
	}

	assistantMsg := &entity.ChatMessage{
		UserID:    req.UserID,
		Sender:    constant.ChatSenderAssistant,
		Message:   reply,
		Timestamp: timestamp,
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMsg); err != nil {
		return nil, apperr.Upstream("save assistant message", err)
	}

	return &dto.SendChatResponse{
		MessageID:   assistantMsg.Id,
		UserID:      req.UserID,
		UserMessage: req.Message,
		Response:    reply,
		Timestamp:   timestamp,
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, userID string, limit, skip int) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findProfile(ctx, uow, userID); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: skip},
	)
	if err != nil {
		return nil, apperr.Upstream("load chat history", err)
	}

	// Newest page first from storage, then flipped to chronological order.
	items := make([]dto.ChatHistoryItem, len(messages))
	for i, msg := range messages {
		items[len(messages)-1-i] = dto.ChatHistoryItem{
			MessageID: msg.Id,
			UserID:    msg.UserID,
			Sender:    msg.Sender,
			Message:   msg.Message,
			Timestamp: msg.Timestamp,
		}
	}

	return &dto.ChatHistoryResponse{
		UserID:        userID,
		Messages:      items,
		TotalMessages: len(items),
	}, nil
}

func (s *chatService) ClearHistory(ctx context.Context, userID string) (*dto.ClearSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.findProfile(ctx, uow, userID); err != nil {
		return nil, err
	}

	count, err := uow.ChatMessageRepository().Count(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("count chat history", err)
	}
	if err := uow.ChatMessageRepository().DeleteAllByUserID(ctx, userID); err != nil {
		return nil, apperr.Upstream("clear chat history", err)
	}

	if err := s.sessions.Clear(ctx, userID); err != nil {
		return nil, err
	}

	s.publish(ctx, events.NewSessionCleared(userID))

	return &dto.ClearSessionResponse{
		Message:      fmt.Sprintf("Cleared %d messages", count),
		DeletedCount: count,
	}, nil
}

func (s *chatService) InitializeChat(ctx context.Context, userID string) (*dto.InitializeSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := s.findProfile(ctx, uow, userID)
	if err != nil {
		return nil, err
	}

	welcome, err := s.sessions.Initialize(ctx, profile)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UTC()
	welcomeMsg := &entity.ChatMessage{
		UserID:    userID,
		Sender:    constant.ChatSenderAssistant,
		Message:   welcome,
		Timestamp: timestamp,
	}
	if err := uow.ChatMessageRepository().Create(ctx, welcomeMsg); err != nil {
		return nil, apperr.Upstream("save welcome message", err)
	}

	s.publish(ctx, events.NewSessionInitialized(userID))

	return &dto.InitializeSessionResponse{
		MessageID:      welcomeMsg.Id,
		UserID:         userID,
		WelcomeMessage: welcome,
		Timestamp:      timestamp,
	}, nil
}

func (s *chatService) findProfile(ctx context.Context, uow unitofwork.UnitOfWork, userID string) (*entity.UserProfile, error) {
	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.ByUserID{UserID: userID})
	if err != nil {
		return nil, apperr.Upstream("load user", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("user", userID)
	}
	return profile, nil
}

func (s *chatService) publish(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("chat_service", "event publish failed", map[string]interface{}{
			"event": event.EventType(), "error": err.Error(),
		})
	}
}
