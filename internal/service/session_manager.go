package service

import (
	"context"
	"sync"
	"time"

	"ai-healthassist-be/internal/config"
	"ai-healthassist-be/internal/constant"
	"ai-healthassist-be/internal/entity"
	"ai-healthassist-be/internal/pkg/apperr"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/pkg/llm"
	"ai-healthassist-be/pkg/store"
)

// ISessionManager owns the live conversation state. A session is created
// lazily on first use, seeded with the user's compiled health context, and
// kept alternating: one user turn in, one assistant turn out, even when the
// AI call fails.
type ISessionManager interface {
	Converse(ctx context.Context, profile *entity.UserProfile, message string) (string, error)
	Initialize(ctx context.Context, profile *entity.UserProfile) (string, error)
	Clear(ctx context.Context, userID string) error
}

type sessionManager struct {
	sessions    store.SessionStore
	builder     IContextBuilder
	prompts     *PromptCompiler
	provider    llm.LLMProvider
	chatLimit   time.Duration
	temperature float64
	maxTokens   int
	log         logger.ILogger
	locks       sync.Map // userID -> *sync.Mutex
}

func NewSessionManager(
	sessions store.SessionStore,
	builder IContextBuilder,
	prompts *PromptCompiler,
	provider llm.LLMProvider,
	ai config.AIConfig,
	log logger.ILogger,
) ISessionManager {
	return &sessionManager{
		sessions:    sessions,
		builder:     builder,
		prompts:     prompts,
		provider:    provider,
		chatLimit:   ai.ChatLimit,
		temperature: ai.Temperature,
		maxTokens:   ai.MaxTokens,
		log:         log,
	}
}

func (m *sessionManager) userLock(userID string) *sync.Mutex {
	actual, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

func (m *sessionManager) Converse(ctx context.Context, profile *entity.UserProfile, message string) (string, error) {
	mu := m.userLock(profile.UserID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := m.getOrCreate(ctx, profile)
	if err != nil {
		return "", err
	}

	sess.History = append(sess.History, store.Turn{Role: constant.ChatRoleUser, Content: message})

	reply, aiErr := m.chat(ctx, sess.History)
	if aiErr != nil {
		m.log.Error("session_manager", "AI reply failed, using fallback", map[string]interface{}{
			"user_id": profile.UserID, "error": aiErr.Error(),
		})
		reply = constant.ChatFallbackReply
	}

	sess.History = append(sess.History, store.Turn{Role: constant.ChatRoleAssistant, Content: reply})
	if err := m.sessions.Save(ctx, sess); err != nil {
		return "", apperr.Upstream("save session", err)
	}

	return reply, nil
}

func (m *sessionManager) Initialize(ctx context.Context, profile *entity.UserProfile) (string, error) {
	mu := m.userLock(profile.UserID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := m.getOrCreate(ctx, profile)
	if err != nil {
		return "", err
	}

	welcome := m.prompts.WelcomeMessage(profile.PersonalInfo.FirstName)
	sess.History = append(sess.History, store.Turn{Role: constant.ChatRoleAssistant, Content: welcome})
	if err := m.sessions.Save(ctx, sess); err != nil {
		return "", apperr.Upstream("save session", err)
	}

	return welcome, nil
}

func (m *sessionManager) Clear(ctx context.Context, userID string) error {
	mu := m.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := m.sessions.Delete(ctx, userID); err != nil {
		return apperr.Upstream("delete session", err)
	}
	return nil
}

func (m *sessionManager) getOrCreate(ctx context.Context, profile *entity.UserProfile) (*store.Session, error) {
	sess, found, err := m.sessions.Get(ctx, profile.UserID)
	if err != nil {
		return nil, apperr.Upstream("load session", err)
	}
	if found {
		return sess, nil
	}

	userContext := m.builder.Build(ctx, profile)
	systemPrompt := m.prompts.SystemPrompt(userContext)

	return &store.Session{
		UserID:       profile.UserID,
		SystemPrompt: systemPrompt,
		History:      []store.Turn{{Role: constant.ChatRoleSystem, Content: systemPrompt}},
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (m *sessionManager) chat(ctx context.Context, history []store.Turn) (string, error) {
	if m.chatLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.chatLimit)
		defer cancel()
	}

	messages := make([]llm.Message, len(history))
	for i, turn := range history {
		messages[i] = llm.Message{Role: turn.Role, Content: turn.Content}
	}

	var opts []llm.Option
	if m.temperature > 0 {
		opts = append(opts, llm.WithTemperature(m.temperature))
	}
	if m.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(m.maxTokens))
	}
	return m.provider.Chat(ctx, messages, opts...)
}
