package bootstrap

import (
	"context"
	"log"

	"ai-healthassist-be/internal/config"
	"ai-healthassist-be/internal/controller"
	"ai-healthassist-be/internal/pkg/logger"
	"ai-healthassist-be/internal/repository/memory"
	"ai-healthassist-be/internal/repository/redisstore"
	"ai-healthassist-be/internal/repository/unitofwork"
	"ai-healthassist-be/internal/service"
	"ai-healthassist-be/pkg/llm/factory"
	pktNats "ai-healthassist-be/pkg/nats"
	"ai-healthassist-be/pkg/store"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController     controller.IUserController
	ChatController     controller.IChatController
	CalendarController controller.ICalendarController
	HealthController   controller.IHealthController

	// Core facades exposed for the server and for shutdown
	Logger    logger.ILogger
	Publisher *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 3. Session Storage
	var sessionStore store.SessionStore
	if cfg.Session.Backend == "redis" {
		opt, err := redis.ParseURL(cfg.Session.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.Session.RedisURL}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionStore = redisstore.NewSessionRepository(rdb, cfg.Session.TTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionStore = memory.NewSessionRepository(cfg.Session.TTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 4. NATS (optional, events are best effort)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 5. Services
	// AI traffic gets its own file so provider noise stays out of the app log.
	aiLogger := logger.NewIsolatedLogger("logs/chat.log")
	contextBuilder := service.NewContextBuilder(uowFactory, aiLogger)
	promptCompiler := service.NewPromptCompiler()
	sessionManager := service.NewSessionManager(
		sessionStore,
		contextBuilder,
		promptCompiler,
		llmProvider,
		cfg.Ai,
		aiLogger,
	)

	userService := service.NewUserService(uowFactory, sessionManager, natsPub, sysLogger)
	chatService := service.NewChatService(uowFactory, sessionManager, natsPub, sysLogger)
	calendarService := service.NewCalendarService(uowFactory, sysLogger)
	healthService := service.NewHealthService(uowFactory, natsPub, sysLogger)

	// 6. Controllers
	return &Container{
		UserController:     controller.NewUserController(userService),
		ChatController:     controller.NewChatController(chatService),
		CalendarController: controller.NewCalendarController(calendarService),
		HealthController:   controller.NewHealthController(healthService),
		Logger:             sysLogger,
		Publisher:          natsPub,
	}
}
