package bootstrap

import (
	"context"
	"fmt"
	"time"

	"dinedesk-be/internal/config"
	"dinedesk-be/internal/controller"
	"dinedesk-be/internal/pkg/logger"
	"dinedesk-be/internal/repository/cache"
	"dinedesk-be/internal/repository/contract"
	"dinedesk-be/internal/repository/memory"
	"dinedesk-be/internal/repository/unitofwork"
	"dinedesk-be/internal/service"
	"dinedesk-be/pkg/concierge"
	"dinedesk-be/pkg/concierge/catalog"
	"dinedesk-be/pkg/concierge/composer"
	"dinedesk-be/pkg/events"
	"dinedesk-be/pkg/llm/factory"
	pktNats "dinedesk-be/pkg/nats"

	"gorm.io/gorm"
)

const activeChatTTL = 24 * time.Hour

type Container struct {
	// Controllers
	PageController       controller.IPageController
	AuthController       controller.IAuthController
	ChatController       controller.IChatController
	RestaurantController controller.IRestaurantController

	Logger logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	llmLogger := logger.NewIsolatedLogger(cfg.App.LLMLogFilePath)

	// 2. Infrastructure
	active, err := c.activeChatRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	publisher := c.eventPublisher(ctx, cfg)

	phraser, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		return nil, fmt.Errorf("init LLM provider: %w", err)
	}
	sysLogger.Info("Bootstrap", "LLM phrasing configured", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	// 3. Domain
	restaurantCatalog := catalog.New(uowFactory, catalog.WithLogger(sysLogger))
	assistant := concierge.NewAssistant(restaurantCatalog, composer.New(),
		concierge.WithPhraser(phraser),
		concierge.WithLogger(llmLogger),
	)

	// 4. Services
	chatStore := service.NewChatSessionStore(uowFactory, publisher, sysLogger)
	chatService := service.NewChatService(chatStore, active, assistant, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	restaurantService := service.NewRestaurantService(restaurantCatalog)

	// 5. Controllers
	secret := cfg.Auth.JwtSecret
	c.PageController = controller.NewPageController(chatService, cfg.App.WebDir, secret)
	c.AuthController = controller.NewAuthController(authService, cfg.IsProduction())
	c.ChatController = controller.NewChatController(chatService, secret)
	c.RestaurantController = controller.NewRestaurantController(restaurantService, secret)

	return c, nil
}

// activeChatRepository picks where the per-user active chat pointer lives.
func (c *Container) activeChatRepository(ctx context.Context, cfg *config.Config) (contract.ActiveChatRepository, error) {
	switch cfg.App.ActiveChatStore {
	case "", config.ActiveChatStoreMemory:
		return memory.NewActiveChatRepository(activeChatTTL), nil
	case config.ActiveChatStoreRedis:
		rdb, err := cache.NewClient(ctx, cfg.App.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("init active chat store: %w", err)
		}
		c.closers = append(c.closers, func() { _ = rdb.Close() })
		return cache.NewActiveChatRepository(rdb, activeChatTTL), nil
	default:
		return nil, fmt.Errorf("unsupported ACTIVE_CHAT_STORE: %s", cfg.App.ActiveChatStore)
	}
}

// eventPublisher connects to NATS when configured. Chat events are optional,
// so a failed connection degrades to no publishing.
func (c *Container) eventPublisher(ctx context.Context, cfg *config.Config) events.Publisher {
	if cfg.App.NatsURL == "" {
		return events.Nop{}
	}
	bus, err := pktNats.Dial(ctx, cfg.App.NatsURL)
	if err != nil {
		c.Logger.Warn("Bootstrap", "Failed to connect to NATS, chat events disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return events.Nop{}
	}
	c.closers = append(c.closers, bus.Close)
	return bus
}

// Close releases external connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
