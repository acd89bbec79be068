package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/cortexa/relay/internal/config"
	"github.com/cortexa/relay/internal/infrastructure/openai"
	"github.com/cortexa/relay/internal/infrastructure/postgres"
	"github.com/cortexa/relay/internal/infrastructure/redis"
	"github.com/cortexa/relay/internal/infrastructure/stream"
	"github.com/cortexa/relay/internal/repository"
	"github.com/cortexa/relay/internal/services/completion"
	"github.com/cortexa/relay/internal/services/presence"
	"github.com/cortexa/relay/internal/services/relay"
	"github.com/cortexa/relay/pkg/ratelimit"
)

var (
	// Mutex for thread-safe initialization
	servicesMu sync.RWMutex
)

type Services struct {
	config          *config.Config
	postgresService *postgres.Service
	redisService    *redis.Service
	relayService    relay.Service
	limiters        map[string]ratelimit.Limiter
}

// InitializeServices connects every external collaborator and builds the relay
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	log.Info().Msg("Initializing core services")

	postgresService, err := postgres.NewService(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := postgresService.Migrate(ctx); err != nil {
			_ = postgresService.Close()
			return nil, err
		}
	}

	streamService, err := stream.NewService(cfg.StreamAPIKey, cfg.StreamAPISecret)
	if err != nil {
		_ = postgresService.Close()
		return nil, fmt.Errorf("failed to initialize stream service: %w", err)
	}

	openAIService, err := openai.NewService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if err != nil {
		_ = postgresService.Close()
		return nil, fmt.Errorf("failed to initialize openai service: %w", err)
	}

	// Redis is optional; rate limits fall back to process memory
	redisService := redis.NewService(ctx, cfg.RedisURL, cfg.RedisPassword)

	db := postgresService.DB()
	relayService := relay.NewService(
		repository.NewUserRepository(db),
		repository.NewChatRepository(db),
		presence.NewStreamService(streamService),
		completion.NewService(openAIService),
		relayOptions(cfg),
	)

	log.Info().Msg("All services initialized successfully")

	return &Services{
		config:          cfg,
		postgresService: postgresService,
		redisService:    redisService,
		relayService:    relayService,
		limiters:        newLimiters(cfg, redisService),
	}, nil
}

// NewServices assembles a container from prebuilt parts, used by tests
func NewServices(cfg *config.Config, postgresService *postgres.Service, relayService relay.Service) *Services {
	return &Services{
		config:          cfg,
		postgresService: postgresService,
		relayService:    relayService,
		limiters:        newLimiters(cfg, nil),
	}
}

func relayOptions(cfg *config.Config) relay.Options {
	return relay.Options{
		HistoryLimit:  cfg.Chat.HistoryLimit,
		RecentHistory: cfg.Chat.HistoryPolicy == config.HistoryPolicyRecent,
		BotUserID:     cfg.Chat.BotUserID,
		ChannelType:   cfg.Chat.ChannelType,
		ChannelPrefix: cfg.Chat.ChannelPrefix,
		ChannelName:   cfg.Chat.ChannelName,
	}
}

func newLimiters(cfg *config.Config, redisService *redis.Service) map[string]ratelimit.Limiter {
	limiters := make(map[string]ratelimit.Limiter)
	for _, key := range []string{"global", "chat"} {
		rl := cfg.GetRateLimitConfig(key)
		if redisService != nil {
			limiters[key] = ratelimit.NewRedisLimiter(redisService, key, rl.Window, rl.MaxHits)
		} else {
			limiters[key] = ratelimit.NewLimiter(rl.Window, rl.MaxHits)
		}
	}
	return limiters
}

// GetConfig returns the loaded configuration
func (s *Services) GetConfig() *config.Config {
	return s.config
}

// GetRelayService returns the relay service
func (s *Services) GetRelayService() relay.Service {
	return s.relayService
}

// GetPostgresService returns the database service
func (s *Services) GetPostgresService() *postgres.Service {
	return s.postgresService
}

// GetLimiter returns the rate limiter for a route group
func (s *Services) GetLimiter(key string) ratelimit.Limiter {
	return s.limiters[key]
}

// Close releases every long-lived client handle
func (s *Services) Close() error {
	servicesMu.Lock()
	defer servicesMu.Unlock()

	var errs []error
	if s.redisService != nil {
		errs = append(errs, s.redisService.Close())
	}
	if s.postgresService != nil {
		errs = append(errs, s.postgresService.Close())
	}
	return errors.Join(errs...)
}
