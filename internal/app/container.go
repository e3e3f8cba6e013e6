package app

import (
	"context"
	"fmt"

	"github.com/kapu/arabic-name-bot-go/internal/adapter"
	"github.com/kapu/arabic-name-bot-go/internal/bot"
	"github.com/kapu/arabic-name-bot-go/internal/command"
	"github.com/kapu/arabic-name-bot-go/internal/config"
	"github.com/kapu/arabic-name-bot-go/internal/iris"
	"github.com/kapu/arabic-name-bot-go/internal/namedata"
	"github.com/kapu/arabic-name-bot-go/internal/service/cache"
	"github.com/kapu/arabic-name-bot-go/internal/service/database"
	"github.com/kapu/arabic-name-bot-go/internal/service/namegen"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing runtime components like Bot.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Generator *namegen.Generator

	botDeps *bot.Dependencies
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// Build assembles all infrastructure services and returns a container capable of
// creating fully-wired bots. Redis and PostgreSQL are only dialed when enabled.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func() error
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				_ = closers[i]()
			}
		}
	}()

	// Messaging primitives
	irisClient := iris.NewClient(cfg.Iris.BaseURL, logger)
	irisWS := iris.NewWebSocket(cfg.Iris.WSURL, iris.WebSocketOptions{}, logger)
	messageAdapter := adapter.NewMessageAdapter(cfg.Bot.Prefix)
	formatter := adapter.NewResponseFormatter(cfg.Bot.Prefix)

	// Reference tables
	store, err := LoadStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	generator := namegen.NewGenerator(store, namegen.Options{Logger: logger})

	// Cooldowns and usage counters
	var usage command.UsageTracker
	if cfg.Redis.Enabled {
		cacheSvc, cacheErr := cache.NewCacheService(ctx, cache.CacheConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if cacheErr != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", cacheErr)
		}
		closers = append(closers, cacheSvc.Close)
		usage = cacheSvc
	} else {
		logger.Info("Redis disabled, cooldowns and usage stats are off")
	}

	deps := &bot.Dependencies{
		Config:         cfg,
		Logger:         logger,
		IrisClient:     irisClient,
		IrisWebSocket:  irisWS,
		MessageAdapter: messageAdapter,
		Formatter:      formatter,
		Generator:      generator,
		Usage:          usage,
		Closers:        closers,
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Generator: generator,
		botDeps:   deps,
	}, nil
}

// LoadStore returns the reference tables selected by NAMEDATA_SOURCE.
func LoadStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*namedata.Store, error) {
	if cfg.NameData.Source != config.NameDataPostgres {
		logger.Info("Using builtin name tables")
		return namedata.Builtin(), nil
	}

	postgresSvc, err := database.NewPostgresService(ctx, PostgresConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	defer func() {
		_ = postgresSvc.Close()
	}()

	store, err := namedata.NewRepository(postgresSvc, logger).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load name tables: %w", err)
	}
	return store, nil
}

// PostgresConfig maps the application config onto the database service config.
func PostgresConfig(cfg *config.Config) database.PostgresConfig {
	return database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		SSLMode:  cfg.Postgres.SSLMode,
	}
}
