package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kapu/arabic-name-bot-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix      = "arabicname:"
	usageHashKey   = keyPrefix + "usage"
	cooldownPrefix = keyPrefix + "cooldown:"
)

// CacheService backs per-sender cooldowns and command usage counters with Redis.
type CacheService struct {
	client redis.UniversalClient
	logger *zap.Logger
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewCacheService(ctx context.Context, cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", addr),
		zap.Int("db", cfg.DB),
	)

	return newCacheService(client, logger), nil
}

func newCacheService(client redis.UniversalClient, logger *zap.Logger) *CacheService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{
		client: client,
		logger: logger,
	}
}

// AcquireCooldown claims the cooldown slot for subject. It reports false when
// the subject is still cooling down from an earlier call.
func (c *CacheService) AcquireCooldown(ctx context.Context, subject string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		return true, nil
	}

	key := cooldownPrefix + subject
	acquired, err := c.client.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		c.logger.Error("Cooldown acquire failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("setnx failed", "setnx", key, err)
	}
	return acquired, nil
}

// CooldownRemaining returns how long subject still has to wait.
func (c *CacheService) CooldownRemaining(ctx context.Context, subject string) (time.Duration, error) {
	key := cooldownPrefix + subject
	ttl, err := c.client.PTTL(ctx, key).Result()
	if err != nil {
		c.logger.Error("Cooldown ttl failed", zap.String("key", key), zap.Error(err))
		return 0, errors.NewCacheError("pttl failed", "pttl", key, err)
	}
	if ttl < 0 {
		return 0, nil
	}
	return ttl, nil
}

// IncrementUsage bumps the usage counter for command.
func (c *CacheService) IncrementUsage(ctx context.Context, command string) error {
	if err := c.client.HIncrBy(ctx, usageHashKey, command, 1).Err(); err != nil {
		c.logger.Error("Usage increment failed", zap.String("command", command), zap.Error(err))
		return errors.NewCacheError("hincrby failed", "hincrby", usageHashKey, err)
	}
	return nil
}

// UsageCounts returns the usage counter of every command seen so far.
func (c *CacheService) UsageCounts(ctx context.Context) (map[string]int64, error) {
	values, err := c.client.HGetAll(ctx, usageHashKey).Result()
	if err != nil {
		c.logger.Error("Usage read failed", zap.Error(err))
		return map[string]int64{}, errors.NewCacheError("hgetall failed", "hgetall", usageHashKey, err)
	}

	counts := make(map[string]int64, len(values))
	for command, raw := range values {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.logger.Warn("Skipping malformed usage counter", zap.String("command", command), zap.String("value", raw))
			continue
		}
		counts[command] = n
	}
	return counts, nil
}

func (c *CacheService) IsConnected(ctx context.Context) bool {
	return c.client.Ping(ctx).Err() == nil
}

func (c *CacheService) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis connection", zap.Error(err))
		return err
	}
	c.logger.Info("Redis disconnected")
	return nil
}
