package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NameDataBuiltin  = "builtin"
	NameDataPostgres = "postgres"
)

type Config struct {
	Iris     IrisConfig
	Kakao    KakaoConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	NameData NameDataConfig
	Generate GenerateConfig
	Logging  LoggingConfig
	Bot      BotConfig
}

type IrisConfig struct {
	BaseURL string
	WSURL   string
}

type KakaoConfig struct {
	Rooms []string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type NameDataConfig struct {
	Source string
}

type GenerateConfig struct {
	DefaultCount int
	Cooldown     time.Duration
}

type LoggingConfig struct {
	Level string
	File  string
}

type BotConfig struct {
	Prefix  string
	Workers int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Iris: IrisConfig{
			BaseURL: getEnv("IRIS_BASE_URL", "http://localhost:3000"),
			WSURL:   getEnv("IRIS_WS_URL", "ws://localhost:3000/ws"),
		},
		Kakao: KakaoConfig{
			Rooms: parseCommaSeparated(getEnv("KAKAO_ROOMS", "")),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "arabic_names"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "arabic_names"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		NameData: NameDataConfig{
			Source: strings.ToLower(getEnv("NAMEDATA_SOURCE", NameDataBuiltin)),
		},
		Generate: GenerateConfig{
			DefaultCount: getEnvInt("GENERATE_DEFAULT_COUNT", 3),
			Cooldown:     time.Duration(getEnvInt("GENERATE_COOLDOWN_SECONDS", 5)) * time.Second,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "logs/bot.log"),
		},
		Bot: BotConfig{
			Prefix:  getEnv("BOT_PREFIX", "!"),
			Workers: getEnvInt("BOT_WORKERS", 4),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Iris.BaseURL == "" {
		return fmt.Errorf("IRIS_BASE_URL is required")
	}
	if c.Iris.WSURL == "" {
		return fmt.Errorf("IRIS_WS_URL is required")
	}
	if strings.TrimSpace(c.Bot.Prefix) == "" {
		return fmt.Errorf("BOT_PREFIX must not be blank")
	}
	if c.Bot.Workers < 1 {
		return fmt.Errorf("BOT_WORKERS must be at least 1")
	}
	if c.Generate.DefaultCount < 1 || c.Generate.DefaultCount > 10 {
		return fmt.Errorf("GENERATE_DEFAULT_COUNT must be between 1 and 10")
	}
	if c.Generate.Cooldown < 0 {
		return fmt.Errorf("GENERATE_COOLDOWN_SECONDS must not be negative")
	}
	switch c.NameData.Source {
	case NameDataBuiltin:
	case NameDataPostgres:
		if c.Postgres.Host == "" || c.Postgres.Database == "" {
			return fmt.Errorf("POSTGRES_HOST and POSTGRES_DB are required when NAMEDATA_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown NAMEDATA_SOURCE %q", c.NameData.Source)
	}
	return nil
}

// AllowsRoom reports whether the bot should answer in room. An empty room list
// allows every room.
func (c *Config) AllowsRoom(room string) bool {
	if len(c.Kakao.Rooms) == 0 {
		return true
	}
	for _, r := range c.Kakao.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func parseCommaSeparated(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
