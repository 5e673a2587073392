package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the bot.
type Config struct {
	App    AppConfig
	Bot    BotConfig
	Ticket TicketConfig
	Redis  RedisConfig
	Logger LoggerConfig
}

// AppConfig controls the ops HTTP server.
type AppConfig struct {
	Name    string
	Env     string
	Host    string
	Port    string
	Version string
}

// BotConfig holds platform connection values.
type BotConfig struct {
	Token string
}

// TicketConfig holds the ticket-flow values consumed by the services.
type TicketConfig struct {
	SupportChannelID   string
	SupportRoleID      string
	AutoArchiveMinutes int
	CleanupFetchLimit  int
	LockTTLSeconds     int
}

// RedisConfig holds Redis connection values. An empty Addr disables the
// Redis-backed creation lock and the bot falls back to the in-process one.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN not defined")
	}
	supportChannelID := os.Getenv("SUPPORT_CHANNEL_ID")
	if supportChannelID == "" {
		return nil, fmt.Errorf("SUPPORT_CHANNEL_ID not defined")
	}
	supportRoleID := os.Getenv("SUPPORT_ROLE_ID")
	if supportRoleID == "" {
		return nil, fmt.Errorf("SUPPORT_ROLE_ID not defined")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "support-thread-bot"),
			Env:     getEnv("APP_ENV", "development"),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "8080"),
			Version: getEnv("APP_VERSION", "dev"),
		},
		Bot: BotConfig{
			Token: token,
		},
		Ticket: TicketConfig{
			SupportChannelID:   supportChannelID,
			SupportRoleID:      supportRoleID,
			AutoArchiveMinutes: getEnvAsInt("THREAD_AUTO_ARCHIVE_MINUTES", 4320),
			CleanupFetchLimit:  getEnvAsInt("CLEANUP_FETCH_LIMIT", 100),
			LockTTLSeconds:     getEnvAsInt("TICKET_LOCK_TTL_SECONDS", 30),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the ops HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// LockTTL returns the creation-lock expiry duration.
func (t TicketConfig) LockTTL() time.Duration {
	if t.LockTTLSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(t.LockTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
