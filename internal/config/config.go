package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	// Пустой DATABASE_URL отключает хранение отправленных сообщений
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config. Пустой адрес отключает счетчики и очередь вебхуков
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" env-default:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" env-default:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" env-default:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" env-default:"1s"`

	// API Keys для панели администратора
	APIKeys []string `env:"API_KEYS" env-separator:","`

	// Report submission
	SubmitDelay          time.Duration `env:"SUBMIT_DELAY" env-default:"2s"`
	SubmitMaxAttempts    int           `env:"SUBMIT_MAX_ATTEMPTS" env-default:"3"`
	SubmitRetryBaseDelay time.Duration `env:"SUBMIT_RETRY_BASE_DELAY" env-default:"500ms"`
	SubmitAttemptTimeout time.Duration `env:"SUBMIT_ATTEMPT_TIMEOUT" env-default:"10s"`
	ReferencePrefix      string        `env:"REFERENCE_PREFIX" env-default:"SL-2024"`
	SubmitRateLimit      uint          `env:"SUBMIT_RATE_LIMIT" env-default:"5"`

	// Sessions
	SessionIdleTimeout   time.Duration `env:"SESSION_IDLE_TIMEOUT" env-default:"30m"`
	SessionPurgeSchedule string        `env:"SESSION_PURGE_SCHEDULE" env-default:"@every 1m"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	cfg.APIKeys = trimList(cfg.APIKeys)
	cfg.CORSAllowedOrigins = trimList(cfg.CORSAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, которые нельзя исправить значением по умолчанию
func (c *Config) Validate() error {
	if c.SubmitDelay < 0 {
		return fmt.Errorf("SUBMIT_DELAY must not be negative")
	}
	if c.SubmitAttemptTimeout <= 0 {
		return fmt.Errorf("SUBMIT_ATTEMPT_TIMEOUT must be positive")
	}
	if c.SubmitMaxAttempts < 1 {
		return fmt.Errorf("SUBMIT_MAX_ATTEMPTS must be at least 1")
	}
	if c.WebhookMaxRetries < 1 {
		return fmt.Errorf("WEBHOOK_MAX_RETRIES must be at least 1")
	}
	if c.SubmitRateLimit == 0 {
		return fmt.Errorf("SUBMIT_RATE_LIMIT must be positive")
	}
	if strings.TrimSpace(c.ReferencePrefix) == "" {
		return fmt.Errorf("REFERENCE_PREFIX must not be empty")
	}
	return nil
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
