package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Бэкенды хранилища сессии
const (
	SessionBackendFile     = "file"
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL" yaml:"api_base_url"`
	HTTPPort       string        `env:"HTTP_PORT" envDefault:"8080" yaml:"http_port"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"0" yaml:"request_timeout"`

	// Session Config
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"file" yaml:"session_backend"`
	SessionFile    string `env:"SESSION_FILE" yaml:"session_file"`
	SessionKey     string `env:"SESSION_KEY" envDefault:"default" yaml:"session_key"`
	DatabaseURL    string `env:"DATABASE_URL" yaml:"database_url"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379" yaml:"redis_addr"`
	RedisPass string `env:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0" yaml:"redis_db"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL" yaml:"webhook_url"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET" yaml:"webhook_secret"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s" yaml:"webhook_timeout"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3" yaml:"webhook_max_retries"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s" yaml:"webhook_base_delay"`

	// Отбрасывать ответы устаревших refresh
	DiscardStaleRefresh bool `env:"REFRESH_DISCARD_STALE" envDefault:"false" yaml:"refresh_discard_stale"`

	// API Keys for gateway access (пусто - доступ открыт)
	APIKeys []string `env:"API_KEYS" yaml:"api_keys"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла.
// Если задан CONFIG_FILE, значения из YAML-файла служат значениями по умолчанию.
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.APIBaseURL = getEnv("API_BASE_URL", cfg.APIBaseURL)
	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.SessionBackend = strings.ToLower(getEnv("SESSION_BACKEND", cfg.SessionBackend))
	cfg.SessionFile = getEnv("SESSION_FILE", cfg.SessionFile)
	cfg.SessionKey = getEnv("SESSION_KEY", cfg.SessionKey)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPass = getEnv("REDIS_PASSWORD", cfg.RedisPass)
	cfg.RedisDB = getEnvAsInt("REDIS_DB", cfg.RedisDB)
	cfg.WebhookURL = getEnv("WEBHOOK_URL", cfg.WebhookURL)
	cfg.WebhookSecret = getEnv("WEBHOOK_SECRET", cfg.WebhookSecret)
	cfg.WebhookTimeout = getEnvAsDuration("WEBHOOK_TIMEOUT", cfg.WebhookTimeout)
	cfg.WebhookMaxRetries = getEnvAsInt("WEBHOOK_MAX_RETRIES", cfg.WebhookMaxRetries)
	cfg.WebhookBaseDelay = getEnvAsDuration("WEBHOOK_BASE_DELAY", cfg.WebhookBaseDelay)
	cfg.DiscardStaleRefresh = getEnvAsBool("REFRESH_DISCARD_STALE", cfg.DiscardStaleRefresh)

	// Загрузка API ключей
	if apiKeysStr := os.Getenv("API_KEYS"); apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL environment variable is required")
	}
	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendMemory, SessionBackendRedis:
	case SessionBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for postgres session backend")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		HTTPPort:          "8080",
		LogLevel:          "info",
		SessionBackend:    SessionBackendFile,
		SessionFile:       defaultSessionFile(),
		SessionKey:        "default",
		RedisAddr:         "localhost:6379",
		WebhookTimeout:    5 * time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Second,
	}
}

// loadFile накладывает значения из YAML-файла поверх значений по умолчанию
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "campus_connect", "session.json")
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
