// Package app собирает зависимости, общие для шлюза и campusctl.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_connect/internal/client"
	"github.com/shenikar/campus_connect/internal/config"
	"github.com/shenikar/campus_connect/internal/repository"
	"github.com/shenikar/campus_connect/internal/session"
	"github.com/shenikar/campus_connect/pkg/postgres"
	redisclient "github.com/shenikar/campus_connect/pkg/redis"
	"github.com/sirupsen/logrus"
)

// MigrationsSource - каталог миграций относительно рабочего каталога процесса
const MigrationsSource = "file://migrations"

// Resources - открытые соединения; Close освобождает их
type Resources struct {
	Store session.Store
	Redis *redis.Client

	closers []func()
}

// Close закрывает соединения в обратном порядке
func (r *Resources) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		r.closers[i]()
	}
}

// RunMigrations применяет миграции таблицы сессий
func RunMigrations(databaseURL string, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := databaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(MigrationsSource, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// Open открывает хранилище сессии выбранного бэкенда.
// Redis подключается и для очереди вебхуков, если задан WEBHOOK_URL;
// недоступность Redis в этом случае только отключает вебхуки.
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Resources, error) {
	res := &Resources{}

	needRedis := cfg.SessionBackend == config.SessionBackendRedis || cfg.WebhookURL != ""
	if needRedis {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		switch {
		case err == nil:
			res.Redis = redisClient
			res.closers = append(res.closers, func() { _ = redisClient.Close() })
			log.Info("Successfully connected to Redis")
		case cfg.SessionBackend == config.SessionBackendRedis:
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		default:
			log.WithError(err).Warn("Redis unavailable, webhooks disabled")
		}
	}

	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		res.Store = session.NewMemoryStore()
	case config.SessionBackendRedis:
		res.Store = repository.NewRedisSessionStore(res.Redis, cfg.SessionKey)
	case config.SessionBackendPostgres:
		if err := RunMigrations(cfg.DatabaseURL, log); err != nil {
			res.Close()
			return nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			res.Close()
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		res.closers = append(res.closers, dbpool.Close)
		log.Info("Successfully connected to PostgreSQL")
		res.Store = repository.NewPostgresSessionStore(dbpool, cfg.SessionKey)
	default:
		res.Store = session.NewFileStore(cfg.SessionFile)
	}

	log.WithField("backend", cfg.SessionBackend).Info("Session store ready")
	return res, nil
}

// NewClient создает клиент API; reg может быть nil, тогда метрики не собираются
func NewClient(cfg *config.Config, store session.Store, log *logrus.Logger, reg prometheus.Registerer) *client.Client {
	opts := []client.Option{client.WithHTTPClient(client.NewHTTPClient(cfg.RequestTimeout))}
	if reg != nil {
		opts = append(opts, client.WithMetrics(client.NewMetrics(reg)))
	}
	return client.New(cfg.APIBaseURL, store, log, opts...)
}
