package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/session"
)

const (
	fieldToken = "token"
	fieldUser  = "user"
)

type RedisSessionStore struct {
	redisClient *redis.Client
	key         string
}

// NewRedisSessionStore хранит сессию в хэше session:<key>
func NewRedisSessionStore(redisClient *redis.Client, key string) session.Store {
	return &RedisSessionStore{
		redisClient: redisClient,
		key:         fmt.Sprintf("session:%s", key),
	}
}

// Load читает оба поля хэша; если одного нет, сессии нет
func (r *RedisSessionStore) Load(ctx context.Context) (*models.Session, error) {
	fields, err := r.redisClient.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	token, userJSON := fields[fieldToken], fields[fieldUser]
	if token == "" || userJSON == "" {
		return nil, nil
	}

	var user models.UserProfile
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session user: %w", err)
	}
	return &models.Session{Token: token, User: user}, nil
}

// Store пишет оба поля одной командой HSET, она атомарна
func (r *RedisSessionStore) Store(ctx context.Context, token string, user models.UserProfile) error {
	if token == "" {
		return session.ErrEmptyToken
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	if err := r.redisClient.HSet(ctx, r.key, fieldToken, token, fieldUser, string(userJSON)).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Clear(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("failed to clear session in redis: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) IsAuthenticated(ctx context.Context) bool {
	sess, err := r.Load(ctx)
	return err == nil && sess != nil
}
