package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/campus_connect/internal/models"
	"github.com/shenikar/campus_connect/internal/session"
)

// querier - подмножество pgxpool.Pool, которое нужно хранилищу
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresSessionStore struct {
	db  querier
	key string
}

func NewPostgresSessionStore(db querier, key string) session.Store {
	return &PostgresSessionStore{
		db:  db,
		key: key,
	}
}

// Load возвращает сессию по ключу
func (r *PostgresSessionStore) Load(ctx context.Context) (*models.Session, error) {
	query := `
		SELECT token, user_profile
		FROM sessions
		WHERE session_key = $1;
	`
	var (
		token    string
		userJSON []byte
	)
	err := r.db.QueryRow(ctx, query, r.key).Scan(&token, &userJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if token == "" || len(userJSON) == 0 {
		return nil, nil
	}

	var user models.UserProfile
	if err := json.Unmarshal(userJSON, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session user: %w", err)
	}
	return &models.Session{Token: token, User: user}, nil
}

// Store сохраняет токен и профиль одной строкой (upsert)
func (r *PostgresSessionStore) Store(ctx context.Context, token string, user models.UserProfile) error {
	if token == "" {
		return session.ErrEmptyToken
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	query := `
		INSERT INTO sessions (session_key, token, user_profile)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_key) DO UPDATE SET
			token = EXCLUDED.token,
			user_profile = EXCLUDED.user_profile,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, r.key, token, userJSON); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Clear удаляет сессию; отсутствие строки не ошибка
func (r *PostgresSessionStore) Clear(ctx context.Context) error {
	query := `DELETE FROM sessions WHERE session_key = $1;`
	if _, err := r.db.Exec(ctx, query, r.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (r *PostgresSessionStore) IsAuthenticated(ctx context.Context) bool {
	sess, err := r.Load(ctx)
	return err == nil && sess != nil
}
