// Package session хранит токен и профиль текущего пользователя.
// Хранилище передается явно каждому компоненту, которому нужна сессия.
package session

import (
	"context"
	"errors"

	"github.com/shenikar/campus_connect/internal/models"
)

// ErrEmptyToken - попытка сохранить сессию без токена
var ErrEmptyToken = errors.New("session token is empty")

// Store определяет контракт хранилища сессии.
// Store сохраняет токен и профиль вместе: либо оба, либо ничего.
type Store interface {
	Load(ctx context.Context) (*models.Session, error)
	Store(ctx context.Context, token string, user models.UserProfile) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
}

// Token возвращает токен текущей сессии или пустую строку
func Token(ctx context.Context, store Store) (string, error) {
	sess, err := store.Load(ctx)
	if err != nil || sess == nil {
		return "", err
	}
	return sess.Token, nil
}

// authenticated - общая реализация IsAuthenticated поверх Load
func authenticated(ctx context.Context, store Store) bool {
	sess, err := store.Load(ctx)
	return err == nil && sess != nil && sess.Token != ""
}
