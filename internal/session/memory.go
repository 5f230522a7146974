package session

import (
	"context"
	"sync"

	"github.com/shenikar/campus_connect/internal/models"
)

// MemoryStore держит сессию в памяти процесса
type MemoryStore struct {
	mu      sync.RWMutex
	session *models.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	sess := *s.session
	return &sess, nil
}

func (s *MemoryStore) Store(_ context.Context, token string, user models.UserProfile) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &models.Session{Token: token, User: user}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}

func (s *MemoryStore) IsAuthenticated(ctx context.Context) bool {
	return authenticated(ctx, s)
}
