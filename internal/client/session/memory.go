package session

import (
	"context"
	"sync"

	"github.com/mockview/mockview/internal/client/models"
)

// Memory is an in-memory Store for tests and ephemeral runs.
type Memory struct {
	mu    sync.Mutex
	token string
	user  *models.User
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) SaveToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) SaveUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = user
	return nil
}

func (m *Memory) User(ctx context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user, nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}

func (m *Memory) Authenticated(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token != "", nil
}

func (m *Memory) Close() error {
	return nil
}
