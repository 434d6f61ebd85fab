// Package sessionmock is a function-field fake of the session repository,
// backed by an in-memory map when no override is provided.
package sessionmock

import (
	"context"
	"sync"

	domain "peerlend-gateway/internal/domain/session"
)

type Repo struct {
	SaveFn   func(ctx context.Context, s *domain.Session) error
	FindFn   func(ctx context.Context, token string) (*domain.Session, error)
	DeleteFn func(ctx context.Context, token string) error

	mu   sync.Mutex
	rows map[string]domain.Session
}

func New() *Repo { return &Repo{rows: map[string]domain.Session{}} }

func (m *Repo) Save(ctx context.Context, s *domain.Session) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[s.Token] = *s
	return nil
}

func (m *Repo) Find(ctx context.Context, token string) (*domain.Session, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (m *Repo) Delete(ctx context.Context, token string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, token)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, token)
	return nil
}

// Has reports whether a row survives, for clear-on-failure assertions.
func (m *Repo) Has(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[token]
	return ok
}
