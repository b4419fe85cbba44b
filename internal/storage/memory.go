package storage

import (
	"context"
	"sync"
	"time"

	usermodel "github.com/Varun5711/promokit/internal/models/user"
)

// MemoryUserStore keeps accounts in a map. Used by tests and local runs
// without postgres. The mutex gives the same check-and-insert atomicity the
// UNIQUE constraint gives the postgres store.
type MemoryUserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[string]*usermodel.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		nextID: 1,
		users:  make(map[string]*usermodel.User),
	}
}

func (s *MemoryUserStore) CreateUser(_ context.Context, email, name, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, ErrDuplicateEmail
	}

	now := time.Now()
	user := &usermodel.User{
		ID:           s.nextID,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextID++
	s.users[email] = user

	copied := *user
	return &copied, nil
}

func (s *MemoryUserStore) GetUserByEmail(_ context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, nil
	}

	copied := *user
	return &copied, nil
}

// Count reports the number of stored accounts.
func (s *MemoryUserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
