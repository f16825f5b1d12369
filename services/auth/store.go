// File: services/auth/store.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/J-Hunxho/LowkeyLuxuryMain/models"

	"github.com/go-redis/redis/v8"
)

// currentUserKey is the single key holding the JSON-encoded current user.
// Absence means logged-out; only one user can be signed in process-wide.
const currentUserKey = "luxe:user"

// UserStore persists the single current-user record.
type UserStore interface {
	SaveCurrentUser(ctx context.Context, user models.User) error
	// GetCurrentUser returns nil with no error when nobody is signed in.
	GetCurrentUser(ctx context.Context) (*models.User, error)
	ClearCurrentUser(ctx context.Context) error
}

// RedisUserStore keeps the record under one Redis key.
type RedisUserStore struct {
	client *redis.Client
}

func NewRedisUserStore(client *redis.Client) *RedisUserStore {
	return &RedisUserStore{client: client}
}

func (s *RedisUserStore) SaveCurrentUser(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user record: %w", err)
	}
	if err := s.client.Set(ctx, currentUserKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save user record: %w", err)
	}
	return nil
}

func (s *RedisUserStore) GetCurrentUser(ctx context.Context) (*models.User, error) {
	data, err := s.client.Get(ctx, currentUserKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user record: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to parse user record: %w", err)
	}
	return &user, nil
}

func (s *RedisUserStore) ClearCurrentUser(ctx context.Context) error {
	return s.client.Del(ctx, currentUserKey).Err()
}

// MemoryUserStore keeps the record in-process.
type MemoryUserStore struct {
	mu   sync.Mutex
	user *models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) SaveCurrentUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	return nil
}

func (s *MemoryUserStore) GetCurrentUser(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, nil
	}
	user := *s.user
	return &user, nil
}

func (s *MemoryUserStore) ClearCurrentUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}
