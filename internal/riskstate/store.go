package riskstate

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/wellness-service/internal/domain"
)

const keyPrefix = "risk:state:"

// Store tracks the last computed risk state per user, backing
// transition-based alert deduplication.
type Store interface {
	// Last returns the previously recorded state and whether one exists.
	Last(ctx context.Context, userID string) (domain.RiskState, bool, error)
	Set(ctx context.Context, userID string, state domain.RiskState) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Redis-backed store.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Last(ctx context.Context, userID string) (domain.RiskState, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return domain.RiskState(val), true, nil
}

func (s *redisStore) Set(ctx context.Context, userID string, state domain.RiskState) error {
	return s.client.Set(ctx, keyPrefix+userID, string(state), 0).Err()
}

type memoryStore struct {
	mu     sync.RWMutex
	states map[string]domain.RiskState
}

// NewMemoryStore returns an in-process store, used when Redis is not
// configured and as the test double.
func NewMemoryStore() Store {
	return &memoryStore{states: make(map[string]domain.RiskState)}
}

func (s *memoryStore) Last(_ context.Context, userID string) (domain.RiskState, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[userID]
	return state, ok, nil
}

func (s *memoryStore) Set(_ context.Context, userID string, state domain.RiskState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
	return nil
}
