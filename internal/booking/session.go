package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"festly/internal/shared/constants"
	"festly/pkg/cache"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("booking session not found or expired")

// SessionStore persists in-progress booking sessions. Sessions are
// short-lived working state, not reservations; only a confirmed
// submission produces a durable record.
type SessionStore interface {
	Save(ctx context.Context, state *State) error
	Load(ctx context.Context, sessionID uuid.UUID) (*State, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type redisSessionStore struct {
	cache cache.Service
	ttl   time.Duration
}

// NewRedisSessionStore backs sessions by Redis with a sliding TTL:
// every save renews the expiry, so active sessions live on while
// abandoned ones age out.
func NewRedisSessionStore(cacheService cache.Service, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		cache: cacheService,
		ttl:   ttl,
	}
}

func sessionKey(sessionID uuid.UUID) string {
	return constants.BuildBookingSessionKey(sessionID.String())
}

func (s *redisSessionStore) Save(ctx context.Context, state *State) error {
	if err := s.cache.Set(ctx, sessionKey(state.SessionID), state, s.ttl); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Load(ctx context.Context, sessionID uuid.UUID) (*State, error) {
	var state State
	if err := s.cache.Get(ctx, sessionKey(sessionID), &state); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	if state.Selections == nil {
		state.Selections = make(map[uuid.UUID]int)
	}
	return &state, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.cache.Delete(ctx, sessionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

// memorySessionStore keeps sessions in process memory. Used when Redis
// is unavailable and in tests; sessions do not survive a restart.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID][]byte
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[uuid.UUID][]byte),
	}
}

func (s *memorySessionStore) Save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = data
	return nil
}

func (s *memorySessionStore) Load(ctx context.Context, sessionID uuid.UUID) (*State, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	if state.Selections == nil {
		state.Selections = make(map[uuid.UUID]int)
	}
	return &state, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}
