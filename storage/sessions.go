package storage

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/dr-lamia/med-nexus-portal/configuration"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
)

// ErrNoSession is returned when no usable session exists for the given id.
var ErrNoSession = errors.New("session not found")

// SessionStore persists the authenticated user for the lifetime of a login.
// Records are stored as JSON; a record that no longer decodes is removed and
// treated as unauthenticated rather than surfaced as an error.
type SessionStore interface {
	Save(sessionID string, user models.SessionUser) error
	Get(sessionID string) (*models.SessionUser, error)
	Delete(sessionID string) error
}

// MemorySessionStore is the default backend. It keeps everything in process
// memory, matching the portal's all-mock data model.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	data      []byte
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Save(sessionID string, user models.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = memorySession{
		data:      data,
		expiresAt: time.Now().Add(configuration.SessionTTL()),
	}
	return nil
}

func (s *MemorySessionStore) Get(sessionID string) (*models.SessionUser, error) {
	s.mu.RLock()
	stored, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(stored.expiresAt) {
		return nil, ErrNoSession
	}

	var user models.SessionUser
	if err := json.Unmarshal(stored.data, &user); err != nil {
		// Corrupt record: clear it and fall back to unauthenticated.
		logger.WithComponent("sessions").WithError(err).Error("error parsing stored session, clearing it")
		_ = s.Delete(sessionID)
		return nil, ErrNoSession
	}
	return &user, nil
}

func (s *MemorySessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// SweepExpired drops sessions past their TTL and returns how many were removed.
func (s *MemorySessionStore) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := time.Now()
	for id, stored := range s.sessions {
		if now.After(stored.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RedisSessionStore keeps sessions in redis with the configured TTL.
type RedisSessionStore struct{}

func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisSessionStore) Save(sessionID string, user models.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return configuration.SetRedis(sessionKey(sessionID), data, configuration.SessionTTL())
}

func (s *RedisSessionStore) Get(sessionID string) (*models.SessionUser, error) {
	value, err := configuration.GetRedis(sessionKey(sessionID))
	if err != nil {
		return nil, ErrNoSession
	}

	var user models.SessionUser
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		logger.WithComponent("sessions").WithError(err).Error("error parsing stored session, clearing it")
		_ = s.Delete(sessionID)
		return nil, ErrNoSession
	}
	return &user, nil
}

func (s *RedisSessionStore) Delete(sessionID string) error {
	return configuration.DelRedis(sessionKey(sessionID))
}
