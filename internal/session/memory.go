package session

import (
	"context"
	"sync"
	"time"

	"ArcadeFlow/internal/model"
)

type entry struct {
	session   Session
	expiresAt time.Time // 零值表示不过期
}

// pruneInterval 两次清理过期会话的最小间隔
const pruneInterval = time.Minute

type memoryStore struct {
	mu        sync.Mutex
	entries   map[string]entry
	now       func() time.Time
	lastPrune time.Time
}

func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]entry), now: time.Now}
}

func (m *memoryStore) Save(_ context.Context, s *Session, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	if now.Sub(m.lastPrune) >= pruneInterval {
		m.pruneLocked(now)
	}
	e := entry{session: *s}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	m.entries[s.UserID] = e
	return nil
}

// pruneLocked 删除已过期的会话，调用方持有锁
func (m *memoryStore) pruneLocked(now time.Time) {
	for id, e := range m.entries {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(m.entries, id)
		}
	}
	m.lastPrune = now
}

func (m *memoryStore) Load(_ context.Context, userID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, userID)
		return nil, model.ErrNotFound
	}
	s := e.session
	return &s, nil
}
