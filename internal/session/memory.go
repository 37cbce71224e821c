package session

import (
	"context"
	"sync"

	"github.com/sandevgo/coinbot/internal/core"
)

// MemoryStore keeps session contexts for the process lifetime.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.SessionContext
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*core.SessionContext),
	}
}

func (s *MemoryStore) GetOrCreate(ctx context.Context, sessionID string) (*core.SessionContext, error) {
	s.mu.RLock()
	sctx, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return sctx, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sctx, ok := s.sessions[sessionID]; ok {
		return sctx, nil
	}
	sctx = core.NewSessionContext(sessionID)
	s.sessions[sessionID] = sctx
	return sctx, nil
}

// Save is a no-op: contexts live in the map and mutations are already
// visible. Kept to satisfy the store contract shared with persistent
// backends.
func (s *MemoryStore) Save(ctx context.Context, sctx *core.SessionContext) error {
	return nil
}
