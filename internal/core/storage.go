package core

import "context"

// SessionStore persists per-session conversational state. GetOrCreate returns
// a fresh context with defaults on first access. Concurrent mutation of the
// same session must be serialized by the caller (the orchestrator holds a
// per-session lock for the duration of a turn).
type SessionStore interface {
	GetOrCreate(ctx context.Context, sessionID string) (*SessionContext, error)
	Save(ctx context.Context, sctx *SessionContext) error
}
