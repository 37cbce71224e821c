package session

import "sync"

// KeyLock serializes work per session id. Same-session turns must not
// interleave or history and favorites updates can be lost; cross-session
// turns need no coordination.
type KeyLock struct {
	locks sync.Map // session id -> *sync.Mutex
}

func NewKeyLock() *KeyLock {
	return &KeyLock{}
}

// Lock acquires the mutex for key and returns its release func.
func (k *KeyLock) Lock(key string) func() {
	m, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
