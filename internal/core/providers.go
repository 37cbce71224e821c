package core

import (
	"context"
	"time"
)

// DataProvider serves coin records and the set of known coin ids. Absent ids
// yield ok=false, never an error.
type DataProvider interface {
	Coin(ctx context.Context, id string) (CoinRecord, bool)
	CoinIDs(ctx context.Context) []string
}

// CacheBackend is a key-value store with TTL expiry. Implementations must be
// atomic at single-key granularity.
type CacheBackend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
