package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", first.SessionID)
	assert.Equal(t, "medium", first.RiskTolerance)

	first.FavoriteCoins = append(first.FavoriteCoins, "bitcoin")

	again, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, []string{"bitcoin"}, again.FavoriteCoins)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a, _ := store.GetOrCreate(ctx, "a")
	a.AddToHistory("hello")

	b, _ := store.GetOrCreate(ctx, "b")
	assert.Empty(t, b.History)
}

func TestKeyLock_SerializesSameKey(t *testing.T) {
	locks := NewKeyLock()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("s1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyLock_IndependentKeysDoNotBlock(t *testing.T) {
	locks := NewKeyLock()

	unlockA := locks.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("b")
		unlockB()
		close(done)
	}()
	<-done
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sessions.db")

	db, err := NewDB(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLiteStore(db)

	sctx, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)

	sctx.FavoriteCoins = []string{"ethereum"}
	sctx.AddToHistory("should i buy ethereum")
	sctx.RiskTolerance = "high"
	require.NoError(t, store.Save(ctx, sctx))

	loaded, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ethereum"}, loaded.FavoriteCoins)
	assert.Equal(t, []string{"should i buy ethereum"}, loaded.History)
	assert.Equal(t, "high", loaded.RiskTolerance)
	assert.False(t, loaded.LastActivity.IsZero())
}

func TestSQLiteStore_UnknownSessionCreatedLazily(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sessions.db")

	db, err := NewDB(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLiteStore(db)

	sctx, err := store.GetOrCreate(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, sctx.History)

	// nothing was persisted until Save
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestSQLiteStore_SaveIsUpsert(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "sessions.db")

	db, err := NewDB(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()

	store := NewSQLiteStore(db)

	sctx, _ := store.GetOrCreate(ctx, "s1")
	require.NoError(t, store.Save(ctx, sctx))

	sctx.AddToHistory("hey")
	require.NoError(t, store.Save(ctx, sctx))

	loaded, err := store.GetOrCreate(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"hey"}, loaded.History)
}
