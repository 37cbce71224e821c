package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sandevgo/coinbot/internal/core"
	"github.com/sandevgo/coinbot/pkg/log"
)

const (
	recordKeyPrefix = "crypto_data_"
	listKey         = "all_coins"

	// DefaultTTL is the cache entry time-to-live used when none is configured.
	DefaultTTL = 3600 * time.Second
)

// CachedCatalog decorates a DataProvider with a TTL cache. The cache is
// advisory: on any backend failure lookups fall through to the wrapped
// source. Absent records are never cached, so a freshly added coin is
// visible on its first uncached lookup.
type CachedCatalog struct {
	source  core.DataProvider
	backend core.CacheBackend
	ttl     time.Duration
}

func NewCachedCatalog(source core.DataProvider, backend core.CacheBackend, ttl time.Duration) *CachedCatalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedCatalog{
		source:  source,
		backend: backend,
		ttl:     ttl,
	}
}

func (c *CachedCatalog) Coin(ctx context.Context, id string) (core.CoinRecord, bool) {
	key := recordKeyPrefix + strings.ToLower(id)

	raw, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Str("key", key).Msg("cache lookup failed, falling through")
	} else if ok {
		var rec core.CoinRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.FromCtx(ctx).Debug().Err(err).Str("key", key).Msg("dropping undecodable cache entry")
			_ = c.backend.Delete(ctx, key)
		} else {
			return rec, true
		}
	}

	rec, found := c.source.Coin(ctx, id)
	if !found {
		return core.CoinRecord{}, false
	}

	if raw, err := json.Marshal(rec); err == nil {
		if err := c.backend.Set(ctx, key, raw, c.ttl); err != nil {
			log.FromCtx(ctx).Debug().Err(err).Str("key", key).Msg("cache store failed")
		}
	}
	return rec, true
}

func (c *CachedCatalog) CoinIDs(ctx context.Context) []string {
	raw, ok, err := c.backend.Get(ctx, listKey)
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("cache listing lookup failed, falling through")
	} else if ok {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			_ = c.backend.Delete(ctx, listKey)
		} else {
			return ids
		}
	}

	ids := c.source.CoinIDs(ctx)
	if raw, err := json.Marshal(ids); err == nil {
		if err := c.backend.Set(ctx, listKey, raw, c.ttl); err != nil {
			log.FromCtx(ctx).Debug().Err(err).Msg("cache listing store failed")
		}
	}
	return ids
}

// Invalidate removes the cached record for id and the catalog listing.
// Called after every catalog upsert.
func (c *CachedCatalog) Invalidate(ctx context.Context, id string) error {
	key := recordKeyPrefix + strings.ToLower(id)
	if err := c.backend.Delete(ctx, key); err != nil {
		return err
	}
	return c.backend.Delete(ctx, listKey)
}
