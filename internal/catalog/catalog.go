package catalog

import (
	"context"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/sandevgo/coinbot/internal/core"
)

// Catalog is the static key -> record store of known coins. Iteration order
// is insertion order, which the fuzzy matcher's tie-break policy relies on.
type Catalog struct {
	mu    sync.RWMutex
	coins *orderedmap.OrderedMap[string, *core.CoinRecord]
}

func New() *Catalog {
	return &Catalog{
		coins: orderedmap.New[string, *core.CoinRecord](),
	}
}

// Coin returns a copy of the record for id, or ok=false when unknown.
func (c *Catalog) Coin(ctx context.Context, id string) (core.CoinRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.coins.Get(strings.ToLower(id))
	if !ok {
		return core.CoinRecord{}, false
	}
	return rec.Clone(), true
}

// CoinIDs lists all known ids in insertion order.
func (c *Catalog) CoinIDs(ctx context.Context) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, c.coins.Len())
	for pair := c.coins.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Upsert stores rec keyed by its lowercased name. Existing entries keep their
// position in the listing. The cache layer must be invalidated separately.
func (c *Catalog) Upsert(rec core.CoinRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec.Name = strings.ToLower(rec.Name)
	stored := rec.Clone()
	c.coins.Set(rec.Name, &stored)
}
