package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/coinbot/internal/cache"
	"github.com/sandevgo/coinbot/internal/catalog"
	"github.com/sandevgo/coinbot/internal/core"
	"github.com/sandevgo/coinbot/internal/match"
	"github.com/sandevgo/coinbot/internal/service/respond"
	"github.com/sandevgo/coinbot/internal/session"
	"github.com/sandevgo/coinbot/pkg/log"
)

// Bot ties session lookup, history, chain dispatch and error containment into
// one request/response cycle. Constructed once at startup with its
// collaborators injected; request handlers share the instance by reference.
type Bot struct {
	catalog    *catalog.Catalog
	data       *cache.CachedCatalog
	sessions   core.SessionStore
	responders []respond.Responder
	locks      *session.KeyLock
}

func New(
	cat *catalog.Catalog,
	data *cache.CachedCatalog,
	sessions core.SessionStore,
	responders []respond.Responder,
) *Bot {
	return &Bot{
		catalog:    cat,
		data:       data,
		sessions:   sessions,
		responders: responders,
		locks:      session.NewKeyLock(),
	}
}

// NewResponders builds the intent chain in its fixed priority order. The set
// is closed and order-sensitive; the fallback must stay last.
func NewResponders(data core.DataProvider) []respond.Responder {
	return []respond.Responder{
		respond.NewGreeting(),
		respond.NewAnalysis(data, match.New()),
		respond.NewTrend(data),
		respond.NewFallback(),
	}
}

// Process runs one conversational turn. Same-session turns are serialized so
// history and favorites updates are not lost under concurrent requests.
func (b *Bot) Process(ctx context.Context, sessionID, input string) core.Response {
	logger := log.FromCtx(ctx)

	unlock := b.locks.Lock(sessionID)
	defer unlock()

	sctx, err := b.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("failed to load session context")
		return errorResponse()
	}
	sctx.AddToHistory(input)

	var out core.Response
	handled := false
	for _, r := range b.responders {
		if !r.CanHandle(ctx, input, sctx) {
			continue
		}
		resp, err := safeRespond(ctx, r, input, sctx)
		if err != nil {
			// Failure inside one responder must never surface: log and let
			// the next link in the chain have a go.
			logger.Error().Err(err).Str("responder", r.Name()).Msg("responder failed, continuing chain")
			continue
		}
		logger.Info().Str("responder", r.Name()).Msg("response generated")
		out = resp
		handled = true
		break
	}

	if err := b.sessions.Save(ctx, sctx); err != nil {
		logger.Error().Err(err).Str("session", sessionID).Msg("failed to persist session context")
	}

	if !handled {
		// Unreachable while the fallback responder handles everything and
		// never fails; kept as a defensive floor.
		return errorResponse()
	}
	return out
}

func safeRespond(ctx context.Context, r respond.Responder, input string, sctx *core.SessionContext) (resp core.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("responder %s panicked: %v", r.Name(), p)
		}
	}()
	return r.Respond(ctx, input, sctx)
}

func errorResponse() core.Response {
	return core.Response{Text: "Something went wrong! Try again?", Type: core.TypeError}
}

// Advice returns the (cached) record for a specific coin.
func (b *Bot) Advice(ctx context.Context, coin string) (core.CoinRecord, bool) {
	return b.data.Coin(ctx, strings.ToLower(coin))
}

// AddCoin upserts a record into the catalog and invalidates its cache entry
// plus the catalog listing so the addition is visible immediately.
func (b *Bot) AddCoin(ctx context.Context, rec core.CoinRecord) error {
	b.catalog.Upsert(rec)
	if err := b.data.Invalidate(ctx, rec.Name); err != nil {
		return fmt.Errorf("failed to invalidate cache for %q: %w", rec.Name, err)
	}
	return nil
}
