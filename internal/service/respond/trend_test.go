package respond

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/coinbot/internal/catalog"
	"github.com/sandevgo/coinbot/internal/core"
)

func TestTrend_CanHandle(t *testing.T) {
	ctx := context.Background()
	tr := NewTrend(catalog.NewSeeded())
	sctx := core.NewSessionContext("s1")

	tests := []struct {
		input string
		want  bool
	}{
		{"how's the crypto market", true},
		{"what's hot right now", true},
		{"are we in a bull market", true},
		{"portfolio check please", true},
		{"how are my coins doing", true},
		{"hello", false},
		{"should i buy bitcoin", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tr.CanHandle(ctx, tt.input, sctx), "input %q", tt.input)
	}
}

func TestTrend_PortfolioEmpty(t *testing.T) {
	ctx := context.Background()
	tr := NewTrend(catalog.NewSeeded())

	resp, err := tr.Respond(ctx, "portfolio check", core.NewSessionContext("s1"))
	require.NoError(t, err)
	assert.Equal(t, core.TypePortfolioEmpty, resp.Type)
}

func TestTrend_PortfolioSummary(t *testing.T) {
	ctx := context.Background()
	tr := NewTrend(catalog.NewSeeded())

	sctx := core.NewSessionContext("s1")
	sctx.FavoriteCoins = []string{"bitcoin", "solana"}

	resp, err := tr.Respond(ctx, "portfolio check", sctx)
	require.NoError(t, err)

	assert.Equal(t, core.TypePortfolioSummary, resp.Type)
	assert.Equal(t, core.FormatHTML, resp.Format)
	assert.Contains(t, resp.Text, "Your Watchlist")
	assert.Contains(t, resp.Text, "BITCOIN 🚀 bullish")
	assert.Contains(t, resp.Text, "SOLANA 🔥 pump")
}

func TestTrend_PortfolioShowsLastFiveAndSkipsUnknown(t *testing.T) {
	ctx := context.Background()
	tr := NewTrend(catalog.NewSeeded())

	sctx := core.NewSessionContext("s1")
	sctx.FavoriteCoins = []string{"bitcoin", "gonecoin", "ethereum", "dogecoin", "solana", "cardano", "chainlink"}

	resp, err := tr.Respond(ctx, "portfolio check", sctx)
	require.NoError(t, err)

	// only the last five favorites are summarized
	assert.NotContains(t, resp.Text, "BITCOIN")
	assert.NotContains(t, resp.Text, "gonecoin")
	assert.Contains(t, resp.Text, "CHAINLINK")
}

func TestTrend_MarketOverview(t *testing.T) {
	ctx := context.Background()
	tr := NewTrend(catalog.NewSeeded())

	resp, err := tr.Respond(ctx, "how is the overall market", sctx())
	require.NoError(t, err)

	assert.Equal(t, core.TypeMarketOverview, resp.Type)
	// every seeded trend appears once, so the first in catalog order wins
	assert.Contains(t, resp.Text, "Overall mood: bullish")
	assert.Contains(t, resp.Text, "🚀")
}

func TestTrend_MarketOverviewModalTrend(t *testing.T) {
	ctx := context.Background()
	cat := catalog.New()
	cat.Upsert(core.CoinRecord{Name: "a", Trend: "bearish"})
	cat.Upsert(core.CoinRecord{Name: "b", Trend: "dump"})
	cat.Upsert(core.CoinRecord{Name: "c", Trend: "dump"})

	tr := NewTrend(cat)
	resp, err := tr.Respond(ctx, "crypto market today", sctx())
	require.NoError(t, err)

	assert.Contains(t, resp.Text, "Overall mood: dump")
	assert.Contains(t, resp.Text, "💥")
}

func TestTrend_MarketOverviewEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	tr := NewTrend(catalog.New())

	resp, err := tr.Respond(ctx, "market trend", sctx())
	require.NoError(t, err)
	assert.Contains(t, resp.Text, "Overall mood: unknown")
}

func sctx() *core.SessionContext {
	return core.NewSessionContext("s1")
}
