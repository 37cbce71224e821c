package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoinRecord_RiskLevel(t *testing.T) {
	tests := []struct {
		name      string
		trend     string
		marketCap string
		want      string
	}{
		{"bullish_high", "bullish", "high", "low"},
		{"rising_high", "rising", "high", "low"},
		{"consolidating_high", "consolidating", "high", "medium"},
		{"stable_medium", "stable", "medium", "medium"},
		{"volatile_medium", "volatile", "medium", "high"},
		{"bearish_low", "bearish", "low", "very_high"},
		{"dump_low", "dump", "low", "very_high"},
		{"unmapped_pair_defaults", "pump", "low", "medium"},
		{"unknown_trend_defaults", "sideways", "high", "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := CoinRecord{Trend: tt.trend, MarketCap: tt.marketCap}
			if got := rec.RiskLevel(); got != tt.want {
				t.Errorf("RiskLevel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoinRecord_IsStale(t *testing.T) {
	fresh := CoinRecord{LastUpdated: time.Now().Add(-10 * time.Minute)}
	assert.False(t, fresh.IsStale())

	stale := CoinRecord{LastUpdated: time.Now().Add(-2 * time.Hour)}
	assert.True(t, stale.IsStale())
}

func TestCoinRecord_IsBullish(t *testing.T) {
	for trend, want := range map[string]bool{
		"bullish": true, "rising": true, "pump": true,
		"bearish": false, "stable": false, "": false,
	} {
		rec := CoinRecord{Trend: trend}
		if rec.IsBullish() != want {
			t.Errorf("IsBullish() with trend %q = %v, want %v", trend, !want, want)
		}
	}
}

func TestCoinRecord_AddTag(t *testing.T) {
	rec := CoinRecord{Tags: []string{"defi"}}

	assert.True(t, rec.AddTag("layer-1"))
	assert.Equal(t, []string{"defi", "layer-1"}, rec.Tags)

	// duplicate add is a no-op
	assert.False(t, rec.AddTag("defi"))
	assert.Equal(t, []string{"defi", "layer-1"}, rec.Tags)
}

func TestCoinRecord_Clone(t *testing.T) {
	change := 4.2
	rec := CoinRecord{Name: "chainlink", Tags: []string{"oracle"}, PriceChange24h: &change}

	clone := rec.Clone()
	clone.Tags[0] = "mutated"
	*clone.PriceChange24h = -1

	assert.Equal(t, "oracle", rec.Tags[0])
	assert.Equal(t, 4.2, *rec.PriceChange24h)
}

func TestSessionContext_HistoryFIFO(t *testing.T) {
	sctx := NewSessionContext("s1")

	for i := 0; i <= 10; i++ {
		sctx.AddToHistory(fmt.Sprintf("m%d", i))
	}

	assert.Len(t, sctx.History, HistoryLimit)
	assert.Equal(t, "m1", sctx.History[0])
	assert.Equal(t, "m10", sctx.History[len(sctx.History)-1])
}

func TestSessionContext_HistoryRefreshesActivity(t *testing.T) {
	sctx := NewSessionContext("s1")
	before := sctx.LastActivity

	time.Sleep(5 * time.Millisecond)
	sctx.AddToHistory("hello")

	assert.True(t, sctx.LastActivity.After(before))
}

func TestSessionContext_Defaults(t *testing.T) {
	sctx := NewSessionContext("s1")
	assert.Equal(t, "medium", sctx.RiskTolerance)
	assert.Empty(t, sctx.FavoriteCoins)
	assert.Empty(t, sctx.History)
}
