package catalog

import (
	"time"

	"github.com/sandevgo/coinbot/internal/core"
)

// NewSeeded builds a catalog preloaded with the static dataset.
func NewSeeded() *Catalog {
	c := New()
	for _, rec := range seedCoins() {
		c.Upsert(rec)
	}
	return c
}

func seedCoins() []core.CoinRecord {
	now := time.Now()
	return []core.CoinRecord{
		{
			Name:                "bitcoin",
			Trend:               "bullish",
			Verdict:             "The OG cryptocurrency. Digital gold that never tarnishes.",
			Advice:              "BTC is your crypto foundation. Stack sats and stay humble.",
			MarketCap:           "high",
			SustainabilityScore: 3.0,
			LastUpdated:         now,
			PriceChange24h:      ptr(2.5),
			Tags:                []string{"store-of-value", "digital-gold", "layer-1"},
		},
		{
			Name:                "ethereum",
			Trend:               "consolidating",
			Verdict:             "The smart contract pioneer. Still the king of DeFi.",
			Advice:              "ETH powers the decentralized future. Stake it for the long haul.",
			MarketCap:           "high",
			SustainabilityScore: 8.0,
			LastUpdated:         now,
			PriceChange24h:      ptr(1.8),
			Tags:                []string{"smart-contracts", "defi", "layer-1", "pos"},
		},
		{
			Name:                "dogecoin",
			Trend:               "volatile",
			Verdict:             "Much wow, such meme. The people's crypto.",
			Advice:              "DOGE is fun money. Only invest your meme budget.",
			MarketCap:           "medium",
			SustainabilityScore: 4.0,
			LastUpdated:         now,
			PriceChange24h:      ptr(-3.2),
			Tags:                []string{"meme", "payment", "community"},
		},
		{
			Name:                "solana",
			Trend:               "pump",
			Verdict:             "The Ethereum killer with actual speed. When it works.",
			Advice:              "SOL moves fast and breaks things. High risk, high reward.",
			MarketCap:           "medium",
			SustainabilityScore: 7.0,
			LastUpdated:         now,
			PriceChange24h:      ptr(8.7),
			Tags:                []string{"layer-1", "fast", "cheap", "defi"},
		},
		{
			Name:                "cardano",
			Trend:               "stable",
			Verdict:             "The academic's blockchain. Slow and steady wins the race?",
			Advice:              "ADA is a long-term play. Perfect for patient investors.",
			MarketCap:           "medium",
			SustainabilityScore: 9.0,
			LastUpdated:         now,
			PriceChange24h:      ptr(0.5),
			Tags:                []string{"academic", "pos", "sustainable", "layer-1"},
		},
		{
			Name:                "chainlink",
			Trend:               "rising",
			Verdict:             "The oracle that connects blockchains to reality.",
			Advice:              "LINK is infrastructure. Not sexy, but essential.",
			MarketCap:           "medium",
			SustainabilityScore: 7.5,
			LastUpdated:         now,
			PriceChange24h:      ptr(4.2),
			Tags:                []string{"oracle", "infrastructure", "defi"},
		},
	}
}

func ptr(v float64) *float64 { return &v }
