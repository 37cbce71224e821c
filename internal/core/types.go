package core

import (
	"slices"
	"time"
)

const (
	BotName    = "CoinBot"
	BotVersion = "0.1.0"
)

// Response type tags returned to the boundary layer.
const (
	TypeGreeting         = "greeting"
	TypeCryptoAnalysis   = "crypto_analysis"
	TypeClarification    = "clarification"
	TypeMarketOverview   = "market_overview"
	TypePortfolioSummary = "portfolio_summary"
	TypePortfolioEmpty   = "portfolio_empty"
	TypeDefault          = "default"
	TypeError            = "error"
)

const FormatHTML = "html"

// StaleAfter is the freshness window for coin data.
const StaleAfter = time.Hour

// Response is the structured reply produced for a single turn.
type Response struct {
	Text   string `json:"response"`
	Type   string `json:"type"`
	Format string `json:"format,omitempty"`
	Coin   string `json:"coin,omitempty"`
}

// MatchResult is the outcome of fuzzy-matching free text against catalog ids.
type MatchResult struct {
	Coin  string
	Score int // normalized similarity in [0,100]
}

// CoinRecord holds metadata and analytics for a single coin. Name is the
// canonical lowercase identity and is fixed at creation; only tags may be
// added afterwards.
type CoinRecord struct {
	Name                string    `json:"name"`
	Trend               string    `json:"trend"`
	Verdict             string    `json:"verdict"`
	Advice              string    `json:"advice"`
	MarketCap           string    `json:"market_cap"` // low, medium, high
	SustainabilityScore float64   `json:"sustainability_score"`
	LastUpdated         time.Time `json:"last_updated"`
	PriceChange24h      *float64  `json:"price_change_24h,omitempty"`
	Tags                []string  `json:"tags"`
}

// IsBullish reports whether the trend counts as positive. Currently not
// routed on anywhere; callers branch on RiskLevel instead.
func (c *CoinRecord) IsBullish() bool {
	switch c.Trend {
	case "bullish", "rising", "pump":
		return true
	}
	return false
}

var riskMap = map[[2]string]string{
	{"bullish", "high"}:       "low",
	{"rising", "high"}:        "low",
	{"consolidating", "high"}: "medium",
	{"stable", "medium"}:      "medium",
	{"volatile", "medium"}:    "high",
	{"bearish", "low"}:        "very_high",
	{"dump", "low"}:           "very_high",
}

// RiskLevel derives a qualitative risk from the (trend, market cap) pair.
func (c *CoinRecord) RiskLevel() string {
	if level, ok := riskMap[[2]string{c.Trend, c.MarketCap}]; ok {
		return level
	}
	return "medium"
}

// IsStale reports whether the record is older than the freshness window.
func (c *CoinRecord) IsStale() bool {
	return time.Since(c.LastUpdated) > StaleAfter
}

// AddTag adds a classification tag. Tags behave as a set: adding an existing
// tag is a no-op and returns false.
func (c *CoinRecord) AddTag(tag string) bool {
	if slices.Contains(c.Tags, tag) {
		return false
	}
	c.Tags = append(c.Tags, tag)
	return true
}

// Clone returns a deep copy safe to hand out to callers.
func (c *CoinRecord) Clone() CoinRecord {
	out := *c
	out.Tags = slices.Clone(c.Tags)
	if c.PriceChange24h != nil {
		v := *c.PriceChange24h
		out.PriceChange24h = &v
	}
	return out
}

// HistoryLimit bounds the per-session conversation history.
const HistoryLimit = 10

// SessionContext carries per-session conversational state across turns.
type SessionContext struct {
	SessionID     string    `json:"session_id"`
	FavoriteCoins []string  `json:"favorite_coins"`
	History       []string  `json:"history"`
	RiskTolerance string    `json:"risk_tolerance"` // low, medium, high
	LastActivity  time.Time `json:"last_activity"`
}

func NewSessionContext(sessionID string) *SessionContext {
	return &SessionContext{
		SessionID:     sessionID,
		RiskTolerance: "medium",
		LastActivity:  time.Now(),
	}
}

// AddToHistory appends a raw input, evicts the oldest entries beyond the
// history limit and refreshes the activity timestamp.
func (s *SessionContext) AddToHistory(message string) {
	s.History = append(s.History, message)
	if n := len(s.History); n > HistoryLimit {
		s.History = s.History[n-HistoryLimit:]
	}
	s.LastActivity = time.Now()
}
