package respond

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sandevgo/coinbot/internal/core"
)

var (
	trendPatterns = []*regexp.Regexp{
		regexp.MustCompile(`market trend|overall market|crypto market`),
		regexp.MustCompile(`what's hot|trending|popular`),
		regexp.MustCompile(`bull.*market|bear.*market`),
		regexp.MustCompile(`portfolio.*check|my.*coins`),
	}

	portfolioPattern = regexp.MustCompile(`portfolio.*check|my.*coins`)
)

var trendEmoji = map[string]string{
	"bullish": "🚀", "rising": "📈", "pump": "🔥",
}

var moodEmoji = map[string]string{
	"bullish": "🚀", "rising": "📈", "pump": "🔥",
	"bearish": "📉", "dump": "💥", "volatile": "🎢",
}

// Trend answers market-mood and portfolio-check questions.
type Trend struct {
	data core.DataProvider
}

func NewTrend(data core.DataProvider) *Trend {
	return &Trend{data: data}
}

func (t *Trend) Name() string { return "trend_analysis" }

func (t *Trend) CanHandle(ctx context.Context, input string, sctx *core.SessionContext) bool {
	lower := strings.ToLower(input)
	for _, pattern := range trendPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func (t *Trend) Respond(ctx context.Context, input string, sctx *core.SessionContext) (core.Response, error) {
	if portfolioPattern.MatchString(strings.ToLower(input)) {
		return t.portfolioSummary(ctx, sctx), nil
	}
	return t.marketOverview(ctx), nil
}

// portfolioSummary renders the last five favorite coins. Favorites that no
// longer resolve are skipped silently.
func (t *Trend) portfolioSummary(ctx context.Context, sctx *core.SessionContext) core.Response {
	if len(sctx.FavoriteCoins) == 0 {
		return core.Response{
			Text: "You haven't asked about coins yet! Try asking about Bitcoin or Ethereum to get started.",
			Type: core.TypePortfolioEmpty,
		}
	}

	favorites := sctx.FavoriteCoins
	if len(favorites) > 5 {
		favorites = favorites[len(favorites)-5:]
	}

	var summaries []string
	for _, coin := range favorites {
		rec, ok := t.data.Coin(ctx, coin)
		if !ok {
			continue
		}
		emoji, ok := trendEmoji[rec.Trend]
		if !ok {
			emoji = "📊"
		}
		summaries = append(summaries, fmt.Sprintf("%s %s %s", strings.ToUpper(coin), emoji, rec.Trend))
	}

	return core.Response{
		Text:   sanitizeHTML("<strong>Your Watchlist</strong><br>" + strings.Join(summaries, "<br>")),
		Type:   core.TypePortfolioSummary,
		Format: core.FormatHTML,
	}
}

// marketOverview tallies trends across the whole catalog and reports the
// modal one. Ties go to the trend first encountered in catalog order.
func (t *Trend) marketOverview(ctx context.Context) core.Response {
	counts := make(map[string]int)
	var order []string

	for _, id := range t.data.CoinIDs(ctx) {
		rec, ok := t.data.Coin(ctx, id)
		if !ok {
			continue
		}
		if _, seen := counts[rec.Trend]; !seen {
			order = append(order, rec.Trend)
		}
		counts[rec.Trend]++
	}

	mood := "unknown"
	best := 0
	for _, trend := range order {
		if counts[trend] > best {
			mood = trend
			best = counts[trend]
		}
	}

	emoji, ok := moodEmoji[mood]
	if !ok {
		emoji = "🤷‍♂️"
	}

	return core.Response{
		Text: sanitizeHTML(fmt.Sprintf(
			"<strong>Market Overview</strong> %s<br>Overall mood: %s<br>Stay safe out there!",
			emoji, mood,
		)),
		Type:   core.TypeMarketOverview,
		Format: core.FormatHTML,
	}
}
