package respond

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/sandevgo/coinbot/internal/core"
)

var (
	questionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`what about|tell me about|how about|info on`),
		regexp.MustCompile(`should i buy|worth buying`),
		regexp.MustCompile(`price prediction|will.*go up|will.*moon`),
		// Recognized as a question intent but not routed to its own
		// sub-response; compare questions get the general analysis.
		regexp.MustCompile(`compare.*to|vs|versus`),
	}

	buyPattern        = regexp.MustCompile(`should i buy|worth buying`)
	predictionPattern = regexp.MustCompile(`price prediction|will.*go up|will.*moon`)
)

var riskAdvice = map[string]string{
	"low":       "This looks pretty safe for your risk level.",
	"medium":    "Moderate risk - matches your profile well.",
	"high":      "This might be too spicy for your risk tolerance!",
	"very_high": "⚠️ HIGH RISK ALERT! Only if you can afford to lose it all.",
}

var predictionDisclaimers = []string{
	"🔮 Crystal ball says... nobody knows!",
	"📈 Past performance ≠ future results",
	"🎰 This is not financial advice!",
	"🚀 To the moon? Maybe, maybe not!",
}

// CoinMatcher resolves free text to the closest known coin id.
type CoinMatcher interface {
	BestMatch(text string, candidates []string) core.MatchResult
}

// Analysis handles coin-specific questions: buy advice, price predictions and
// general analysis. A resolved coin is remembered as a session favorite.
type Analysis struct {
	data    core.DataProvider
	matcher CoinMatcher
	pick    pickFunc
}

func NewAnalysis(data core.DataProvider, matcher CoinMatcher) *Analysis {
	return &Analysis{
		data:    data,
		matcher: matcher,
		pick:    defaultPick,
	}
}

func (a *Analysis) Name() string { return "crypto_analysis" }

func (a *Analysis) CanHandle(ctx context.Context, input string, sctx *core.SessionContext) bool {
	lower := strings.ToLower(input)
	for _, pattern := range questionPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}

	result := a.matcher.BestMatch(lower, a.data.CoinIDs(ctx))
	return result.Score >= ConfidenceThreshold
}

func (a *Analysis) Respond(ctx context.Context, input string, sctx *core.SessionContext) (core.Response, error) {
	lower := strings.ToLower(input)

	result := a.matcher.BestMatch(lower, a.data.CoinIDs(ctx))
	if result.Score < ConfidenceThreshold {
		return core.Response{
			Text: "Hmm, I'm not sure which crypto you're asking about. Try asking about Bitcoin, Ethereum or Solana!",
			Type: core.TypeClarification,
		}, nil
	}

	rec, ok := a.data.Coin(ctx, result.Coin)
	if !ok {
		// Matched an id the provider no longer backs: data inconsistency.
		return core.Response{
			Text: fmt.Sprintf("I know %s exists, but I don't have current data on it. My bad!", result.Coin),
			Type: core.TypeError,
		}, nil
	}

	var body string
	switch {
	case buyPattern.MatchString(lower):
		body = a.buyAdvice(&rec)
	case predictionPattern.MatchString(lower):
		body = a.prediction(&rec)
	default:
		body = a.generalAnalysis(&rec)
	}

	if !slices.Contains(sctx.FavoriteCoins, result.Coin) {
		sctx.FavoriteCoins = append(sctx.FavoriteCoins, result.Coin)
	}

	return core.Response{
		Text:   sanitizeHTML(body),
		Type:   core.TypeCryptoAnalysis,
		Format: core.FormatHTML,
		Coin:   result.Coin,
	}, nil
}

func (a *Analysis) buyAdvice(rec *core.CoinRecord) string {
	advice, ok := riskAdvice[rec.RiskLevel()]
	if !ok {
		advice = "Do your own research!"
	}

	return fmt.Sprintf(
		"<strong>%s Buy Analysis</strong><br>"+
			"<span class='trend'>Current Trend: %s</span><br>"+
			"<span class='risk'>Risk Level: %s</span><br>"+
			"<span class='verdict'>Take: %s</span><br>"+
			"<span class='advice'>My Advice: %s %s</span>",
		strings.ToUpper(rec.Name), rec.Trend, rec.RiskLevel(), rec.Verdict, advice, rec.Advice,
	)
}

func (a *Analysis) prediction(rec *core.CoinRecord) string {
	disclaimer := predictionDisclaimers[a.pick(len(predictionDisclaimers))]

	return fmt.Sprintf(
		"<strong>%s Price Prediction</strong><br>"+
			"<span class='disclaimer'>%s</span><br>"+
			"<span class='trend'>Current Trend: %s</span><br>"+
			"<span class='verdict'>Market Vibe: %s</span><br>"+
			"<span class='advice'>Strategy: %s</span>",
		strings.ToUpper(rec.Name), disclaimer, rec.Trend, rec.Verdict, rec.Advice,
	)
}

func (a *Analysis) generalAnalysis(rec *core.CoinRecord) string {
	freshness := "Fresh data"
	if rec.IsStale() {
		freshness = "Slightly stale data"
	}

	tags := rec.Tags
	if len(tags) > 3 {
		tags = tags[:3]
	}
	tagged := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagged = append(tagged, "#"+tag)
	}

	return fmt.Sprintf(
		"<strong>%s</strong> %s<br>"+
			"<span class='trend'>📊 Trend: %s</span><br>"+
			"<span class='verdict'>💭 Verdict: %s</span><br>"+
			"<span class='advice'>💡 Advice: %s</span><br>"+
			"<span class='tags'>🏷️ Tags: %s</span>",
		strings.ToUpper(rec.Name), freshness, rec.Trend, rec.Verdict, rec.Advice,
		strings.Join(tagged, " . "),
	)
}
