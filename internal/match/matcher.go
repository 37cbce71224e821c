package match

import (
	"math"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/sandevgo/coinbot/internal/core"
)

// Matcher scores free text against candidate ids. A candidate is scored by
// the best normalized Levenshtein similarity between it and either the whole
// input or one of its whitespace tokens, so it tolerates misspellings and
// names buried inside longer questions.
type Matcher struct {
	metric strutil.StringMetric
}

func New() *Matcher {
	return &Matcher{metric: metrics.NewLevenshtein()}
}

// BestMatch returns the candidate with the highest score in [0,100]. Ties go
// to the first candidate encountered, so callers must pass candidates in a
// deterministic order.
func (m *Matcher) BestMatch(text string, candidates []string) core.MatchResult {
	text = strings.ToLower(strings.TrimSpace(text))
	tokens := strings.Fields(text)

	best := core.MatchResult{}
	for i, cand := range candidates {
		score := m.score(text, tokens, strings.ToLower(cand))
		if i == 0 || score > best.Score {
			best = core.MatchResult{Coin: cand, Score: score}
		}
	}
	return best
}

func (m *Matcher) score(text string, tokens []string, cand string) int {
	if cand == "" || text == "" {
		return 0
	}
	if strings.Contains(text, cand) {
		return 100
	}

	bestSim := strutil.Similarity(text, cand, m.metric)
	for _, tok := range tokens {
		if sim := strutil.Similarity(tok, cand, m.metric); sim > bestSim {
			bestSim = sim
		}
	}
	return int(math.Round(bestSim * 100))
}
