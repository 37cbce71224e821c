package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var coins = []string{"bitcoin", "ethereum", "dogecoin", "solana", "cardano", "chainlink"}

func TestMatcher_SubstringIsPerfectScore(t *testing.T) {
	m := New()

	res := m.BestMatch("should i buy ethereum", coins)
	assert.Equal(t, "ethereum", res.Coin)
	assert.Equal(t, 100, res.Score)
}

func TestMatcher_ToleratesTypos(t *testing.T) {
	m := New()

	res := m.BestMatch("price prediction bitcon", coins)
	assert.Equal(t, "bitcoin", res.Coin)
	assert.GreaterOrEqual(t, res.Score, 70)
}

func TestMatcher_NormalizesCaseAndSpace(t *testing.T) {
	m := New()

	res := m.BestMatch("  Tell me about DOGECOIN  ", coins)
	assert.Equal(t, "dogecoin", res.Coin)
	assert.Equal(t, 100, res.Score)
}

func TestMatcher_NonsenseScoresLow(t *testing.T) {
	m := New()

	for _, input := range []string{"asdkjasd nonsense", "qwxz vvvv", "what is the weather"} {
		res := m.BestMatch(input, coins)
		assert.Less(t, res.Score, 70, "input %q matched %q with %d", input, res.Coin, res.Score)
	}
}

func TestMatcher_TieBreakKeepsFirstCandidate(t *testing.T) {
	m := New()

	// both candidates are substrings, the earlier one must win
	res := m.BestMatch("bitcoin or ethereum", []string{"bitcoin", "ethereum"})
	assert.Equal(t, "bitcoin", res.Coin)

	res = m.BestMatch("bitcoin or ethereum", []string{"ethereum", "bitcoin"})
	assert.Equal(t, "ethereum", res.Coin)
}

func TestMatcher_EmptyInputs(t *testing.T) {
	m := New()

	res := m.BestMatch("", coins)
	assert.Less(t, res.Score, 70)

	res = m.BestMatch("bitcoin", nil)
	assert.Equal(t, "", res.Coin)
	assert.Equal(t, 0, res.Score)
}
