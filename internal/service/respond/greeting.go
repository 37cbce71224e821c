package respond

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sandevgo/coinbot/internal/core"
)

type greetingGroup struct {
	pattern *regexp.Regexp
	replies []string
}

// Greeting answers hello/how-are-you/good-morning style openers, optionally
// personalized with one of the session's favorite coins.
type Greeting struct {
	groups []greetingGroup
	pick   pickFunc
}

func NewGreeting() *Greeting {
	return &Greeting{
		pick: defaultPick,
		groups: []greetingGroup{
			{
				pattern: regexp.MustCompile(`hello|hi|hey|yo|sup`),
				replies: []string{
					"GM! Ready to talk some crypto?",
					"Hey there! What's cooking in the markets today?",
					"Yo! How's your portfolio looking?",
					"Hi! Let's chase those green candles 🌱",
					"Sup legend! You here for alpha or vibes?",
				},
			},
			{
				pattern: regexp.MustCompile(`how are you|what's up|how's it going|you good|how you doing`),
				replies: []string{
					"Living that crypto life! Charts up, vibes up! 📈",
					"Just hodling and staying strong! How about you?",
					"Running on hopium and coffee! ☕️",
					"Stacking sats and dodging rug pulls 😎",
					"Watching the market like a hawk 👀",
				},
			},
			{
				pattern: regexp.MustCompile(`good morning|gm|morning`),
				replies: []string{
					"GM! Time to check those green candles! 🕯️",
					"Good morning! Ready to make some alpha today?",
					"GM fren! Let's get this crypto!",
					"Rise and shine, it's blockchain time!",
					"Another day, another dollar-cost average 😤",
				},
			},
		},
	}
}

func (g *Greeting) Name() string { return "greeting" }

func (g *Greeting) CanHandle(ctx context.Context, input string, sctx *core.SessionContext) bool {
	lower := strings.ToLower(input)
	for _, group := range g.groups {
		if group.pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func (g *Greeting) Respond(ctx context.Context, input string, sctx *core.SessionContext) (core.Response, error) {
	lower := strings.ToLower(input)

	for _, group := range g.groups {
		if !group.pattern.MatchString(lower) {
			continue
		}
		reply := group.replies[g.pick(len(group.replies))]

		if len(sctx.FavoriteCoins) > 0 {
			coin := sctx.FavoriteCoins[g.pick(len(sctx.FavoriteCoins))]
			reply += fmt.Sprintf(" How's %s treating you?", strings.ToUpper(coin))
		}

		return core.Response{Text: reply, Type: core.TypeGreeting}, nil
	}

	// CanHandle said yes, so a group should have matched; keep a friendly
	// floor anyway.
	return core.Response{Text: "Hey there! What's on your crypto mind?", Type: core.TypeGreeting}, nil
}
