package respond

import (
	"context"

	"github.com/sandevgo/coinbot/internal/core"
)

var fallbackReplies = []string{
	"I'm your crypto companion! Ask me about Bitcoin, Ethereum, or any other coins!",
	"WAGMI! (We're All Gonna Make It) What crypto are you curious about?",
	"Not sure what you mean, but I'm here for all your crypto questions! 🚀",
	"Try asking: 'What about Bitcoin?' or 'Should I buy Ethereum?'",
}

// Fallback terminates the chain: it handles everything and never fails or
// mutates the session.
type Fallback struct {
	pick pickFunc
}

func NewFallback() *Fallback {
	return &Fallback{pick: defaultPick}
}

func (f *Fallback) Name() string { return "default" }

func (f *Fallback) CanHandle(ctx context.Context, input string, sctx *core.SessionContext) bool {
	return true
}

func (f *Fallback) Respond(ctx context.Context, input string, sctx *core.SessionContext) (core.Response, error) {
	return core.Response{
		Text: fallbackReplies[f.pick(len(fallbackReplies))],
		Type: core.TypeDefault,
	}, nil
}
