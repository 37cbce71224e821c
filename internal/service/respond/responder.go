package respond

import (
	"context"
	"math/rand/v2"

	"github.com/sandevgo/coinbot/internal/core"
)

// ConfidenceThreshold is the minimum fuzzy score treated as a confident coin
// resolution. The threshold belongs to the responders, not the matcher.
const ConfidenceThreshold = 70

// Responder is one link in the intent dispatch chain. CanHandle is a pure
// predicate; Respond may mutate the session context and reports internal
// failures through its error, which the orchestrator contains.
type Responder interface {
	Name() string
	CanHandle(ctx context.Context, input string, sctx *core.SessionContext) bool
	Respond(ctx context.Context, input string, sctx *core.SessionContext) (core.Response, error)
}

// pickFunc selects a pseudo-random index in [0,n). Injected so tests can pin
// reply selection.
type pickFunc func(n int) int

func defaultPick(n int) int {
	return rand.IntN(n)
}
