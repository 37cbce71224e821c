package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandevgo/coinbot/internal/service/bot"
	"github.com/sandevgo/coinbot/pkg/log"
)

// Server exposes the chat, coin-advice and coin-upsert endpoints. It is the
// thin boundary in front of the bot; all conversational logic stays behind
// bot.Process.
type Server struct {
	server *http.Server
	bot    *bot.Bot
	logger zerolog.Logger
}

func NewServer(ctx context.Context, addr string, b *bot.Bot) *Server {
	s := &Server{
		bot:    b,
		logger: *log.FromCtx(ctx),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/coins/{id}", s.handleCoinAdvice)
	mux.HandleFunc("POST /api/coins", s.handleAddCoin)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withLogger(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// withLogger rebinds the service logger onto every request context so
// downstream log.FromCtx calls work.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(s.logger.WithContext(r.Context())))
	})
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.server.Addr).Msg("starting http api")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
