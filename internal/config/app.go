package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/coinbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"COINBOT_RUNTIME_PATH" envDefault:".coinbot"`

	// HTTP boundary
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	// Backend selection
	CacheBackend   string `env:"CACHE_BACKEND" envDefault:"memory"`   // memory | redis
	SessionBackend string `env:"SESSION_BACKEND" envDefault:"memory"` // memory | sqlite

	// Cache entry time-to-live in seconds
	CacheTTLSeconds int `env:"CACHE_TTL_SECONDS" envDefault:"3600"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "coinbot.db")
}
