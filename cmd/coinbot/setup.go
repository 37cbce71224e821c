package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/sandevgo/coinbot/internal/cache"
	"github.com/sandevgo/coinbot/internal/catalog"
	"github.com/sandevgo/coinbot/internal/config"
	"github.com/sandevgo/coinbot/internal/core"
	"github.com/sandevgo/coinbot/internal/service/bot"
	"github.com/sandevgo/coinbot/internal/session"
	"github.com/sandevgo/coinbot/internal/transport/httpapi"
	"github.com/sandevgo/coinbot/pkg/log"
	"github.com/sandevgo/coinbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Catalog + cache layer
	cat := catalog.NewSeeded()

	backend, cleanup, err := initCacheBackend(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize cache backend")
	}
	if cleanup != nil {
		services = append(services, srv.NewCleanup(cleanup))
	}
	cached := cache.NewCachedCatalog(cat, backend, time.Duration(appCfg.CacheTTLSeconds)*time.Second)

	// 3. Session store
	sessions, cleanup, err := initSessionStore(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize session store")
	}
	if cleanup != nil {
		services = append(services, srv.NewCleanup(cleanup))
	}

	// 4. Orchestrator
	b := bot.New(cat, cached, sessions, bot.NewResponders(cached))

	// 5. Transport
	services = append(services, httpapi.NewServer(ctx, appCfg.HTTPAddr, b))

	return services
}

func initCacheBackend(ctx context.Context, cfg *config.AppConfig) (core.CacheBackend, func() error, error) {
	switch cfg.CacheBackend {
	case "redis":
		redisCfg := config.NewRedisConfig(ctx)
		backend, err := cache.NewRedis(ctx, redisCfg.URL)
		if err != nil {
			return nil, nil, err
		}
		return backend, backend.Close, nil
	case "memory":
		return cache.NewMemory(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}

func initSessionStore(ctx context.Context, cfg *config.AppConfig) (core.SessionStore, func() error, error) {
	switch cfg.SessionBackend {
	case "sqlite":
		db, err := session.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return session.NewSQLiteStore(db), db.Close, nil
	case "memory":
		return session.NewMemoryStore(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
