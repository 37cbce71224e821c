package session

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/sandevgo/coinbot/internal/core"
	"github.com/sandevgo/coinbot/pkg/log"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// NewDB opens (creating if needed) the sqlite database and applies pending
// migrations.
func NewDB(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log.NewGooseLoggerFromCtx(ctx))

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// SQLiteStore persists session contexts across restarts. There is no expiry:
// last_activity is recorded for an external reaper to act on.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) GetOrCreate(ctx context.Context, sessionID string) (*core.SessionContext, error) {
	query := `SELECT favorite_coins, history, risk_tolerance, last_activity FROM sessions WHERE session_id = ?`

	var favoritesJSON, historyJSON, risk string
	var lastActivity time.Time
	err := s.db.QueryRowContext(ctx, query, sessionID).Scan(&favoritesJSON, &historyJSON, &risk, &lastActivity)
	if errors.Is(err, sql.ErrNoRows) {
		// Created lazily; the row appears on first Save.
		return core.NewSessionContext(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %q: %w", sessionID, err)
	}

	sctx := &core.SessionContext{
		SessionID:     sessionID,
		RiskTolerance: risk,
		LastActivity:  lastActivity,
	}
	if err := json.Unmarshal([]byte(favoritesJSON), &sctx.FavoriteCoins); err != nil {
		return nil, fmt.Errorf("failed to decode favorites for %q: %w", sessionID, err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &sctx.History); err != nil {
		return nil, fmt.Errorf("failed to decode history for %q: %w", sessionID, err)
	}
	return sctx, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sctx *core.SessionContext) error {
	favoritesJSON, err := json.Marshal(sctx.FavoriteCoins)
	if err != nil {
		return fmt.Errorf("failed to marshal favorites: %w", err)
	}
	historyJSON, err := json.Marshal(sctx.History)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	query := `INSERT INTO sessions (session_id, favorite_coins, history, risk_tolerance, last_activity)
	          VALUES (?, ?, ?, ?, ?)
	          ON CONFLICT(session_id) DO UPDATE SET
	              favorite_coins = excluded.favorite_coins,
	              history        = excluded.history,
	              risk_tolerance = excluded.risk_tolerance,
	              last_activity  = excluded.last_activity`

	if _, err := s.db.ExecContext(ctx, query,
		sctx.SessionID, string(favoritesJSON), string(historyJSON), sctx.RiskTolerance, sctx.LastActivity,
	); err != nil {
		return fmt.Errorf("failed to save session %q: %w", sctx.SessionID, err)
	}
	return nil
}
