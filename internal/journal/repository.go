package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/veland/wearsyncd/internal/errors"
	"codeberg.org/veland/wearsyncd/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type Repository interface {
	Store(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Initializing journal repository at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS sync_attempts (
            id TEXT PRIMARY KEY,
            started_at INTEGER NOT NULL,
            window_days INTEGER NOT NULL,
            days_synced INTEGER NOT NULL,
            outcome TEXT NOT NULL,
            error_code TEXT
        )
    `)

	return err
}

func (r *sqliteRepository) Store(ctx context.Context, entry *Entry) error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO sync_attempts (
            id, started_at, window_days, days_synced, outcome, error_code
        ) VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            days_synced = excluded.days_synced,
            outcome = excluded.outcome,
            error_code = excluded.error_code
    `,
		entry.ID,
		entry.StartedAt.Unix(),
		entry.WindowDays,
		entry.DaysSynced,
		entry.Outcome,
		entry.ErrorCode,
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.QueryContext(ctx, `
        SELECT id, started_at, window_days, days_synced, outcome, COALESCE(error_code, '')
        FROM sync_attempts
        ORDER BY started_at DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			startedAt int64
		)
		if err := rows.Scan(&entry.ID, &startedAt, &entry.WindowDays,
			&entry.DaysSynced, &entry.Outcome, &entry.ErrorCode); err != nil {
			return nil, errFactory.Wrap(ErrStorageAccess, err)
		}
		entry.StartedAt = time.Unix(startedAt, 0)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	return entries, nil
}

func (r *sqliteRepository) Close() error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}

	return nil
}
