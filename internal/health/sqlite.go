package health

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"codeberg.org/veland/wearsyncd/internal/errors"
	"codeberg.org/veland/wearsyncd/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteProvider reads the sample database maintained by the platform's
// health bridge. The bridge owns all writes; this side only reads.
type sqliteProvider struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteProvider opens the bridge sample database at path
func NewSQLiteProvider(path string) (Provider, error) {
	errFactory := errors.New()

	if path == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Opening health sample store at: %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errFactory.Wrap(ErrStoreInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStoreInit, err)
	}

	return &sqliteProvider{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS samples (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            metric TEXT NOT NULL,
            stage TEXT,
            start_ts INTEGER NOT NULL,
            end_ts INTEGER NOT NULL,
            value REAL NOT NULL
        );
        CREATE INDEX IF NOT EXISTS idx_samples_metric_start ON samples (metric, start_ts);
        CREATE TABLE IF NOT EXISTS scopes (
            scope TEXT PRIMARY KEY,
            granted INTEGER NOT NULL DEFAULT 0
        )
    `)

	return err
}

func (p *sqliteProvider) Supported() bool {
	return true
}

// RequestAuthorization checks the bridge's grant table for every scope the
// engine needs. The whole set must be granted; a single missing or revoked
// scope denies the request.
func (p *sqliteProvider) RequestAuthorization(ctx context.Context) (bool, error) {
	errFactory := errors.New()

	p.mu.Lock()
	defer p.mu.Unlock()

	granted := 0
	for _, scope := range Scopes {
		var g int
		err := p.db.QueryRowContext(ctx,
			`SELECT granted FROM scopes WHERE scope = ?`, string(scope)).Scan(&g)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return false, errFactory.Wrap(ErrScopeQuery, err)
		}
		if g != 0 {
			granted++
		}
	}

	return granted == len(Scopes), nil
}

func (p *sqliteProvider) Samples(ctx context.Context, metric MetricType, start, end time.Time) ([]Sample, error) {
	errFactory := errors.New()

	p.mu.Lock()
	defer p.mu.Unlock()

	rows, err := p.db.QueryContext(ctx, `
        SELECT stage, start_ts, end_ts, value
        FROM samples
        WHERE metric = ? AND start_ts >= ? AND start_ts < ?
        ORDER BY start_ts
    `, string(metric), start.Unix(), end.Unix())
	if err != nil {
		return nil, errFactory.Wrap(ErrStoreAccess, err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		var (
			stage   sql.NullString
			startTS int64
			endTS   int64
			value   float64
		)
		if err := rows.Scan(&stage, &startTS, &endTS, &value); err != nil {
			return nil, errFactory.Wrap(ErrStoreAccess, err)
		}

		s := Sample{
			Metric: metric,
			Start:  time.Unix(startTS, 0),
			End:    time.Unix(endTS, 0),
			Value:  value,
		}
		if stage.Valid {
			s.Stage = SleepStage(stage.String)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrStoreAccess, err)
	}

	return samples, nil
}

func (p *sqliteProvider) Close() error {
	errFactory := errors.New()

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.db.Close(); err != nil {
		return errFactory.Wrap(ErrStoreClose, err)
	}

	return nil
}
