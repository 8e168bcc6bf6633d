package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id      TEXT PRIMARY KEY,
	mode            TEXT NOT NULL,
	route           TEXT NOT NULL DEFAULT '',
	affinity        INTEGER NOT NULL DEFAULT 0,
	ending_kind     TEXT NOT NULL,
	ending_text     TEXT NOT NULL,
	transcript_json TEXT NOT NULL,
	created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS decision_log (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	step        TEXT NOT NULL,
	decision    TEXT NOT NULL,
	reason      TEXT,
	created_at  TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_decision_session ON decision_log(session_id);
`

// #endregion schema

// TimeLayout formats every created_at column. It is fixed width so
// timestamps sort lexically.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// #region store-struct
// Store archives finished sessions in SQLite.
type Store struct {
	db *sqlx.DB
}

// #endregion store-struct

// #region constructor
// Open opens (or creates) the archive at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db.DB
}

// #endregion constructor

// #region save
// SaveSession inserts one finished session.
func (s *Store) SaveSession(ctx context.Context, rec SessionRecord) error {
	return saveSession(ctx, s.db, rec)
}

func saveSession(ctx context.Context, ex sqlx.ExecerContext, rec SessionRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := ex.ExecContext(ctx,
		`INSERT INTO sessions (session_id, mode, route, affinity, ending_kind, ending_text, transcript_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.Mode, rec.Route, rec.Affinity, rec.EndingKind, rec.EndingText,
		rec.TranscriptJSON, rec.CreatedAt.UTC().Format(TimeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert session %s: %w", rec.SessionID, err)
	}
	return nil
}

// #endregion save

// #region tx
// Tx is one archive transaction.
type Tx struct {
	tx *sqlx.Tx
}

// SaveSession inserts one finished session inside the transaction.
func (t *Tx) SaveSession(ctx context.Context, rec SessionRecord) error {
	return saveSession(ctx, t.tx, rec)
}

// Execer lets writers for other archive tables, like the decision log, join
// the transaction.
func (t *Tx) Execer() sqlx.ExecerContext {
	return t.tx
}

// InTx runs fn in one transaction. It commits when fn returns nil and rolls
// back otherwise.
func (s *Store) InTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(&Tx{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// #endregion tx

// #region read
// sessionRow adds the raw timestamp column to SessionRecord for scanning.
type sessionRow struct {
	SessionRecord
	CreatedAtRaw string `db:"created_at"`
}

func (r sessionRow) record() SessionRecord {
	rec := r.SessionRecord
	rec.CreatedAt, _ = time.Parse(TimeLayout, r.CreatedAtRaw)
	return rec
}

const selectSession = `SELECT session_id, mode, route, affinity, ending_kind, ending_text, transcript_json, created_at FROM sessions`

// GetSession retrieves one session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (SessionRecord, error) {
	var row sessionRow
	if err := s.db.GetContext(ctx, &row, selectSession+` WHERE session_id = ?`, id); err != nil {
		return SessionRecord{}, fmt.Errorf("get session %s: %w", id, err)
	}
	return row.record(), nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	var rows []sessionRow
	if err := s.db.SelectContext(ctx, &rows, selectSession+` ORDER BY created_at DESC LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]SessionRecord, len(rows))
	for i, r := range rows {
		out[i] = r.record()
	}
	return out, nil
}

// CountByKind returns how many sessions ended in each kind, most frequent first.
func (s *Store) CountByKind(ctx context.Context) ([]KindCount, error) {
	var counts []KindCount
	err := s.db.SelectContext(ctx, &counts,
		`SELECT ending_kind, COUNT(*) AS n FROM sessions GROUP BY ending_kind ORDER BY n DESC, ending_kind`)
	if err != nil {
		return nil, fmt.Errorf("count endings: %w", err)
	}
	return counts, nil
}

// #endregion read
