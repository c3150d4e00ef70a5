package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"coursework/internal/logging"
)

const schema = `CREATE TABLE IF NOT EXISTS entries (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	title TEXT NOT NULL,
	mood TEXT NOT NULL,
	prompt TEXT NOT NULL,
	response TEXT NOT NULL
)`

// SQLiteStore keeps the journal in a single entries table. The database is
// opened for each Save or Load and closed afterwards.
type SQLiteStore struct {
	path string
}

// NewSQLiteStore returns a store backed by the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: filepath.Clean(path)}
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create entries table: %w", err)
	}
	logging.StoreDebug("Opened journal database %s", s.path)
	return db, nil
}

// Save replaces every row inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, entries []Entry) (err error) {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, date, title, mood, prompt, response) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err = stmt.ExecContext(ctx, e.ID, e.Date, e.Title, e.Mood, e.Prompt, e.Response); err != nil {
			return fmt.Errorf("insert entry %q: %w", e.Title, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit journal: %w", err)
	}
	logging.Store("Saved %d journal entries to %s", len(entries), s.path)
	return nil
}

// Load returns the rows in insertion order. A missing database file is
// reported instead of being created.
func (s *SQLiteStore) Load(ctx context.Context) ([]Entry, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT id, date, title, mood, prompt, response FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Date, &e.Title, &e.Mood, &e.Prompt, &e.Response); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	logging.Store("Loaded %d journal entries from %s", len(entries), s.path)
	return entries, nil
}
