package journal

import (
	"context"
	"path/filepath"
	"strings"
)

// Store persists the whole journal at once.
// Load of a missing file returns an error wrapping fs.ErrNotExist.
type Store interface {
	Save(ctx context.Context, entries []Entry) error
	Load(ctx context.Context) ([]Entry, error)
}

// StoreFor picks the store by extension: .db and .sqlite select SQLite,
// everything else is JSON.
func StoreFor(path string) Store {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteStore(path)
	default:
		return NewJSONFileStore(path)
	}
}
