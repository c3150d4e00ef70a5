package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"coursework/internal/logging"
)

// JSONFileStore writes the journal as an indented JSON array.
type JSONFileStore struct {
	path string
}

// NewJSONFileStore returns a store backed by path.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

// Path returns the backing file.
func (s *JSONFileStore) Path() string { return s.path }

// Save overwrites the file with entries.
func (s *JSONFileStore) Save(ctx context.Context, entries []Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal journal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write journal: %w", err)
	}
	logging.Store("Saved %d journal entries to %s", len(entries), s.path)
	return nil
}

// Load reads every entry from the file.
func (s *JSONFileStore) Load(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse journal %s: %w", s.path, err)
	}
	logging.Store("Loaded %d journal entries from %s", len(entries), s.path)
	return entries, nil
}
