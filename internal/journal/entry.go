// Package journal implements the prompted journal: entries, the JSON and
// SQLite stores, plain and markdown display, and the interactive menu.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the entry date format.
const DateLayout = "2006-01-02"

// Entry is one journal entry. Field names double as the JSON keys so files
// written by earlier versions load unchanged.
type Entry struct {
	ID       string `json:"ID,omitempty"`
	Date     string `json:"Date"`
	Title    string `json:"Title"`
	Mood     string `json:"Mood"`
	Prompt   string `json:"Prompt"`
	Response string `json:"Response"`
}

// NewEntry stamps a new entry with a fresh id and the date of now.
func NewEntry(now time.Time, prompt, response, title, mood string) Entry {
	return Entry{
		ID:       uuid.NewString(),
		Date:     now.Format(DateLayout),
		Title:    title,
		Mood:     mood,
		Prompt:   prompt,
		Response: response,
	}
}

// Journal is the in-memory, append-only list of entries.
type Journal struct {
	entries []Entry
}

// Add appends an entry.
func (j *Journal) Add(e Entry) {
	j.entries = append(j.entries, e)
}

// Entries returns the entries in insertion order.
func (j *Journal) Entries() []Entry { return j.entries }

// Len returns the number of entries.
func (j *Journal) Len() int { return len(j.entries) }

// Replace swaps the whole list, as a load does.
func (j *Journal) Replace(entries []Entry) {
	j.entries = append([]Entry(nil), entries...)
}
