// Package scripture implements the scripture memorization drill: references,
// the progressive word-hiding game and the pipe-delimited library file.
package scripture

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidReference is wrapped by every reference parse failure.
var ErrInvalidReference = errors.New("invalid reference")

// Reference is a scripture citation. It is immutable once built.
type Reference struct {
	book     string
	chapter  int
	verse    int
	endVerse int // 0 when the reference is a single verse
}

// NewReference returns a single-verse reference.
func NewReference(book string, chapter, verse int) (Reference, error) {
	return newReference(book, chapter, verse, 0)
}

// NewRangeReference returns a verse-range reference; end must be >= start.
func NewRangeReference(book string, chapter, start, end int) (Reference, error) {
	if end < start {
		return Reference{}, fmt.Errorf("%w: end verse %d before start verse %d", ErrInvalidReference, end, start)
	}
	return newReference(book, chapter, start, end)
}

func newReference(book string, chapter, verse, end int) (Reference, error) {
	book = strings.TrimSpace(book)
	if book == "" {
		return Reference{}, fmt.Errorf("%w: missing book", ErrInvalidReference)
	}
	if chapter < 1 {
		return Reference{}, fmt.Errorf("%w: chapter must be positive, got %d", ErrInvalidReference, chapter)
	}
	if verse < 1 {
		return Reference{}, fmt.Errorf("%w: verse must be positive, got %d", ErrInvalidReference, verse)
	}
	return Reference{book: book, chapter: chapter, verse: verse, endVerse: end}, nil
}

// Book returns the book name, which may contain spaces ("2 Timothy").
func (r Reference) Book() string { return r.book }

// Chapter returns the chapter number.
func (r Reference) Chapter() int { return r.chapter }

// Verse returns the first verse.
func (r Reference) Verse() int { return r.verse }

// EndVerse returns the last verse of a range; ok is false for a single verse.
func (r Reference) EndVerse() (end int, ok bool) {
	return r.endVerse, r.endVerse != 0
}

// String renders "Book Chapter:Verse" or "Book Chapter:Start-End".
func (r Reference) String() string {
	if r.endVerse != 0 {
		return fmt.Sprintf("%s %d:%d-%d", r.book, r.chapter, r.verse, r.endVerse)
	}
	return fmt.Sprintf("%s %d:%d", r.book, r.chapter, r.verse)
}

// ParseReference parses "John 3:16", "Proverbs 3:5-6" or "2 Timothy 1:7".
// Everything before the last space is the book.
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, " ")
	if idx == -1 {
		return Reference{}, fmt.Errorf("%w: %q has no chapter and verse", ErrInvalidReference, s)
	}
	return parseParts(s[:idx], s[idx+1:], s)
}

// parseParts parses book plus "chapter:verse[-end]"; orig is used in messages.
func parseParts(book, chapterVerse, orig string) (Reference, error) {
	chapterStr, verses, found := strings.Cut(chapterVerse, ":")
	if !found {
		return Reference{}, fmt.Errorf("%w: %q is not chapter:verse", ErrInvalidReference, orig)
	}
	chapter, err := parsePositive(chapterStr, "chapter", orig)
	if err != nil {
		return Reference{}, err
	}
	return parseVerses(book, chapter, verses, orig)
}

func parseVerses(book string, chapter int, verses, orig string) (Reference, error) {
	startStr, endStr, isRange := strings.Cut(verses, "-")
	start, err := parsePositive(startStr, "verse", orig)
	if err != nil {
		return Reference{}, err
	}
	if !isRange {
		return NewReference(book, chapter, start)
	}
	end, err := parsePositive(endStr, "end verse", orig)
	if err != nil {
		return Reference{}, err
	}
	return NewRangeReference(book, chapter, start, end)
}

func parsePositive(s, what, orig string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q in %q is not a number", ErrInvalidReference, what, s, orig)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s in %q must be positive", ErrInvalidReference, what, orig)
	}
	return n, nil
}
