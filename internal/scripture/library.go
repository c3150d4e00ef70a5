package scripture

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"coursework/internal/logging"
	"coursework/internal/rng"
)

// ErrEmptyLibrary is returned when no scripture could be loaded.
var ErrEmptyLibrary = errors.New("no scripture could be loaded")

// Diagnostic describes a library line that was skipped.
type Diagnostic struct {
	Line int // 1-based; 0 for file-level problems
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("Skipping library: %v", d.Err)
	}
	return fmt.Sprintf("Skipping line %d %q: %v", d.Line, d.Text, d.Err)
}

// Library is the read-only collection of scriptures loaded at startup.
type Library struct {
	scriptures []*Scripture
}

// NewLibrary wraps already-built scriptures.
func NewLibrary(scriptures ...*Scripture) *Library {
	return &Library{scriptures: scriptures}
}

// Len returns the number of scriptures.
func (l *Library) Len() int { return len(l.scriptures) }

// All returns the scriptures in file order.
func (l *Library) All() []*Scripture { return l.scriptures }

// Random picks a scripture uniformly; ok is false for an empty library.
func (l *Library) Random(src rng.Source) (*Scripture, bool) {
	return rng.Pick(src, l.scriptures)
}

// LoadLibrary parses one entry per non-blank line, either
//
//	Reference|Text
//	Book|Chapter|Verse(-Verse)|Text
//
// Malformed lines are skipped and reported as diagnostics.
func LoadLibrary(r io.Reader) (*Library, []Diagnostic, error) {
	lib := &Library{}
	var diags []Diagnostic

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		s, err := parseLine(line)
		if err != nil {
			d := Diagnostic{Line: lineNo, Text: line, Err: err}
			logging.ScriptureDebug("%s", d)
			diags = append(diags, d)
			continue
		}
		lib.scriptures = append(lib.scriptures, s)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read library: %w", err)
	}

	logging.Scripture("Loaded %d scriptures, skipped %d lines", lib.Len(), len(diags))
	return lib, diags, nil
}

// LoadLibraryFile loads path. A missing file is reported as a diagnostic and
// yields an empty library.
func LoadLibraryFile(path string) (*Library, []Diagnostic, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Library{}, []Diagnostic{{Err: fmt.Errorf("file not found: %s", path)}}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("open library: %w", err)
	}
	defer f.Close()
	return LoadLibrary(f)
}

func parseLine(line string) (*Scripture, error) {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var (
		ref  Reference
		text string
		err  error
	)
	switch len(parts) {
	case 2:
		ref, err = ParseReference(parts[0])
		text = parts[1]
	case 4:
		ref, err = parseColumns(parts[0], parts[1], parts[2])
		text = parts[3]
	default:
		return nil, fmt.Errorf("expected Reference|Text or Book|Chapter|Verse|Text, got %d columns", len(parts))
	}
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errors.New("missing verse text")
	}
	return New(ref, text), nil
}

func parseColumns(book, chapter, verses string) (Reference, error) {
	orig := book + " " + chapter + ":" + verses
	ch, err := strconv.Atoi(chapter)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: chapter %q in %q is not a number", ErrInvalidReference, chapter, orig)
	}
	if ch < 1 {
		return Reference{}, fmt.Errorf("%w: chapter in %q must be positive", ErrInvalidReference, orig)
	}
	return parseVerses(book, ch, verses, orig)
}
