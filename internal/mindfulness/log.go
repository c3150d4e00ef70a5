package mindfulness

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
)

// Log counts completed runs per activity name. Names keep their first-seen
// order so saves are stable.
type Log struct {
	counts map[string]int
	order  []string
}

// NewLog returns an empty log.
func NewLog() *Log {
	return &Log{counts: make(map[string]int)}
}

// Increment adds one run of name.
func (l *Log) Increment(name string) {
	l.set(name, l.counts[name]+1)
}

func (l *Log) set(name string, n int) {
	if _, ok := l.counts[name]; !ok {
		l.order = append(l.order, name)
	}
	l.counts[name] = n
}

// Count returns the runs recorded for name.
func (l *Log) Count(name string) int { return l.counts[name] }

// Names returns the activity names in first-seen order.
func (l *Log) Names() []string { return l.order }

// ReadLog parses "name:count" lines, skipping any that do not parse.
func ReadLog(r io.Reader) (*Log, error) {
	l := NewLog()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		parts := strings.Split(strings.TrimSpace(sc.Text()), ":")
		if len(parts) != 2 {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		l.set(parts[0], n)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}
	return l, nil
}

// LoadLog reads path; a missing file is an empty log.
func LoadLog(path string) (*Log, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Mindfulness("No activity log at %s, starting empty", path)
		return NewLog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open activity log: %w", err)
	}
	defer f.Close()
	return ReadLog(f)
}

// WriteTo writes one "name:count" line per activity.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, name := range l.order {
		n, err := fmt.Fprintf(w, "%s:%d\n", name, l.counts[name])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Save overwrites path with the log.
func (l *Log) Save(path string) error {
	var b strings.Builder
	if _, err := l.WriteTo(&b); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("save activity log: %w", err)
	}
	logging.Mindfulness("Saved activity log to %s", path)
	return nil
}
