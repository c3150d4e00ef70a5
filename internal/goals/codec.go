package goals

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"coursework/internal/logging"
)

// Diagnostic reports a skipped save file line.
type Diagnostic struct {
	Line int
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("Skipping line %d %q: %v", d.Line, d.Text, d.Err)
}

// Encode writes score, level and one line per goal.
func (m *Manager) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, m.score)
	fmt.Fprintln(bw, m.level)
	for _, g := range m.goals {
		fmt.Fprintln(bw, g.Encode())
	}
	return bw.Flush()
}

// Decode replaces the manager state with the contents of r. A bad score or
// level line fails the whole load and leaves the manager untouched; bad goal
// lines are skipped.
func (m *Manager) Decode(r io.Reader) ([]Diagnostic, error) {
	sc := bufio.NewScanner(r)

	score, err := readHeader(sc, "score")
	if err != nil {
		return nil, err
	}
	level, err := readHeader(sc, "level")
	if err != nil {
		return nil, err
	}
	if level < 1 {
		return nil, fmt.Errorf("decode goals: level must be at least 1, got %d", level)
	}

	var (
		goals []Goal
		diags []Diagnostic
	)
	for lineNo := 3; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		g, err := DecodeGoal(line)
		if err != nil {
			diags = append(diags, Diagnostic{Line: lineNo, Text: line, Err: err})
			continue
		}
		goals = append(goals, g)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("decode goals: %w", err)
	}

	m.Replace(score, level, goals)
	logging.Goals("Loaded %d goals (score=%d level=%d), skipped %d lines", len(goals), score, level, len(diags))
	return diags, nil
}

func readHeader(sc *bufio.Scanner, what string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("decode goals: %w", err)
		}
		return 0, fmt.Errorf("decode goals: missing %s line", what)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, fmt.Errorf("decode goals: %s %q is not a number", what, sc.Text())
	}
	return n, nil
}

// DecodeGoal parses one goal line written by Goal.Encode.
func DecodeGoal(line string) (Goal, error) {
	kind, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, errors.New("missing goal kind")
	}
	data := strings.Split(rest, ",")

	want := map[Kind]int{KindSimple: 4, KindEternal: 3, KindChecklist: 6}[Kind(kind)]
	if want == 0 {
		return nil, fmt.Errorf("unknown goal kind %q", kind)
	}
	if len(data) != want {
		return nil, fmt.Errorf("%s needs %d fields, got %d", kind, want, len(data))
	}

	spec := Spec{Kind: Kind(kind), Name: data[0], Description: data[1]}
	ints := make([]int, 0, 3)
	for _, field := range numericFields(spec.Kind, data) {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("field %q is not a number", field)
		}
		ints = append(ints, n)
	}
	spec.Points = ints[0]
	if spec.Kind == KindChecklist {
		spec.Target, spec.Bonus = ints[1], ints[2]
	}

	g, err := New(spec)
	if err != nil {
		return nil, err
	}

	switch g := g.(type) {
	case *Simple:
		done, err := strconv.ParseBool(strings.TrimSpace(data[3]))
		if err != nil {
			return nil, fmt.Errorf("completion flag %q is not a boolean", data[3])
		}
		g.complete = done
	case *Checklist:
		amount, err := strconv.Atoi(strings.TrimSpace(data[5]))
		if err != nil || amount < 0 {
			return nil, fmt.Errorf("amount completed %q is not a count", data[5])
		}
		g.amount = amount
	}
	return g, nil
}

// numericFields returns points, then target and bonus for checklists.
func numericFields(kind Kind, data []string) []string {
	if kind == KindChecklist {
		return data[2:5]
	}
	return data[2:3]
}

// SaveFile writes the manager to path.
func (m *Manager) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("save goals: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	logging.Goals("Saved %d goals to %s", len(m.goals), path)
	return nil
}

// LoadFile reads path. A missing file returns an error wrapping
// fs.ErrNotExist.
func (m *Manager) LoadFile(path string) ([]Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}
	defer f.Close()
	return m.Decode(f)
}
