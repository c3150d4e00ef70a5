// Package console provides the line-oriented prompt loop shared by every exercise.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coursework/internal/logging"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// clearSequence homes the cursor and clears the screen.
const clearSequence = "\033[H\033[2J"

// Prompter reads answers line by line and writes prompts and results.
type Prompter struct {
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
	clear  bool
}

// Option customizes a Prompter.
type Option func(*Prompter)

// WithTheme selects the color theme.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) { p.styles = NewStyles(p.out, theme) }
}

// WithClearScreen enables Clear; leave it off when output is not a terminal.
func WithClearScreen(enabled bool) Option {
	return func(p *Prompter) { p.clear = enabled }
}

// New returns a Prompter over in and out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
	p.styles = NewStyles(out, DarkTheme())
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Out returns the output writer.
func (p *Prompter) Out() io.Writer { return p.out }

// Styles returns the styles bound to the output writer.
func (p *Prompter) Styles() Styles { return p.styles }

// Printf writes formatted text.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line.
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Title writes a highlighted heading line.
func (p *Prompter) Title(s string) {
	fmt.Fprintln(p.out, render(p.styles.Title, s))
}

// Success writes a success line.
func (p *Prompter) Success(s string) {
	fmt.Fprintln(p.out, render(p.styles.Success, s))
}

// Warn writes a warning line.
func (p *Prompter) Warn(s string) {
	fmt.Fprintln(p.out, render(p.styles.Warning, s))
}

// Divider writes a rule of n copies of ch.
func (p *Prompter) Divider(ch string, n int) {
	fmt.Fprintln(p.out, render(p.styles.Divider, strings.Repeat(ch, n)))
}

// Clear clears the screen when enabled.
func (p *Prompter) Clear() {
	if p.clear {
		fmt.Fprint(p.out, clearSequence)
	}
}

// ReadLine writes prompt and returns the next input line without its line ending.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, render(p.styles.Prompt, prompt))
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	line := strings.TrimRight(p.in.Text(), "\r")
	logging.ConsoleDebug("read %q", line)
	return line, nil
}

// ReadInt prompts until the answer parses as an integer.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		p.Warn(fmt.Sprintf("%q is not a whole number, please try again.", strings.TrimSpace(line)))
	}
}

// ReadFloat prompts until the answer parses as a number.
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil {
			return f, nil
		}
		p.Warn(fmt.Sprintf("%q is not a number, please try again.", strings.TrimSpace(line)))
	}
}

// ReadIntOr reads one answer and falls back to def when it is not an integer.
func (p *Prompter) ReadIntOr(prompt string, def int) (int, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return def, nil
	}
	return n, nil
}

// Confirm asks a yes/no question; anything starting with y or Y is yes.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.ReadLine(prompt)
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return strings.HasPrefix(line, "y"), nil
}

// Pause waits for Enter. A closed input is not an error here.
func (p *Prompter) Pause() {
	fmt.Fprintln(p.out, render(p.styles.Muted, "\nPress Enter to return to the menu..."))
	_, _ = p.ReadLine("")
}

// render styles each line of s on its own so blank lines stay blank and
// lines are not padded to a common width.
func render(st lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = st.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}
