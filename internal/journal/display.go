package journal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// EmptyMessage is shown for a journal with no entries.
const EmptyMessage = "No entries yet."

// WriteText writes every entry as "date (mood/5) - title", then the prompt,
// the response and a blank line.
func WriteText(w io.Writer, entries []Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, EmptyMessage)
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s (%s/5) - %s\n", e.Date, e.Mood, e.Title)
		fmt.Fprintln(w, e.Prompt)
		fmt.Fprintln(w, e.Response)
		fmt.Fprintln(w)
	}
}

// Markdown renders entries as a markdown document.
func Markdown(entries []Entry) string {
	if len(entries) == 0 {
		return EmptyMessage + "\n"
	}
	var b strings.Builder
	b.WriteString("# Journal\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "## %s: %s\n\n", e.Date, e.Title)
		fmt.Fprintf(&b, "*Mood %s/5*\n\n", e.Mood)
		fmt.Fprintf(&b, "> %s\n\n", e.Prompt)
		fmt.Fprintf(&b, "%s\n\n", e.Response)
	}
	return b.String()
}

// WriteMarkdown renders entries through glamour using style ("dark",
// "light" or "notty").
func WriteMarkdown(w io.Writer, entries []Entry, style string) error {
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := renderer.Render(Markdown(entries))
	if err != nil {
		return fmt.Errorf("render journal: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
