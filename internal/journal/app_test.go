package journal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/console"
)

type first struct{}

func (first) IntN(int) int { return 0 }

func fixedNow() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

func runApp(t *testing.T, input string, opts Options) (*App, string) {
	t.Helper()
	var out bytes.Buffer
	opts.Src = first{}
	opts.Now = fixedNow
	app := NewApp(console.New(strings.NewReader(input), &out), opts)
	require.NoError(t, app.Run(context.Background()))
	return app, out.String()
}

func TestWriteText(t *testing.T) {
	var out bytes.Buffer
	WriteText(&out, nil)
	assert.Equal(t, "No entries yet.\n", out.String())

	out.Reset()
	WriteText(&out, []Entry{{Date: "2024-03-01", Mood: "4", Title: "T", Prompt: "P", Response: "R"}})
	assert.Equal(t, "2024-03-01 (4/5) - T\nP\nR\n\n", out.String())
}

func TestWriteMarkdown(t *testing.T) {
	var out bytes.Buffer
	entries := []Entry{{Date: "2024-03-01", Mood: "4", Title: "Sledding", Prompt: "Best part?", Response: "Snow"}}
	require.NoError(t, WriteMarkdown(&out, entries, "notty"))
	assert.Contains(t, out.String(), "Sledding")
	assert.Contains(t, out.String(), "Snow")
}

func TestAppWriteDisplaySave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.json")
	input := strings.Join([]string{
		"1", "Neighbors", "4", "Talked over the fence", "",
		"2", "",
		"3", path, "",
		"9",
		"5",
	}, "\n") + "\n"

	app, out := runApp(t, input, Options{})

	assert.Equal(t, 1, app.Journal().Len())
	assert.Contains(t, out, "Your prompt is:\n"+DefaultPrompts[0])
	assert.Contains(t, out, "2024-03-01 (4/5) - Neighbors\n"+DefaultPrompts[0]+"\nTalked over the fence\n")
	assert.Contains(t, out, "Journal saved to "+path)
	assert.Contains(t, out, "Invalid choice")
	assert.Contains(t, out, "Goodbye!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Response": "Talked over the fence"`)
}

func TestAppLoadDefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	require.NoError(t, NewSQLiteStore(path).Save(context.Background(), sampleEntries()))

	app, out := runApp(t, "4\n\n\n5\n", Options{DefaultPath: path})
	assert.Equal(t, 2, app.Journal().Len())
	assert.Contains(t, out, "Journal loaded from "+path)
}

func TestAppLoadMissingKeepsEntries(t *testing.T) {
	input := "1\nT\n3\nR\n\n4\n" + filepath.Join(t.TempDir(), "nope.json") + "\n\n"
	app, out := runApp(t, input, Options{})

	assert.Contains(t, out, "That file does not exist.")
	assert.Equal(t, 1, app.Journal().Len())
}
