package scripture

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/console"
)

// seq returns its values in order (modulo n), repeating the last one.
type seq struct {
	vals []int
	i    int
}

func (s *seq) IntN(n int) int {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
		s.i++
	}
	return v % n
}

func mustRef(t *testing.T, s string) Reference {
	t.Helper()
	ref, err := ParseReference(s)
	require.NoError(t, err)
	return ref
}

func TestParseReference(t *testing.T) {
	tests := []struct {
		in    string
		book  string
		ch    int
		verse int
		end   int
	}{
		{"John 3:16", "John", 3, 16, 0},
		{"Proverbs 3:5-6", "Proverbs", 3, 5, 6},
		{"2 Timothy 1:7", "2 Timothy", 1, 7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ref := mustRef(t, tt.in)
			assert.Equal(t, tt.book, ref.Book())
			assert.Equal(t, tt.ch, ref.Chapter())
			assert.Equal(t, tt.verse, ref.Verse())
			end, ok := ref.EndVerse()
			assert.Equal(t, tt.end != 0, ok)
			assert.Equal(t, tt.end, end)
			assert.Equal(t, tt.in, ref.String())
		})
	}
}

func TestParseReferenceInvalid(t *testing.T) {
	for _, in := range []string{"John", "John 3", "John x:1", "John 3:y", "John 0:1", "John 3:6-5", " 3:1"} {
		_, err := ParseReference(in)
		assert.ErrorIs(t, err, ErrInvalidReference, in)
	}
}

func TestWordDisplay(t *testing.T) {
	w := NewWord("trust")
	assert.Equal(t, "trust", w.DisplayText())
	w.Hide()
	assert.True(t, w.IsHidden())
	assert.Equal(t, "_____", w.DisplayText())
	assert.Equal(t, "trust", w.Text())
	w.Show()
	assert.Equal(t, "trust", w.DisplayText())
}

func TestScriptureHideAndReveal(t *testing.T) {
	s := New(mustRef(t, "John 3:16"), "For God so")
	assert.Equal(t, "John 3:16 - For God so", s.DisplayText())
	assert.Equal(t, Playing, s.State())

	// Picks land on index 1 twice; replacement means only one word changes.
	s.HideRandomWords(&seq{vals: []int{1, 1}}, 2)
	assert.Equal(t, 1, s.HiddenCount())
	assert.Equal(t, "John 3:16 - For ___ so", s.DisplayText())

	s.HideRandomWords(&seq{vals: []int{0, 2}}, 2)
	assert.True(t, s.IsCompletelyHidden())
	assert.Equal(t, Done, s.State())

	s.RevealOneWord(&seq{vals: []int{2}})
	assert.Equal(t, Playing, s.State())
	assert.Equal(t, "John 3:16 - ___ ___ so", s.DisplayText())
}

func TestRevealWithNothingHidden(t *testing.T) {
	s := New(mustRef(t, "John 3:16"), "For God")
	s.RevealOneWord(&seq{vals: []int{0}})
	assert.Equal(t, 0, s.HiddenCount())
}

func TestDrillRun(t *testing.T) {
	s := New(mustRef(t, "John 11:35"), "Jesus wept.")
	var out bytes.Buffer
	p := console.New(strings.NewReader("\nreveal\n\n\n"), &out)

	// hide 0, reveal the only hidden word, hide 0, hide 1.
	require.NoError(t, NewDrill(s, &seq{vals: []int{0, 0, 0, 1}}, 1).Run(p))

	text := out.String()
	assert.Contains(t, text, "John 11:35 - _____ wept.")
	assert.Contains(t, text, "John 11:35 - _____ _____")
	assert.Contains(t, text, "All words are hidden.")
	assert.Equal(t, Done, s.State())
}

func TestDrillQuit(t *testing.T) {
	s := New(mustRef(t, "John 11:35"), "Jesus wept.")
	var out bytes.Buffer
	p := console.New(strings.NewReader("QUIT\n"), &out)

	require.NoError(t, NewDrill(s, &seq{vals: []int{0}}, 3).Run(p))
	assert.Equal(t, 0, s.HiddenCount())
	assert.NotContains(t, out.String(), "All words are hidden.")
}

func TestDrillInputClosed(t *testing.T) {
	s := New(mustRef(t, "John 11:35"), "Jesus wept.")
	p := console.New(strings.NewReader(""), &bytes.Buffer{})
	assert.NoError(t, NewDrill(s, &seq{vals: []int{0}}, 3).Run(p))
}
