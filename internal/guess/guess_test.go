package guess

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursework/internal/console"
	"coursework/internal/rng"
)

type fixed int

func (f fixed) IntN(n int) int { return int(f) % n }

func TestGuessHints(t *testing.T) {
	g := NewGame(42)
	assert.Equal(t, Higher, g.Guess(10))
	assert.Equal(t, Lower, g.Guess(50))
	assert.Equal(t, Correct, g.Guess(42))
	assert.Equal(t, 3, g.Guesses())
}

func TestRandomGameRange(t *testing.T) {
	src := rng.New(3)
	for i := 0; i < 50; i++ {
		g := RandomGame(src, 10)
		if g.target < 1 || g.target > 10 {
			t.Fatalf("target %d outside [1,10]", g.target)
		}
	}
	assert.Equal(t, 1, RandomGame(fixed(5), 0).target)
}

func TestPlayAskedTarget(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("7\n3\nnine\n9\n7\n"), &out)

	require.NoError(t, Play(p, Options{}))

	text := out.String()
	assert.Contains(t, text, "Higher\n")
	assert.Contains(t, text, "Lower\n")
	assert.Contains(t, text, "You guessed it!\n")
	assert.Contains(t, text, "It took you 3 guesses.")
	assert.Contains(t, text, `"nine" is not a whole number`)
}

func TestPlayRandomAgain(t *testing.T) {
	var out bytes.Buffer
	// fixed(4) picks 5 every round.
	p := console.New(strings.NewReader("5\ny\n1\n5\nn\n"), &out)

	require.NoError(t, Play(p, Options{Random: true, Max: 10, Again: true, Src: fixed(4)}))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "You guessed it!"))
	assert.Contains(t, text, "It took you 1 guess.")
	assert.Contains(t, text, "It took you 2 guesses.")
}

func TestPlayInputClosed(t *testing.T) {
	var out bytes.Buffer
	p := console.New(strings.NewReader("5\n1\n"), &out)
	assert.ErrorIs(t, Play(p, Options{}), console.ErrInputClosed)
}
