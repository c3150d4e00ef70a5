// Package guess implements the magic number guessing game.
package guess

import (
	"fmt"

	"coursework/internal/console"
	"coursework/internal/logging"
	"coursework/internal/rng"
)

// Hint is the answer to one guess.
type Hint int

const (
	Higher Hint = iota
	Lower
	Correct
)

func (h Hint) String() string {
	switch h {
	case Higher:
		return "Higher"
	case Lower:
		return "Lower"
	default:
		return "You guessed it!"
	}
}

// Game holds one round's magic number and guess count.
type Game struct {
	target  int
	guesses int
}

// NewGame starts a round with the given magic number.
func NewGame(target int) *Game {
	return &Game{target: target}
}

// RandomGame starts a round with a magic number in [1, max].
func RandomGame(src rng.Source, max int) *Game {
	if max < 1 {
		max = 1
	}
	return NewGame(src.IntN(max) + 1)
}

// Guess compares n with the magic number.
func (g *Game) Guess(n int) Hint {
	g.guesses++
	switch {
	case n < g.target:
		return Higher
	case n > g.target:
		return Lower
	default:
		return Correct
	}
}

// Guesses returns how many guesses have been made.
func (g *Game) Guesses() int { return g.guesses }

// Options controls Play.
type Options struct {
	// Random picks the magic number instead of asking for it.
	Random bool
	Max    int
	// Again offers another round after each win.
	Again bool
	Src   rng.Source
}

// Play runs rounds until the player stops or input ends.
func Play(p *console.Prompter, opts Options) error {
	for {
		var game *Game
		if opts.Random {
			game = RandomGame(opts.Src, opts.Max)
			p.Printf("I picked a number between 1 and %d.\n", max(opts.Max, 1))
		} else {
			target, err := p.ReadInt("What is the magic number? ")
			if err != nil {
				return err
			}
			game = NewGame(target)
		}

		for {
			n, err := p.ReadInt("What is your guess? ")
			if err != nil {
				return err
			}
			hint := game.Guess(n)
			p.Println(hint.String())
			if hint == Correct {
				break
			}
		}
		p.Printf("It took you %d %s.\n", game.Guesses(), plural(game.Guesses(), "guess", "guesses"))
		logging.Drills("guess: solved in %d guesses", game.Guesses())

		if !opts.Again {
			return nil
		}
		again, err := p.Confirm("Do you want to play again? ")
		if err != nil || !again {
			return nil
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// String is used by debugging output.
func (g *Game) String() string {
	return fmt.Sprintf("Game(guesses=%d)", g.guesses)
}
