package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursework/internal/guess"
)

var (
	guessRandom bool
	guessMax    int
	guessAgain  bool
)

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the magic number",
	Long: `Guess the magic number. By default the magic number is typed in first;
with --random it is picked between 1 and --max.`,
	RunE: runGuess,
}

func init() {
	guessCmd.Flags().BoolVar(&guessRandom, "random", false, "Pick the magic number at random")
	guessCmd.Flags().IntVar(&guessMax, "max", 0, "Upper bound for --random (default: guess.max from config)")
	guessCmd.Flags().BoolVar(&guessAgain, "again", false, "Offer another round after each win")
}

func runGuess(cmd *cobra.Command, args []string) error {
	src, err := newSource()
	if err != nil {
		return err
	}
	upper := guessMax
	if upper <= 0 {
		upper = cfg.Guess.Max
	}
	logger.Debug("Starting guess", zap.Bool("random", guessRandom), zap.Int("max", upper))
	return ignoreClosed(guess.Play(newPrompter(cmd), guess.Options{
		Random: guessRandom,
		Max:    upper,
		Again:  guessAgain,
		Src:    src,
	}))
}
