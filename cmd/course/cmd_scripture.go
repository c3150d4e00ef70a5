package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursework/internal/scripture"
)

var (
	scriptureLibrary string
	scriptureWords   int
)

var scriptureCmd = &cobra.Command{
	Use:   "scripture",
	Short: "Memorize a scripture by hiding its words a few at a time",
	Long: `Memorize a scripture by hiding its words a few at a time.

The library is a text file with one scripture per line, either
"Reference|Text" or "Book|Chapter|Verse[-End]|Text".`,
	RunE: runScripture,
}

func init() {
	scriptureCmd.Flags().StringVar(&scriptureLibrary, "library", "", "Scripture library file (default: scripture.library_path from config)")
	scriptureCmd.Flags().IntVar(&scriptureWords, "words", 0, "Words hidden per step (default: scripture.words_per_step from config)")
}

func runScripture(cmd *cobra.Command, args []string) error {
	src, err := newSource()
	if err != nil {
		return err
	}
	file := scriptureLibrary
	if file == "" {
		file = cfg.Scripture.LibraryPath
	}
	path, err := dataPath(file)
	if err != nil {
		return err
	}
	words := scriptureWords
	if words <= 0 {
		words = cfg.Scripture.WordsPerStep
	}

	lib, diags, err := scripture.LoadLibraryFile(path)
	if err != nil {
		return err
	}
	logger.Debug("Scripture library loaded",
		zap.String("path", path),
		zap.Int("scriptures", lib.Len()),
		zap.Int("skipped", len(diags)))

	err = scripture.RunLibrary(newPrompter(cmd), lib, diags, src, words)
	if errors.Is(err, scripture.ErrEmptyLibrary) {
		return nil
	}
	return ignoreClosed(err)
}
