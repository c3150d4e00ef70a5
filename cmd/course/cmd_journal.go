package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coursework/internal/journal"
)

var (
	journalFile     string
	journalMarkdown bool
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Write, display, save and load prompted journal entries",
	Long: `Write, display, save and load prompted journal entries.

Files ending in .db, .sqlite or .sqlite3 are stored in SQLite; anything
else is stored as JSON.`,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().StringVar(&journalFile, "file", "", "Default journal file (default: journal.path from config)")
	journalCmd.Flags().BoolVar(&journalMarkdown, "markdown", false, "Render entries as markdown")
}

func runJournal(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext(cmd)
	defer cancel()

	src, err := newSource()
	if err != nil {
		return err
	}
	file := journalFile
	if file == "" {
		file = cfg.Journal.Path
	}
	path, err := dataPath(file)
	if err != nil {
		return err
	}

	prompts := cfg.Journal.Prompts
	if len(prompts) == 0 {
		prompts = journal.DefaultPrompts
	}

	style := "notty"
	if isTerminal(cmd.OutOrStdout()) {
		style = cfg.UI.Theme
	}

	logger.Debug("Starting journal", zap.String("path", path), zap.Int("prompts", len(prompts)))
	app := journal.NewApp(newPrompter(cmd), journal.Options{
		Prompts:     prompts,
		DefaultPath: path,
		Markdown:    journalMarkdown || cfg.UI.Markdown,
		Style:       style,
		Src:         src,
		Now:         now,
	})
	return ignoreClosed(app.Run(ctx))
}
