package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"coursework/internal/config"
	"coursework/internal/console"
	"coursework/internal/logging"
	"coursework/internal/rng"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	seed       uint64

	logger *zap.Logger
	cfg    *config.Config

	// now is the clock used for entry dates and date fallbacks.
	now = time.Now
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "course",
	Short: "Classroom console exercises",
	Long: `course bundles a set of small console exercises: drills, a journal,
a scripture memorizer, a mindfulness menu, a goal tracker and a few
data-model demos.

Configuration lives in .course/config.yaml inside the workspace; run
"course config init" to write the defaults.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		path := configPath
		if path == "" {
			path = config.DefaultPath(ws)
		}
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := logging.Initialize(ws, cfg.LogSettings()); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logger.Debug("Configuration loaded", zap.String("path", path), zap.String("workspace", ws))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.course/config.yaml)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed; 0 picks one at startup")

	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(scriptureCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(mindfulnessCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(fitnessCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return filepath.Abs(workspace)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// newPrompter binds a prompter to the command's streams.
func newPrompter(cmd *cobra.Command) *console.Prompter {
	out := cmd.OutOrStdout()
	return console.New(cmd.InOrStdin(), out,
		console.WithTheme(console.ThemeByName(cfg.UI.Theme)),
		console.WithClearScreen(isTerminal(out)),
	)
}

// newSource returns the random source for this run.
func newSource() (rng.Source, error) {
	src, err := rng.FromSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}
	logger.Debug("Random source ready", zap.Uint64("seed", cfg.Seed))
	return src, nil
}

// dataPath resolves a configured file against the workspace data directory
// and makes sure its parent exists.
func dataPath(path string) (string, error) {
	ws, err := resolveWorkspace()
	if err != nil {
		return "", err
	}
	resolved := config.Resolve(ws, path)
	if err := os.MkdirAll(filepath.Dir(resolved), 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return resolved, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	return signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
}

// ignoreClosed treats running out of input as a normal end of session.
func ignoreClosed(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}
