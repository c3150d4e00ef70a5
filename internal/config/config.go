package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"coursework/internal/logging"
	"coursework/internal/validate"
)

// DirName is the per-workspace directory holding config, data files and logs.
const DirName = ".course"

// Config holds all coursework configuration.
type Config struct {
	Name string `yaml:"name"`

	// Seed fixes the random source; 0 seeds from crypto/rand.
	Seed uint64 `yaml:"seed" env:"COURSE_SEED"`

	Guess       GuessConfig       `yaml:"guess"`
	Journal     JournalConfig     `yaml:"journal"`
	Scripture   ScriptureConfig   `yaml:"scripture"`
	Goals       GoalsConfig       `yaml:"goals"`
	Mindfulness MindfulnessConfig `yaml:"mindfulness"`
	Logging     LoggingConfig     `yaml:"logging"`
	UI          UIConfig          `yaml:"ui"`
}

// GuessConfig configures the number guesser.
type GuessConfig struct {
	// Max is the upper bound of a randomly chosen magic number.
	Max int `yaml:"max" env:"COURSE_GUESS_MAX" validate:"min=1"`
}

// JournalConfig configures the journal.
type JournalConfig struct {
	// Path is the default save/load file; .db and .sqlite select the SQLite store.
	Path    string   `yaml:"path" env:"COURSE_JOURNAL_PATH" validate:"required"`
	Prompts []string `yaml:"prompts,omitempty" validate:"dive,required"`
}

// ScriptureConfig configures the scripture drill.
type ScriptureConfig struct {
	LibraryPath  string `yaml:"library_path" env:"COURSE_SCRIPTURE_LIBRARY" validate:"required"`
	WordsPerStep int    `yaml:"words_per_step" env:"COURSE_SCRIPTURE_WORDS_PER_STEP" validate:"min=1"`
}

// GoalsConfig configures the goal tracker.
type GoalsConfig struct {
	SavePath       string `yaml:"save_path" env:"COURSE_GOALS_PATH" validate:"required"`
	LevelThreshold int    `yaml:"level_threshold" env:"COURSE_GOALS_LEVEL_THRESHOLD" validate:"min=1"`
}

// MindfulnessConfig configures the mindfulness activities.
type MindfulnessConfig struct {
	LogPath         string `yaml:"log_path" env:"COURSE_MINDFULNESS_LOG" validate:"required"`
	DefaultDuration int    `yaml:"default_duration" validate:"min=1"` // seconds, used when input is not a number
	PrepareSeconds  int    `yaml:"prepare_seconds" validate:"min=0"`
	BreatheIn       int    `yaml:"breathe_in" validate:"min=1"`
	BreatheOut      int    `yaml:"breathe_out" validate:"min=1"`
	SpinnerInterval string `yaml:"spinner_interval"`
	// Fast collapses every presentation delay; handy for demos.
	Fast bool `yaml:"fast" env:"COURSE_MINDFULNESS_FAST"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode" env:"COURSE_DEBUG"`
	Level      string          `yaml:"level" env:"COURSE_LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	JSONFormat bool            `yaml:"json_format"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// UIConfig configures console rendering.
type UIConfig struct {
	Theme    string `yaml:"theme" env:"COURSE_THEME" validate:"oneof=light dark"`
	Markdown bool   `yaml:"markdown"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "coursework",

		Guess: GuessConfig{Max: 100},

		Journal: JournalConfig{
			Path: "journal.json",
		},

		Scripture: ScriptureConfig{
			LibraryPath:  "scriptures.txt",
			WordsPerStep: 3,
		},

		Goals: GoalsConfig{
			SavePath:       "goals.txt",
			LevelThreshold: 1000,
		},

		Mindfulness: MindfulnessConfig{
			LogPath:         "activity_log.txt",
			DefaultDuration: 30,
			PrepareSeconds:  3,
			BreatheIn:       4,
			BreatheOut:      6,
			SpinnerInterval: "200ms",
		},

		Logging: LoggingConfig{
			Level: "info",
		},

		UI: UIConfig{
			Theme: "dark",
		},
	}
}

// DefaultPath returns the config file location inside workspace.
func DefaultPath(workspace string) string {
	return filepath.Join(workspace, DirName, "config.yaml")
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		logging.Boot("No config at %s, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// dotenvFile is read from the working directory when present.
var dotenvFile = ".env"

// applyEnvOverrides loads dotenvFile, then lets COURSE_* variables override
// file values. Unset variables leave fields untouched.
func (c *Config) applyEnvOverrides() error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", dotenvFile, err)
	}
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.ParseDuration(c.Mindfulness.SpinnerInterval); c.Mindfulness.SpinnerInterval != "" && err != nil {
		return fmt.Errorf("invalid config: mindfulness.spinner_interval: %w", err)
	}
	return nil
}

// Resolve makes a configured path absolute relative to the workspace data dir.
func Resolve(workspace, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workspace, DirName, path)
}

// GetSpinnerInterval returns the spinner frame delay as a duration.
func (c *Config) GetSpinnerInterval() time.Duration {
	d, err := time.ParseDuration(c.Mindfulness.SpinnerInterval)
	if err != nil || d <= 0 {
		return 200 * time.Millisecond
	}
	return d
}

// LogSettings converts the logging section for logging.Initialize.
func (c *Config) LogSettings() logging.Settings {
	return logging.Settings{
		DebugMode:  c.Logging.DebugMode,
		Categories: c.Logging.Categories,
		Level:      c.Logging.Level,
		JSONFormat: c.Logging.JSONFormat,
	}
}
