package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Name != "coursework" {
		t.Errorf("expected Name=coursework, got %s", cfg.Name)
	}
	if cfg.Scripture.WordsPerStep != 3 {
		t.Errorf("expected WordsPerStep=3, got %d", cfg.Scripture.WordsPerStep)
	}
	if cfg.Goals.LevelThreshold != 1000 {
		t.Errorf("expected LevelThreshold=1000, got %d", cfg.Goals.LevelThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := DefaultPath(tmpDir)

	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Journal.Path = "diary.db"
	cfg.Logging.Categories = map[string]bool{"goals": true}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), loaded.Seed)
	assert.Equal(t, "diary.db", loaded.Journal.Path)
	assert.Equal(t, map[string]bool{"goals": true}, loaded.Logging.Categories)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Scripture, cfg.Scripture)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guess: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"words per step", func(c *Config) { c.Scripture.WordsPerStep = 0 }},
		{"journal path", func(c *Config) { c.Journal.Path = "" }},
		{"theme", func(c *Config) { c.UI.Theme = "neon" }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"spinner interval", func(c *Config) { c.Mindfulness.SpinnerInterval = "fast" }},
		{"blank prompt", func(c *Config) { c.Journal.Prompts = []string{""} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("ws", DirName, "goals.txt"), Resolve("ws", "goals.txt"))
	abs := filepath.Join(string(filepath.Separator), "tmp", "goals.txt")
	assert.Equal(t, abs, Resolve("ws", abs))
	assert.Equal(t, "", Resolve("ws", ""))
}

func TestGetSpinnerInterval(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 200*time.Millisecond, cfg.GetSpinnerInterval())

	cfg.Mindfulness.SpinnerInterval = "50ms"
	assert.Equal(t, 50*time.Millisecond, cfg.GetSpinnerInterval())

	cfg.Mindfulness.SpinnerInterval = "bogus"
	assert.Equal(t, 200*time.Millisecond, cfg.GetSpinnerInterval())
}

func TestLogSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.DebugMode = true
	cfg.Logging.JSONFormat = true

	s := cfg.LogSettings()
	assert.True(t, s.DebugMode)
	assert.True(t, s.JSONFormat)
	assert.Equal(t, "info", s.Level)
}
