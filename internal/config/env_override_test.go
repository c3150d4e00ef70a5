package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("COURSE_* variables override file values", func(t *testing.T) {
		t.Setenv("COURSE_JOURNAL_PATH", "env-journal.json")
		t.Setenv("COURSE_SCRIPTURE_WORDS_PER_STEP", "5")
		t.Setenv("COURSE_SEED", "7")
		t.Setenv("COURSE_DEBUG", "true")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "env-journal.json", cfg.Journal.Path)
		assert.Equal(t, 5, cfg.Scripture.WordsPerStep)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.True(t, cfg.Logging.DebugMode)
	})

	t.Run("unset variables keep existing values", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Goals.SavePath = "custom.txt"
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "custom.txt", cfg.Goals.SavePath)
		assert.Equal(t, 1000, cfg.Goals.LevelThreshold)
	})

	t.Run("malformed number is an error", func(t *testing.T) {
		t.Setenv("COURSE_GUESS_MAX", "lots")

		cfg := DefaultConfig()
		err := cfg.applyEnvOverrides()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}

func TestEnvOverrides_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("COURSE_THEME=light\n"), 0644))

	old := dotenvFile
	dotenvFile = path
	t.Cleanup(func() {
		dotenvFile = old
		os.Unsetenv("COURSE_THEME")
	})
	// Registers COURSE_THEME for restoration; godotenv only sets unset variables.
	t.Setenv("COURSE_THEME", "")
	os.Unsetenv("COURSE_THEME")

	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnvOverrides())
	assert.Equal(t, "light", cfg.UI.Theme)
}
