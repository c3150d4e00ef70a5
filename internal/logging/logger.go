// Package logging provides categorized file-based logging for the exercises.
// Logs are written to <workspace>/.course/logs/ with one file per category per day.
// Logging is controlled by logging.debug_mode in the config; when false, no logs are written.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/exercise
type Category string

const (
	CategoryBoot        Category = "boot"        // Startup, config loading
	CategoryConsole     Category = "console"     // Prompt/input handling
	CategoryStore       Category = "store"       // File and database persistence
	CategoryJournal     Category = "journal"     // Journal entries
	CategoryScripture   Category = "scripture"   // Library loading, word hiding
	CategoryGoals       Category = "goals"       // Goal tracker
	CategoryMindfulness Category = "mindfulness" // Activities and activity log
	CategoryFitness     Category = "fitness"     // Fitness activity log
	CategoryDrills      Category = "drills"      // Small drills: greet, guess, grade, stats
)

// Settings mirrors config.LoggingConfig to avoid an import cycle.
type Settings struct {
	DebugMode  bool
	Categories map[string]bool
	Level      string
	JSONFormat bool
}

// StructuredLogEntry is the JSON line format used when JSONFormat is set.
type StructuredLogEntry struct {
	Timestamp int64                  `json:"ts"`  // Unix milliseconds
	Category  string                 `json:"cat"` // Log category
	Level     string                 `json:"lvl"` // debug/info/warn/error
	Message   string                 `json:"msg"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

// Logger wraps a standard logger with category and file output
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	loggers   = make(map[Category]*Logger)
	loggersMu sync.RWMutex
	logsDir   string
	settings  Settings
	configMu  sync.RWMutex
	logLevel  int // 0=debug, 1=info, 2=warn, 3=error
)

// Log levels
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Initialize sets up the logging directory under workspace.
// Should be called once at startup; calling it again resets all loggers.
func Initialize(workspace string, s Settings) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	CloseAll()

	configMu.Lock()
	settings = s
	logLevel = parseLevel(s.Level)
	configMu.Unlock()

	loggersMu.Lock()
	logsDir = filepath.Join(workspace, ".course", "logs")
	loggersMu.Unlock()

	// Only create logs directory if debug mode is enabled
	if !s.DebugMode {
		return nil
	}

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== logging initialized ===")
	boot.Info("Logs directory: %s", logsDir)
	boot.Info("Log level: %s", s.Level)
	if len(s.Categories) == 0 {
		boot.Info("All categories enabled (no category filter)")
	}
	return nil
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	configMu.RLock()
	defer configMu.RUnlock()
	return settings.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	configMu.RLock()
	defer configMu.RUnlock()

	if !settings.DebugMode {
		return false
	}
	if settings.Categories == nil {
		return true
	}
	enabled, exists := settings.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category}
	}

	loggersMu.RLock()
	if l, ok := loggers[category]; ok {
		loggersMu.RUnlock()
		return l
	}
	dir := logsDir
	loggersMu.RUnlock()

	if dir == "" {
		return &Logger{category: category}
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[logging] Warning: could not open log file %s: %v\n", logPath, err)
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l
	return l
}

func (l *Logger) write(level int, name, msg string, fields map[string]interface{}) {
	if l.logger == nil || level < currentLevel() {
		return
	}
	configMu.RLock()
	jsonFormat := settings.JSONFormat
	configMu.RUnlock()

	if jsonFormat {
		entry := StructuredLogEntry{
			Timestamp: time.Now().UnixMilli(),
			Category:  string(l.category),
			Level:     name,
			Message:   msg,
			Fields:    fields,
		}
		if data, err := json.Marshal(entry); err == nil {
			l.logger.Printf("%s", data)
			return
		}
	}
	if len(fields) > 0 {
		l.logger.Printf("[%s] %s | fields=%v", upper(name), msg, fields)
		return
	}
	l.logger.Printf("[%s] %s", upper(name), msg)
}

func currentLevel() int {
	configMu.RLock()
	defer configMu.RUnlock()
	return logLevel
}

func upper(level string) string {
	switch level {
	case "debug":
		return "DEBUG"
	case "warn":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}

// Debug logs a debug message (only if level <= debug)
func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(LevelDebug, "debug", fmt.Sprintf(format, args...), nil)
}

// Info logs an informational message (only if level <= info)
func (l *Logger) Info(format string, args ...interface{}) {
	l.write(LevelInfo, "info", fmt.Sprintf(format, args...), nil)
}

// Warn logs a warning message (only if level <= warn)
func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(LevelWarn, "warn", fmt.Sprintf(format, args...), nil)
}

// Error logs an error message (always logged if logger exists)
func (l *Logger) Error(format string, args ...interface{}) {
	l.write(LevelError, "error", fmt.Sprintf(format, args...), nil)
}

// StructuredLog writes a log entry with custom fields at the given level.
func (l *Logger) StructuredLog(level string, msg string, fields map[string]interface{}) {
	l.write(parseLevel(level), level, msg, fields)
}

// CloseAll closes all open log files (call at shutdown)
func CloseAll() {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// =============================================================================
// CONVENIENCE FUNCTIONS - Quick logging without getting a logger first
// These are no-ops if the category is disabled
// =============================================================================

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// Store logs to the store category
func Store(format string, args ...interface{}) {
	Get(CategoryStore).Info(format, args...)
}

// StoreDebug logs debug to the store category
func StoreDebug(format string, args ...interface{}) {
	Get(CategoryStore).Debug(format, args...)
}

// Journal logs to the journal category
func Journal(format string, args ...interface{}) {
	Get(CategoryJournal).Info(format, args...)
}

// Scripture logs to the scripture category
func Scripture(format string, args ...interface{}) {
	Get(CategoryScripture).Info(format, args...)
}

// ScriptureDebug logs debug to the scripture category
func ScriptureDebug(format string, args ...interface{}) {
	Get(CategoryScripture).Debug(format, args...)
}

// Goals logs to the goals category
func Goals(format string, args ...interface{}) {
	Get(CategoryGoals).Info(format, args...)
}

// Mindfulness logs to the mindfulness category
func Mindfulness(format string, args ...interface{}) {
	Get(CategoryMindfulness).Info(format, args...)
}

// Fitness logs to the fitness category
func Fitness(format string, args ...interface{}) {
	Get(CategoryFitness).Info(format, args...)
}

// Drills logs to the drills category
func Drills(format string, args ...interface{}) {
	Get(CategoryDrills).Info(format, args...)
}

// ConsoleDebug logs debug to the console category
func ConsoleDebug(format string, args ...interface{}) {
	Get(CategoryConsole).Debug(format, args...)
}
