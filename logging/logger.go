// Package logging provides the library's diagnostic output.
//
// Nothing is emitted unless the host application calls Init with a level
// other than "none". Output goes to a rotating log file via lumberjack.
package logging

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component constants for structured logging.
const (
	CompDialog   = "dialog"
	CompRegistry = "registry"
	CompBuilder  = "builder"
	CompStore    = "store"
	CompConfig   = "config"
)

// Level constants accepted by Config.Level.
const (
	LevelNone    = "none"
	LevelAll     = "all"
	LevelVerbose = "verbose"
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelError   = "error"
	LevelAssert  = "assert"
)

// Config holds logging configuration.
type Config struct {
	// LogDir is the directory for log files. Empty disables file output.
	LogDir string

	// Level is the minimum log level: "none" (default), "all", "verbose",
	// "debug", "info", "warn", "error", "assert"
	Level string

	// Format is "json" (default) or "text"
	Format string

	// MaxSizeMB is the max size in MB before rotation (default: 10)
	MaxSizeMB int

	// MaxBackups is rotated files to keep (default: 5)
	MaxBackups int

	// MaxAgeDays is days to keep rotated files (default: 10)
	MaxAgeDays int

	// Compress rotated files (default: true)
	Compress bool

	// Writer overrides the file writer when non-nil. Used by tests and by
	// hosts that want to merge dialog diagnostics into their own sink.
	Writer io.Writer
}

var (
	globalLogger *slog.Logger
	globalMu     sync.RWMutex
	lumberjackW  *lumberjack.Logger
)

// Init initializes the logging system. Level "none" (or an empty level
// with no writer) discards everything, which is the default behavior.
func Init(cfg Config) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 10
	}

	level, enabled := parseLevel(cfg.Level)
	if !enabled || (cfg.Writer == nil && cfg.LogDir == "") {
		globalLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return
	}

	w := cfg.Writer
	if w == nil {
		lumberjackW = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "tuidialog.log"),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		w = lumberjackW
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	globalLogger = slog.New(handler)
}

// parseLevel maps the verbosity names onto slog levels. The second return
// value is false when output is fully disabled.
func parseLevel(s string) (slog.Level, bool) {
	switch s {
	case LevelAll, LevelVerbose:
		// finer than debug; slog has no named level below Debug
		return slog.LevelDebug - 4, true
	case LevelDebug:
		return slog.LevelDebug, true
	case LevelInfo:
		return slog.LevelInfo, true
	case LevelWarn:
		return slog.LevelWarn, true
	case LevelError, LevelAssert:
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Logger returns the global logger. Safe to call before Init (returns a
// discarding logger).
func Logger() *slog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return globalLogger
}

// ForComponent returns a sub-logger with the component field set.
func ForComponent(name string) *slog.Logger {
	return Logger().With(slog.String("component", name))
}

// Shutdown closes the file writer, if any.
func Shutdown() {
	globalMu.Lock()
	defer globalMu.Unlock()
	if lumberjackW != nil {
		lumberjackW.Close()
		lumberjackW = nil
	}
	globalLogger = nil
}
