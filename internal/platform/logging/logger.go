// Package logging builds the service's slog logger and carries request-scoped loggers
// through context.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace sits below debug and is used for wire-level detail such as outbound request
// and response bodies.
const LevelTrace = slog.Level(-8)

// Config selects level, output format and optional file output.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string
	Version string
	File    FileConfig
}

// FileConfig enables a size-rotated JSON log file next to the console output.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a logger writing to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter creates a logger writing console output to w. Secrets are redacted in
// every handler.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	var console slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "pretty":
		console = newPrettyHandler(w, cfg, level)
	case "text":
		console = slog.NewTextHandler(w, opts)
	default:
		console = slog.NewJSONHandler(w, opts)
	}

	handler := console
	if cfg.File.Enabled && cfg.File.Path != "" {
		handler = NewMultiHandler(console, slog.NewJSONHandler(newRollingFile(cfg.File), opts))
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

func newPrettyHandler(w io.Writer, cfg *Config, level slog.Level) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           slogToCharmLevel(level),
		Prefix:          cfg.Service,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

func newRollingFile(cfg FileConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogToCharmLevel maps slog levels onto charm's coarser scale. Trace has no charm
// equivalent and is shown as debug.
func slogToCharmLevel(level slog.Level) charmlog.Level {
	switch {
	case level < slog.LevelInfo:
		return charmlog.DebugLevel
	case level < slog.LevelWarn:
		return charmlog.InfoLevel
	case level < slog.LevelError:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}
