// Package logging builds the structured loggers of the documentation tools.
//
// Both tools print their results on stdout, so log records go to a separate
// writer (stderr unless Config.Writer says otherwise).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the subset of slog.Logger the tools log through.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config selects the level, format and destination of the root logger.
type Config struct {
	Level  string
	Format string
	Writer io.Writer
}

// DefaultLevel keeps routine progress out of the terminal unless asked for.
const DefaultLevel = "warn"

// LevelTrace sits below slog's debug level.
const LevelTrace = slog.LevelDebug - 4

// Provider hands out named child loggers of one root logger.
type Provider struct {
	root *slog.Logger
}

// New builds the root logger from cfg.
func New(cfg Config) (*Provider, error) {
	level := cfg.Level
	if strings.TrimSpace(level) == "" {
		level = DefaultLevel
	}
	lvl, ok := parseLevel(level)
	if !ok {
		return nil, fmt.Errorf("logging: unsupported level %q", cfg.Level)
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	return &Provider{root: slog.New(handler)}, nil
}

// GetLogger returns the child logger for a component.
func (p *Provider) GetLogger(name string) Logger {
	if p == nil || p.root == nil {
		return Nop()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return p.root
	}
	return p.root.With("logger", name)
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards everything.
func Nop() Logger { return nopLogger{} }
