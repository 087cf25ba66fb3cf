// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/solidc/internal/core/ports"
)

// messager matches zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
// Human output goes through a charmbracelet/log handler, JSON output through slog.JSONHandler.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	verbose  bool
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a new Logger writing human readable output to stderr.
func New() *Logger {
	return NewWithOptions(os.Stderr, false, false)
}

// NewWithOptions creates a Logger with an explicit destination and mode.
// If w is nil, os.Stderr is used.
func NewWithOptions(w io.Writer, jsonMode, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	l := &Logger{output: w, jsonMode: jsonMode, verbose: verbose}
	l.logger = slog.New(l.handler())
	return l
}

func (l *Logger) handler() slog.Handler {
	level := slog.LevelInfo
	if l.verbose {
		level = slog.LevelDebug
	}

	if l.jsonMode {
		return slog.NewJSONHandler(l.output, &slog.HandlerOptions{Level: level})
	}

	charmLevel := log.InfoLevel
	if l.verbose {
		charmLevel = log.DebugLevel
	}
	return log.NewWithOptions(l.output, log.Options{
		Level:           charmLevel,
		ReportTimestamp: l.verbose,
	})
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON and verbose settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.handler())
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(l.handler())
}

// SetVerbose lowers the level to debug when enabled.
func (l *Logger) SetVerbose(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.verbose = enable
	l.logger = slog.New(l.handler())
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error. In pretty mode the zerr chain is printed one cause per line.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(err))
}

func formatChain(err error) string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}

	lines := make([]string, 0, len(messages)+2)
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    → "+msg)
		default:
			lines = append(lines, "    → "+msg)
		}
	}
	return strings.Join(lines, "\n")
}
