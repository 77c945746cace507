// Package logger provides a logging utility based on log/slog
//
// DEBUG logging can be enabled by setting the CALC_DEBUG environment variable:
//
//	export CALC_DEBUG=1
//
// Output goes to stderr so that stdout stays free for MCP traffic and
// command results.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// current holds the global logger; Configure may swap it while other
// goroutines log.
var current atomic.Pointer[slog.Logger]

func init() {
	level := "info"
	if DebugFromEnv() {
		level = "debug"
	}
	Configure(level, os.Stderr)
}

// DebugFromEnv reports whether CALC_DEBUG asks for debug logging
func DebugFromEnv() bool {
	v := os.Getenv("CALC_DEBUG")
	return v != "" && strings.ToLower(v) != "false" && v != "0"
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown names fall back to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// Configure replaces the global logger with a text handler writing to w
func Configure(level string, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}
	l := slog.New(slog.NewTextHandler(w, opts))
	current.Store(l)

	// Replace the default slog logger too
	slog.SetDefault(l)
}

// Logger returns the global logger
func Logger() *slog.Logger {
	return current.Load()
}

// Debug logs a debug message if debug logging is enabled
func Debug(msg string, args ...any) {
	current.Load().Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	current.Load().Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	current.Load().Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	current.Load().Error(msg, args...)
}
