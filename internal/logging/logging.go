// Package logging builds the slog logger used by the autolink command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel names the environment variable consulted for the log level when no flag
// raises it.
const EnvLevel = "AUTOLINK_LOG_LEVEL"

// Format selects the slog handler.
type Format string

const (
	// FormatText writes logfmt-style lines (slog.TextHandler).
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line (slog.JSONHandler).
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format. The empty string means text.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q (expected text|json)", raw)
	}
}

// ParseLevel maps a level name to a slog.Level. Unknown names fall back to warn.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Options configures New.
type Options struct {
	Writer  io.Writer
	Format  Format
	Verbose bool
	// Level overrides the environment when non-empty.
	Level string
}

// New returns a logger writing to opts.Writer (stderr when nil). Verbose forces debug.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	raw := opts.Level
	if raw == "" {
		raw = os.Getenv(EnvLevel)
	}
	level := ParseLevel(raw)
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if opts.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// Canonical attribute keys.
const (
	KeyInput = "input"
	KeyKind  = "kind"
	KeyLinks = "links"
	KeyBytes = "bytes"
	KeyError = "error"
)

// Input names the input being read, "-" for stdin.
func Input(name string) slog.Attr { return slog.String(KeyInput, name) }

// Kind names a link kind.
func Kind(kind string) slog.Attr { return slog.String(KeyKind, kind) }

// Links counts links.
func Links(n int) slog.Attr { return slog.Int(KeyLinks, n) }

// Bytes counts input bytes.
func Bytes(n int) slog.Attr { return slog.Int(KeyBytes, n) }

// Error records err, or an empty string for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
