// SPDX-License-Identifier: MIT

// Package logging builds the slog loggers used across the module.
//
// Library packages never log on their own: they accept a *slog.Logger via
// options (see qaoa.WithLogger) and discard output by default. Binaries pick
// the handler here:
//
//	logger, err := logging.New(os.Stderr, "debug", logging.FormatJSON)
//	opts := []qaoa.Option{qaoa.WithLogger(logger.With("rank", rank))}
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the slog handler.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownLevel indicates a level name other than debug/info/warn/error.
	ErrUnknownLevel = errors.New("logging: unknown level")

	// ErrUnknownFormat indicates a format other than text/json.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// ParseLevel maps debug, info, warn(ing) and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("ParseLevel(%q): %w", s, ErrUnknownLevel)
	}
}

// New returns a logger writing to w at the named level in the given format.
func New(w io.Writer, level string, format Format) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("New: format %q: %w", format, ErrUnknownFormat)
	}
}

// Noop returns a logger that discards everything.
func Noop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
