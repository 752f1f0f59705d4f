// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger with the
// constructors pin-vault needs: a stdout JSON logger for the sync server, a
// file-backed logger for the TUI client (whose stdout belongs to the
// terminal UI), and a no-op logger for tests.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "vaultsyncd"). Output is JSON on stdout with a "role" field, a
// timestamp, and a caller field recording the fully-qualified function name.
func NewLogger(role string) *Logger {
	return &Logger{newZerolog(role, os.Stdout)}
}

// NewFileLogger constructs a *Logger that appends to the file at path.
// Intended for the TUI client, where stdout is owned by the terminal UI and
// stray log lines would corrupt the screen. Falls back to stdout if the
// file cannot be opened.
func NewFileLogger(role, path string) *Logger {
	out := os.Stdout
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		out = f
	}

	return &Logger{newZerolog(role, out)}
}

func newZerolog(role string, out *os.File) zerolog.Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	return zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger. Used by handlers
// behind middleware that attaches a request-scoped logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
