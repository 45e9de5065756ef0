// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// toolbox-vault application.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// A logger that owns a file sink (see [NewHostLogger]) must be closed with
// [Logger.Close] on shutdown. Nothing in this package keeps a process-wide
// sink; whoever opens one injects the resulting *Logger into the components
// that need it.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	sink      io.Closer
	closeOnce *sync.Once
}

func configureGlobals() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

func newZerolog(w io.Writer, role string) zerolog.Logger {
	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}

// NewLogger constructs a *Logger for the given role label (e.g. "host",
// "vault") that writes JSON to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	configureGlobals()

	return &Logger{Logger: newZerolog(os.Stdout, role)}
}

// NewHostLogger constructs a *Logger for the host process that appends JSON
// entries to the file at path. Missing parent directories are created.
//
// The file is opened exactly once, here. If it cannot be opened the logger
// falls back to os.Stderr, so logging never blocks start-up. Call
// [Logger.Close] on shutdown to flush and release the sink.
func NewHostLogger(role, path string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	configureGlobals()

	var (
		w    io.Writer = os.Stderr
		sink io.Closer
	)

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err == nil {
			if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
				w, sink = f, f
			}
		}
	}

	return &Logger{Logger: newZerolog(w, role), sink: sink, closeOnce: new(sync.Once)}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// SetLevel adjusts the global zerolog level from a textual name
// ("debug", "info", "warn", "error"). Unknown or empty names are ignored.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return
	}
	zerolog.SetGlobalLevel(lvl)
}

// HasFileSink reports whether the logger writes to a file it owns.
func (l *Logger) HasFileSink() bool {
	return l.sink != nil
}

// Close flushes and closes the file sink opened by [NewHostLogger].
// It is safe to call more than once and on loggers without a sink.
func (l *Logger) Close() error {
	if l.sink == nil || l.closeOnce == nil {
		return nil
	}

	var err error
	l.closeOnce.Do(func() {
		if f, ok := l.sink.(*os.File); ok {
			_ = f.Sync()
		}
		err = l.sink.Close()
	})
	return err
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger. The child never owns the sink.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

// FromContextOr returns the logger attached to ctx, or fallback when ctx
// carries none.
func FromContextOr(ctx context.Context, fallback *Logger) *Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return &Logger{Logger: *l}
	}
	return fallback
}
