// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the portfolio server and its admin client.
//
// Both binaries write JSON lines tagged with a "role" field, a timestamp and
// the calling function under "func". Request-scoped loggers travel in the
// request context; read them back with FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ClientLogFile is the file the admin client logs to, placed next to the
// executable. The terminal itself belongs to the UI.
const ClientLogFile = "portfolio-client.log"

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

var setupGlobals sync.Once

// configure sets process-wide zerolog options shared by every constructor.
func configure() {
	setupGlobals.Do(func() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			return runtime.FuncForPC(pc).Name()
		}
	})
}

// New builds a Logger writing to out with the given role label.
func New(out io.Writer, role string) *Logger {
	configure()
	return &Logger{zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewLogger is the server logger: JSON to os.Stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// NewClientLogger is the admin client logger. It appends to [ClientLogFile]
// beside the executable and falls back to os.Stderr when the file cannot be
// opened.
func NewClientLogger(role string) *Logger {
	return New(clientOutput(), role)
}

func clientOutput() io.Writer {
	execPath, err := os.Executable()
	if err != nil {
		return os.Stderr
	}
	f, err := os.OpenFile(filepath.Join(filepath.Dir(execPath), ClientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr
	}
	return f
}

// Nop discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger tagging every entry with trace_id.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return &Logger{l.With().Str("trace_id", traceID).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
