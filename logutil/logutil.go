// Package logutil - slog-Logger mit TRACE-Level fuer spanmask.
//
// MODUL: logutil
// ZWECK: Einheitliche Logger-Erstellung und Trace-Helfer
// INPUT: io.Writer, slog.Level
// OUTPUT: *slog.Logger
// NEBENEFFEKTE: Keine (Trace schreibt ueber den Default-Logger)
// ABHAENGIGKEITEN: log/slog (stdlib)
// HINWEISE: TRACE liegt unter DEBUG (-8); Quelldateien werden auf den Basisnamen gekuerzt
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
)

// LevelTrace ist feiner als slog.LevelDebug
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger mit Quellangabe.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if level, ok := attr.Value.Any().(slog.Level); ok && level == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				if source, ok := attr.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			return attr
		},
	}))
}

// Trace loggt ueber den Default-Logger auf TRACE-Level.
func Trace(msg string, args ...any) {
	TraceContext(context.TODO(), msg, args...)
}

// TraceContext loggt mit Kontext auf TRACE-Level.
func TraceContext(ctx context.Context, msg string, args ...any) {
	slog.Log(ctx, LevelTrace, msg, args...)
}
