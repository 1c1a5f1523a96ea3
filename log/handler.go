// Copyright (c) 2021 The DAS developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"context"
	"io"
	"log/slog"
)

func levelName(level slog.Level) string {
	switch {
	case level <= LevelTrace:
		return "TRACE"
	case level >= LevelCrit:
		return "CRIT"
	default:
		return level.String()
	}
}

func replaceLevelAttr(_ []string, attr slog.Attr) slog.Attr {
	if attr.Key == slog.LevelKey {
		if level, ok := attr.Value.Any().(slog.Level); ok {
			attr.Value = slog.StringValue(levelName(level))
		}
	}
	return attr
}

// LogfmtHandler returns a text handler writing logfmt lines.
func LogfmtHandler(w io.Writer) slog.Handler {
	return LogfmtHandlerWithLevel(w, LevelInfo)
}

// LogfmtHandlerWithLevel returns a text handler bounded at the given level.
func LogfmtHandlerWithLevel(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelAttr,
	})
}

// JSONHandler returns a handler writing JSON lines.
func JSONHandler(w io.Writer) slog.Handler {
	return JSONHandlerWithLevel(w, LevelTrace)
}

// JSONHandlerWithLevel returns a JSON handler bounded at the given level.
func JSONHandlerWithLevel(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelAttr,
	})
}

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return discardHandler{}
}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
