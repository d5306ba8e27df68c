// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger setup,
// with user-selected verbosity and terminal-aware level coloring.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level are shown. It defaults to [slog.LevelInfo], or
// [slog.LevelDebug] with the debug build tag and [slog.LevelWarn]
// with the release build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - otherwise: [UserLevel]
//
// The flags are evaluated in that order.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// NewHandler returns a text handler writing to w at [UserLevel], with the
// level names colored according to the color profile of w.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && len(groups) == 0 {
				lvl, ok := a.Value.Any().(slog.Level)
				if ok {
					a.Value = slog.StringValue(LevelString(out, lvl))
				}
			}
			return a
		},
	})
}

// LevelString returns the name of the level, colored for the given output.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	str := lvl.String()
	var clr string
	switch {
	case lvl >= slog.LevelError:
		clr = "#ef4444"
	case lvl >= slog.LevelWarn:
		clr = "#eab308"
	case lvl >= slog.LevelInfo:
		clr = "#22c55e"
	default:
		clr = "#a855f7"
	}
	return out.String(str).Foreground(out.Color(clr)).String()
}

// InitLogger sets the default logger to one writing to stderr
// through [NewHandler].
func InitLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
