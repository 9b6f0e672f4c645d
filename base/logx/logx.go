// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default leveled, colored slog
// handler used by the shadergen command and its helpers.
package logx

import (
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It is typically
// set from the environment through [LevelFromString].
var UserLevel = defaultUserLevel

// userLeveler is a [slog.Leveler] that always reports the current [UserLevel].
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// LevelFromString returns the [slog.Level] named by the given string
// (debug, info, warn or error, case insensitive), and the default
// level if the string is empty or not recognized.
func LevelFromString(s string) slog.Level {
	var l slog.Level
	if s == "" || l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))) != nil {
		return defaultUserLevel
	}
	return l
}

// SetDefaultLogger sets the default [slog] logger to a [Handler]
// that writes to [os.Stderr], filtered by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// stderr is the termenv output used for coloring strings that
// end up on the terminal.
var stderr = termenv.NewOutput(os.Stderr)

// levelColors are the ANSI colors used for each level.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "6",
	slog.LevelInfo:  "4",
	slog.LevelWarn:  "3",
	slog.LevelError: "1",
}

// ApplyLevelColor applies the color associated with the given level to the
// given string and returns the resulting string. Colors are only applied
// when standard error is a terminal supporting them.
func ApplyLevelColor(level slog.Level, str string) string {
	return colorize(stderr, level, str)
}

// CmdColor applies the color used for echoing executed commands,
// which is that of [slog.LevelInfo].
func CmdColor(str string) string {
	return ApplyLevelColor(slog.LevelInfo, str)
}

func colorize(out *termenv.Output, level slog.Level, str string) string {
	c, ok := levelColors[level]
	if !ok {
		switch {
		case level < slog.LevelInfo:
			c = levelColors[slog.LevelDebug]
		case level < slog.LevelWarn:
			c = levelColors[slog.LevelInfo]
		case level < slog.LevelError:
			c = levelColors[slog.LevelWarn]
		default:
			c = levelColors[slog.LevelError]
		}
	}
	st := out.String(str).Foreground(out.Color(c))
	if level >= slog.LevelError {
		st = st.Bold()
	}
	return st.String()
}
