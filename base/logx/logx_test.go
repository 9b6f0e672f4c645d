// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromString("debug"))
	assert.Equal(t, slog.LevelInfo, LevelFromString("Info"))
	assert.Equal(t, slog.LevelWarn, LevelFromString(" WARN "))
	assert.Equal(t, slog.LevelError, LevelFromString("error"))
	assert.Equal(t, defaultUserLevel, LevelFromString(""))
	assert.Equal(t, defaultUserLevel, LevelFromString("loud"))
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewLevelHandler(&buf, slog.LevelInfo))

	l.Debug("hidden")
	l.Info("compiled stage", "path", "a/basic.vert", "tokens", 2)
	l.With("shader", "basic").WithGroup("out").Warn("wrote", "file", "has space.gen.h")

	assert.Equal(t, "INFO  compiled stage path=a/basic.vert tokens=2\n"+
		"WARN  wrote shader=basic out.file=\"has space.gen.h\"\n", buf.String())
}

func TestHandlerUserLevel(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf))
	UserLevel = slog.LevelError
	l.Warn("hidden")
	UserLevel = slog.LevelDebug
	l.Debug("shown")
	assert.Equal(t, "DEBUG shown\n", buf.String())
}

func TestApplyLevelColor(t *testing.T) {
	// the test output is not a terminal, so no escape codes are added
	assert.Equal(t, "plain", colorize(NewHandler(&bytes.Buffer{}).out, slog.LevelError, "plain"))
}
