// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"cogentcore.org/shadergen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMissingCompiler(t *testing.T) {
	cfg := shadergen.DefaultConfig()
	cfg.Root = t.TempDir()
	cfg.Compiler = "shadergen-no-such-compiler"
	assert.Equal(t, 1, run(cfg))
}

func TestRun(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	compiler := filepath.Join(dir, "glslc")
	require.NoError(t, os.WriteFile(compiler, []byte("#!/bin/sh\ncat \"$3\" > \"$5\"\n"), 0755))
	root := filepath.Join(dir, "shaders")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "blur.comp"), []byte("1,2"), 0644))

	cfg := shadergen.DefaultConfig()
	cfg.Root = root
	cfg.Compiler = compiler
	assert.Equal(t, 0, run(cfg))
	assert.FileExists(t, filepath.Join(root, "blur.gen.h"))

	require.NoError(t, os.WriteFile(filepath.Join(root, "lonely.vert"), []byte("1"), 0644))
	assert.Equal(t, 1, run(cfg))
}
