// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shadergen compiles the GLSL shaders in
// src/rendering/pipeline/shaders with glslc and writes a
// <name>.gen.h header embedding the bytecode of each shader.
//
// It takes no arguments. The log level can be set with the
// SHADERGEN_LOG environment variable (debug, info, warn or error).
package main

import (
	"log/slog"
	"os"

	"cogentcore.org/shadergen"
	"cogentcore.org/shadergen/base/logx"
)

func main() {
	os.Exit(run(shadergen.DefaultConfig()))
}

// run generates the shader headers for the given configuration
// and returns the exit code of the command.
func run(cfg *shadergen.Config) int {
	logx.UserLevel = logx.LevelFromString(os.Getenv("SHADERGEN_LOG"))
	logx.SetDefaultLogger()

	rep, err := shadergen.Generate(cfg)
	if rep != nil {
		slog.Info(rep.Summary())
	}
	if err != nil {
		slog.Error("shader generation failed", "err", err)
		return 1
	}
	return 0
}
