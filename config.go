// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

// Config contains the configuration information used by [Generate].
// The shadergen command always runs with [DefaultConfig]; the fields
// exist so that the pipeline can be pointed at other trees and
// compilers in tests.
type Config struct {

	// Root is the directory that is searched recursively for shader stage files.
	Root string

	// Compiler is the name or path of the glslc executable.
	Compiler string

	// CompilerFlags are the flags passed to the compiler before the
	// input path, in shell syntax. They must request a numeric text dump.
	CompilerFlags string

	// TempExt is appended to a stage file path to get the path of
	// the temporary compiler output.
	TempExt string

	// OutputExt is the extension of the generated headers.
	OutputExt string

	// Include is the header included by every generated header,
	// relative to the generated header.
	Include string
}

// DefaultConfig returns the fixed configuration of the shadergen command.
func DefaultConfig() *Config {
	return &Config{
		Root:          "src/rendering/pipeline/shaders",
		Compiler:      "glslc",
		CompilerFlags: "-c -mfmt=num",
		TempExt:       ".u32",
		OutputExt:     ".gen.h",
		Include:       "../shader.h",
	}
}
