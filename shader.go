// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

// Shader is a validated logical shader, ready for header generation.
// It is either a [*GraphicsShader] or a [*ComputeShader].
type Shader interface {

	// ShaderName returns the logical shader name.
	ShaderName() string

	// SourceDir returns the canonical source directory of the shader,
	// where its header is written.
	SourceDir() string

	isShader()
}

// GraphicsShader is a shader made of a vertex and a fragment stage.
type GraphicsShader struct {
	Name string
	Dir  string

	// Vertex and Fragment are the bytecode tokens of the two stages.
	Vertex   []string
	Fragment []string
}

func (sh *GraphicsShader) ShaderName() string { return sh.Name }
func (sh *GraphicsShader) SourceDir() string  { return sh.Dir }
func (sh *GraphicsShader) isShader()          {}

// ComputeShader is a shader made of a single compute stage.
type ComputeShader struct {
	Name string
	Dir  string

	// Compute are the bytecode tokens of the compute stage.
	Compute []string
}

func (sh *ComputeShader) ShaderName() string { return sh.Name }
func (sh *ComputeShader) SourceDir() string  { return sh.Dir }
func (sh *ComputeShader) isShader()          {}
