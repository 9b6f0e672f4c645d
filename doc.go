// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shadergen generates C++ headers embedding SPIR-V bytecode
for the GLSL shaders found in a source tree.

Every .vert, .frag and .comp file below the shader root is compiled
with glslc into a numeric text dump. Stage files sharing a base name
are grouped into one logical shader, regardless of the directory they
live in, and each logical shader is written as a <name>.gen.h header
declaring a <Name>Shader class that passes its bytecode to the
Shader base class through _setupGraphics or _setupCompute.

A logical shader is either a graphics shader (exactly one vertex and
one fragment stage) or a compute shader (exactly one compute stage).
Anything else is reported as an error for that shader, while the
remaining shaders are still generated.
*/
package shadergen
