// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicHeader = "// THIS FILE IS GENERATED; DO NOT EDIT!\n" +
	"\n" +
	"#ifndef BASIC_SHADER_GEN_H\n" +
	"#define BASIC_SHADER_GEN_H\n" +
	"\n" +
	"#include \"../shader.h\"\n" +
	"\n" +
	"class BasicShader : public Shader {\n" +
	"public:\n" +
	"    BasicShader() {\n" +
	"        const uint32_t vertexCode[] = {10,20};\n" +
	"\t\tconst uint32_t fragmentCode[] = {30};\n" +
	"\t\t_setupGraphics(vertexCode, sizeof(vertexCode), fragmentCode, sizeof(fragmentCode));\n" +
	"    }\n" +
	"};\n" +
	"\n" +
	"#endif // !BASIC_SHADER_GEN_H\n"

const blurHeader = "// THIS FILE IS GENERATED; DO NOT EDIT!\n" +
	"\n" +
	"#ifndef GAUSS_BLUR_SHADER_GEN_H\n" +
	"#define GAUSS_BLUR_SHADER_GEN_H\n" +
	"\n" +
	"#include \"../shader.h\"\n" +
	"\n" +
	"class GaussBlurShader : public Shader {\n" +
	"public:\n" +
	"    GaussBlurShader() {\n" +
	"        const uint32_t computeCode[] = {0x07230203,1,2};\n" +
	"\t\t_setupCompute(computeCode, sizeof(computeCode));\n" +
	"    }\n" +
	"};\n" +
	"\n" +
	"#endif // !GAUSS_BLUR_SHADER_GEN_H\n"

func TestRenderGraphics(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	b, err := g.Render(&GraphicsShader{Name: "basic", Vertex: []string{"10", "20"}, Fragment: []string{"30"}})
	require.NoError(t, err)
	assert.Equal(t, basicHeader, string(b))
	assert.Equal(t, 2, strings.Count(string(b), "const uint32_t"))
}

func TestRenderCompute(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	b, err := g.Render(&ComputeShader{Name: "gauss_blur", Compute: []string{"0x07230203", "1", "2"}})
	require.NoError(t, err)
	assert.Equal(t, blurHeader, string(b))
	assert.Equal(t, 1, strings.Count(string(b), "const uint32_t"))
}

func TestRenderEmptyStage(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	b, err := g.Render(&GraphicsShader{Name: "x", Vertex: []string{"10", "20"}, Fragment: []string{}})
	require.NoError(t, err)
	assert.Contains(t, string(b), "const uint32_t vertexCode[] = {10,20};")
	assert.Contains(t, string(b), "const uint32_t fragmentCode[] = {};")
}

func TestNames(t *testing.T) {
	tests := []struct {
		name, guard, class string
	}{
		{"basic", "BASIC_SHADER_GEN_H", "BasicShader"},
		{"basic_mesh", "BASIC_MESH_SHADER_GEN_H", "BasicMeshShader"},
		{"mesh2d", "MESH2D_SHADER_GEN_H", "Mesh2DShader"},
		{"PBR_lit", "PBR_LIT_SHADER_GEN_H", "PbrLitShader"},
		{"skyBox", "SKYBOX_SHADER_GEN_H", "SkyboxShader"},
		{"mesh.lod", "MESH.LOD_SHADER_GEN_H", "Mesh.LodShader"},
		{"straße", "STRASSE_SHADER_GEN_H", "StraßeShader"},
	}
	for _, test := range tests {
		assert.Equal(t, test.guard, GuardName(test.name), test.name)
		assert.Equal(t, test.class, ClassName(test.name), test.name)
	}
}

func TestEmit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.gen.h")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	g := NewGenerator(DefaultConfig())
	sh := &GraphicsShader{Name: "basic", Dir: dir, Vertex: []string{"10", "20"}, Fragment: []string{"30"}}
	assert.Equal(t, path, g.OutputPath(sh))
	got, err := g.Emit(sh)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, basicHeader, string(must(os.ReadFile(path))))

	_, err = g.Emit(&ComputeShader{Name: "blur", Dir: filepath.Join(dir, "missing")})
	assert.Error(t, err)
}
