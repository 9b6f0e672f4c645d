// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Generator renders [Shader]s into C++ headers.
type Generator struct {

	// Include is the header included by every generated header.
	Include string

	// OutputExt is the extension of the generated headers.
	OutputExt string

	// Buf is the buffer the header is rendered into.
	Buf bytes.Buffer
}

// NewGenerator returns a new [Generator] for the given configuration.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{Include: cfg.Include, OutputExt: cfg.OutputExt}
}

// OutputPath returns the path of the header generated for the given shader.
func (g *Generator) OutputPath(sh Shader) string {
	return filepath.Join(sh.SourceDir(), sh.ShaderName()+g.OutputExt)
}

// Render renders the header for the given shader and returns its text.
func (g *Generator) Render(sh Shader) ([]byte, error) {
	var body []string
	switch sh := sh.(type) {
	case *ComputeShader:
		body = []string{
			codeArray("computeCode", sh.Compute),
			"_setupCompute(computeCode, sizeof(computeCode));",
		}
	case *GraphicsShader:
		body = []string{
			codeArray("vertexCode", sh.Vertex),
			codeArray("fragmentCode", sh.Fragment),
			"_setupGraphics(vertexCode, sizeof(vertexCode), fragmentCode, sizeof(fragmentCode));",
		}
	default:
		return nil, fmt.Errorf("unknown shader type %T", sh)
	}
	g.Buf.Reset()
	err := HeaderTmpl.Execute(&g.Buf, &headerData{
		Guard:   GuardName(sh.ShaderName()),
		Class:   ClassName(sh.ShaderName()),
		Include: g.Include,
		Body:    body,
	})
	if err != nil {
		return nil, fmt.Errorf("programmer error: internal error: error executing template: %w", err)
	}
	return bytes.Clone(g.Buf.Bytes()), nil
}

// Emit renders the header for the given shader and writes it to
// [Generator.OutputPath], replacing any existing file.
// It returns the path of the written header.
func (g *Generator) Emit(sh Shader) (string, error) {
	b, err := g.Render(sh)
	if err != nil {
		return "", err
	}
	path := g.OutputPath(sh)
	if err := os.WriteFile(path, b, 0644); err != nil {
		return "", fmt.Errorf("writing shader header: %w", err)
	}
	return path, nil
}

func codeArray(name string, tokens []string) string {
	return "const uint32_t " + name + "[] = {" + JoinTokens(tokens) + "};"
}

// GuardName returns the include guard of the header for the given shader name.
func GuardName(name string) string {
	return cases.Upper(language.Und).String(name) + "_SHADER_GEN_H"
}

// ClassName returns the class name of the given shader name: the name
// in title case, where every letter following a non-letter starts a
// new word, with underscores removed and Shader appended.
// For example, basic_mesh2d becomes BasicMesh2DShader.
func ClassName(name string) string {
	return strings.ReplaceAll(titleCase(name), "_", "") + "Shader"
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		if prevCased {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToTitle(r))
		}
		prevCased = unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
	}
	return b.String()
}
