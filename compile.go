// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"cogentcore.org/shadergen/base/errors"
	"cogentcore.org/shadergen/base/exec"
)

// StageResult is the outcome of compiling one stage file.
type StageResult struct {

	// Path is the stage file.
	Path string

	// Tokens are the bytecode words, as the text literals written
	// by the compiler. It is empty if Err is non-nil.
	Tokens []string

	// Err is non-nil if the stage did not compile.
	Err error
}

// OK returns whether the stage compiled.
func (r *StageResult) OK() bool {
	return r.Err == nil
}

// Compiler runs glslc on stage files and collects the resulting bytecode.
type Compiler struct {

	// Bin is the resolved path of the compiler executable.
	Bin string

	// Flags are the arguments passed before the input path.
	Flags []string

	// TempExt is appended to the stage path to get the output path.
	TempExt string

	// Exec is the configuration used to run the compiler.
	Exec *exec.Config
}

// NewCompiler returns a new [Compiler] for the given configuration.
// It returns an error matching [ErrCompilerNotFound] if the compiler
// executable cannot be found.
func NewCompiler(cfg *Config) (*Compiler, error) {
	flags, err := exec.Args(cfg.CompilerFlags)
	if err != nil {
		return nil, fmt.Errorf("invalid compiler flags: %w", err)
	}
	bin, err := exec.LookPath(cfg.Compiler)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
	}
	return &Compiler{
		Bin:     bin,
		Flags:   flags,
		TempExt: cfg.TempExt,
		Exec:    exec.Minor(),
	}, nil
}

// Compile compiles the given stage file into bytecode tokens.
// The compiler writes a numeric text dump to the stage path plus
// [Compiler.TempExt], which is read and removed again.
// A compiler failure is returned in [StageResult.Err] as a [*CompileError];
// if the compiler could not be run at all, the error matches [ErrCompilerNotFound].
func (c *Compiler) Compile(path string) StageResult {
	res := StageResult{Path: path}
	out := path + c.TempExt
	args := append(slices.Clone(c.Flags), path, "-o", out)

	var stderr bytes.Buffer
	xc := c.Exec.Clone().SetStderr(&stderr)
	ran, code, err := xc.Exec(c.Bin, args...)
	if err != nil {
		if !ran {
			res.Err = fmt.Errorf("%w: %w", ErrCompilerNotFound, err)
			return res
		}
		res.Err = &CompileError{Path: path, Code: code, Status: exec.ExitReason(err), Output: stderr.String(), Err: err}
		return res
	}
	if stderr.Len() > 0 {
		slog.Debug("compiler output", "path", path, "output", strings.TrimSpace(stderr.String()))
	}

	b, err := os.ReadFile(out)
	if err != nil {
		res.Err = &CompileError{Path: path, Err: fmt.Errorf("reading compiler output: %w", err)}
		return res
	}
	errors.Log(os.Remove(out))
	res.Tokens = ParseTokens(string(b))
	return res
}

// ParseTokens splits the numeric text dump written by the compiler
// into its comma separated literals, after removing all newline
// and tab characters. The literals are not parsed or validated.
// Empty text yields no tokens.
func ParseTokens(text string) []string {
	text = strings.NewReplacer("\n", "", "\t", "").Replace(text)
	if text == "" {
		return []string{}
	}
	return strings.Split(text, ",")
}

// JoinTokens joins the given tokens with commas.
// It is the inverse of [ParseTokens] for text without newlines or tabs.
func JoinTokens(tokens []string) string {
	return strings.Join(tokens, ",")
}
