// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"fmt"
	"strings"

	"cogentcore.org/shadergen/base/errors"
)

var (
	// ErrCompilerNotFound is returned when the shader compiler
	// cannot be located or executed at all. It aborts the whole run.
	ErrCompilerNotFound = errors.New("shader compiler not found")

	// ErrCompileFailed is matched by the error of any stage whose
	// compilation did not produce bytecode.
	ErrCompileFailed = errors.New("shader stage failed to compile")

	// ErrIncompleteGroup is matched by the error of a graphics
	// shader that lacks its vertex or its fragment stage.
	ErrIncompleteGroup = errors.New("graphics shader is missing a stage")

	// ErrAmbiguousGroup is matched by the error of a shader that has
	// both compute and graphics stage files.
	ErrAmbiguousGroup = errors.New("shader has both compute and graphics stages")

	// ErrDuplicateStage is matched by the error of a shader that has
	// more than one file for the same stage.
	ErrDuplicateStage = errors.New("shader stage is defined by more than one file")
)

// CompileError is the error of a stage file that the compiler rejected.
type CompileError struct {

	// Path is the stage file that was compiled.
	Path string

	// Code is the exit code of the compiler, or -1 if it was
	// killed by a signal.
	Code int

	// Status describes how the compiler ended, such as "exit status 1"
	// or "signal: killed". It is empty if the compiler succeeded but
	// its output could not be used.
	Status string

	// Output is what the compiler wrote to its standard error.
	Output string

	// Err is the underlying error.
	Err error
}

func (e *CompileError) Error() string {
	if e.Status == "" {
		return fmt.Sprintf("compiling %s: %v", e.Path, e.Err)
	}
	msg := fmt.Sprintf("compiling %s: %s", e.Path, e.Status)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *CompileError) Unwrap() error { return e.Err }

// Is makes every CompileError match [ErrCompileFailed].
func (e *CompileError) Is(target error) bool {
	return target == ErrCompileFailed
}

// ShaderError is the error of a logical shader whose stages
// do not form a valid graphics or compute shader.
type ShaderError struct {

	// Name is the logical shader name.
	Name string

	// Paths are the stage files of the shader.
	Paths []string

	// Err is one of [ErrIncompleteGroup], [ErrAmbiguousGroup] or [ErrDuplicateStage].
	Err error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("shader %q: %v (%s)", e.Name, e.Err, strings.Join(e.Paths, ", "))
}

func (e *ShaderError) Unwrap() error { return e.Err }
