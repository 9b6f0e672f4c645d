// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"log/slog"
	"path/filepath"
	"slices"

	"cogentcore.org/shadergen/base/ordmap"
)

// Record accumulates the compiled stages found for one logical shader
// name, across all directories of the tree.
type Record struct {

	// Name is the logical shader name, the base name of its stage files.
	Name string

	// SourcePath is the first stage file seen for this name.
	SourcePath string

	// Stages holds the results of the stage files, by stage.
	// More than one result for a stage makes the shader invalid.
	Stages [StagesN][]StageResult
}

// Has returns whether a file for the given stage was attached.
func (r *Record) Has(s Stage) bool {
	return len(r.Stages[s]) > 0
}

// IsCompute returns whether a compute stage was attached.
func (r *Record) IsCompute() bool {
	return r.Has(Compute)
}

// IsGraphics returns whether a vertex or fragment stage was attached.
func (r *Record) IsGraphics() bool {
	for s := range StagesN {
		if !s.IsCompute() && r.Has(s) {
			return true
		}
	}
	return false
}

// Paths returns the sorted paths of all of the attached stage files.
func (r *Record) Paths() []string {
	var paths []string
	for _, rs := range r.Stages {
		for _, res := range rs {
			paths = append(paths, res.Path)
		}
	}
	slices.Sort(paths)
	return paths
}

// Dir returns the canonical source directory of the shader: the
// lexicographically first directory among its stage files. It does
// not depend on the order in which the stage files were found.
// The record must have at least one stage attached.
func (r *Record) Dir() string {
	paths := r.Paths()
	dir := filepath.Dir(paths[0])
	for _, p := range paths[1:] {
		dir = min(dir, filepath.Dir(p))
	}
	return dir
}

// tokens returns the tokens of the single result for the given stage.
func (r *Record) tokens(s Stage) []string {
	return r.Stages[s][0].Tokens
}

// Shader validates the record and returns the corresponding [Shader].
// The error is a [*ShaderError] if the stages do not form exactly
// one graphics shader or one compute shader.
func (r *Record) Shader() (Shader, error) {
	fail := func(err error) (Shader, error) {
		return nil, &ShaderError{Name: r.Name, Paths: r.Paths(), Err: err}
	}
	for _, rs := range r.Stages {
		if len(rs) > 1 {
			return fail(ErrDuplicateStage)
		}
	}
	switch {
	case r.IsCompute() && r.IsGraphics():
		return fail(ErrAmbiguousGroup)
	case r.IsCompute():
		return &ComputeShader{Name: r.Name, Dir: r.Dir(), Compute: r.tokens(Compute)}, nil
	case r.Has(Vertex) && r.Has(Fragment):
		return &GraphicsShader{Name: r.Name, Dir: r.Dir(), Vertex: r.tokens(Vertex), Fragment: r.tokens(Fragment)}, nil
	default:
		return fail(ErrIncompleteGroup)
	}
}

// Registry collects [Record]s by logical shader name,
// in the order in which the names were first seen.
type Registry struct {
	records *ordmap.Map[string, *Record]
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{records: ordmap.New[string, *Record]()}
}

// Upsert returns the record for the given name, creating a new empty
// one with the given source path if the name has not been seen yet.
func (rg *Registry) Upsert(name, sourcePath string) *Record {
	rec, added := rg.records.GetOrAdd(name, func() *Record {
		return &Record{Name: name, SourcePath: sourcePath}
	})
	if added {
		slog.Debug("new shader", "name", name, "path", sourcePath)
	}
	return rec
}

// Attach adds the given stage result to the record.
func (rg *Registry) Attach(rec *Record, stage Stage, res StageResult) {
	if rec.Has(stage) {
		slog.Warn("duplicate shader stage", "name", rec.Name, "stage", stage, "path", res.Path, "previous", rec.Stages[stage][0].Path)
	}
	rec.Stages[stage] = append(rec.Stages[stage], res)
}

// Len returns the number of records.
func (rg *Registry) Len() int {
	return rg.records.Len()
}

// Finalize validates every record, in first-seen order, and returns
// the valid shaders along with the errors of the invalid ones,
// each a [*ShaderError].
func (rg *Registry) Finalize() ([]Shader, []error) {
	var shaders []Shader
	var errs []error
	for _, rec := range rg.records.All() {
		sh, err := rec.Shader()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		shaders = append(shaders, sh)
	}
	return shaders, errs
}
