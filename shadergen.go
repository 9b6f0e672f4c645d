// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shadergen

import (
	"fmt"
	"log/slog"

	"cogentcore.org/shadergen/base/errors"
)

// Generate is the main entry point to shader header generation.
// It compiles every stage file below [Config.Root], groups the stages
// into logical shaders, and writes one header per valid shader.
//
// A missing compiler or a failure to walk the tree aborts the run and
// is returned with a nil [Report]. Failures of individual stages and
// shaders do not stop the other shaders from being generated: they are
// collected in the returned [Report], and the returned error joins them.
// A stage that fails to compile still yields a header, with an empty
// bytecode array for that stage.
func Generate(cfg *Config) (*Report, error) {
	comp, err := NewCompiler(cfg)
	if err != nil {
		return nil, err
	}
	files, err := FindFiles(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("finding shader files: %w", err)
	}

	rep := &Report{Files: len(files)}
	reg := NewRegistry()
	for _, fn := range files {
		name, stage, ok := Classify(fn)
		if !ok {
			slog.Debug("skipping file", "path", fn)
			rep.Skipped = append(rep.Skipped, fn)
			continue
		}
		rec := reg.Upsert(name, fn)
		res := comp.Compile(fn)
		if errors.Is(res.Err, ErrCompilerNotFound) {
			return nil, res.Err
		}
		rep.Stages++
		if !res.OK() {
			slog.Error("shader stage failed to compile", "name", name, "stage", stage, "err", res.Err)
			rep.StageErrors = append(rep.StageErrors, res.Err)
		} else {
			slog.Info("compiled shader stage", "name", name, "stage", stage, "path", fn, "words", len(res.Tokens))
		}
		reg.Attach(rec, stage, res)
	}

	shaders, errs := reg.Finalize()
	slog.Debug("grouped shader stages", "shaders", reg.Len(), "valid", len(shaders))
	for _, err := range errs {
		slog.Error("invalid shader", "err", err)
	}
	rep.ShaderErrors = errs

	gen := NewGenerator(cfg)
	for _, sh := range shaders {
		path, err := gen.Emit(sh)
		if err != nil {
			err = fmt.Errorf("shader %q: %w", sh.ShaderName(), err)
			slog.Error("could not write shader header", "err", err)
			rep.WriteErrors = append(rep.WriteErrors, err)
			continue
		}
		slog.Info("generated shader header", "name", sh.ShaderName(), "path", path)
		rep.Generated = append(rep.Generated, path)
	}
	return rep, rep.Err()
}
